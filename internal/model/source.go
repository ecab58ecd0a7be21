// Copyright 2025 Caia Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/caiatech/lingua/language"
)

// Source opens the raw (compressed) model file for one (language, n)
// pair. Model-file generation lives outside this module; Source is the
// seam that keeps the store decoupled from however those files are
// actually produced and packaged.
type Source interface {
	Open(lang language.Language, n int) (io.ReadCloser, error)
}

// FSSource adapts any fs.FS (an embed.FS, an os.DirFS, or in tests an
// fstest.MapFS) into a Source, using the layout
// "<iso-639-3>/<n>.json.zst".
type FSSource struct {
	FS fs.FS
}

// Open implements Source.
func (s FSSource) Open(lang language.Language, n int) (io.ReadCloser, error) {
	p := path.Join(lang.IsoCode639_3(), fmt.Sprintf("%d.json.zst", n))
	f, err := s.FS.Open(p)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", p, err)
	}
	return f, nil
}
