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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// loadTable reads a zstd-compressed model file and decodes it into a
// MapTable. The file's logical content is a JSON object mapping a
// "num/den" fraction string to a space-separated list of ngrams that
// share that frequency; ln() is applied once here, at load, and the
// result is replicated across every ngram in the group.
func loadTable(r io.Reader) (MapTable, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("model: open zstd stream: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("model: read zstd stream: %w", err)
	}

	var logical map[string]string
	if err := json.Unmarshal(raw, &logical); err != nil {
		return nil, fmt.Errorf("model: decode model file: %w", err)
	}

	table := make(MapTable)
	for fraction, ngrams := range logical {
		logProb, err := parseFraction(fraction)
		if err != nil {
			return nil, err
		}
		for _, g := range strings.Fields(ngrams) {
			table[g] = logProb
		}
	}
	return table, nil
}

// EncodeTable is the inverse of loadTable: it serializes a logical
// fraction->ngrams mapping into the zstd-compressed wire format real
// model files use. It exists so tests (and any future model-builder
// integration) can produce fixtures through the same code path that
// reads them, rather than hand-crafting binary blobs.
func EncodeTable(logical map[string]string) ([]byte, error) {
	raw, err := json.Marshal(logical)
	if err != nil {
		return nil, fmt.Errorf("model: encode model file: %w", err)
	}

	var buf strings.Builder
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("model: open zstd writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return nil, fmt.Errorf("model: write zstd stream: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("model: close zstd stream: %w", err)
	}
	return []byte(buf.String()), nil
}
