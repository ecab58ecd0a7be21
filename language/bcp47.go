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

package language

import xlanguage "golang.org/x/text/language"

// BCP47 returns the IETF BCP 47 language tag for l (e.g. "en", "pt"),
// built from the ISO-639-1 code via golang.org/x/text/language. This is
// a thin convenience for external callers (packaging, ISO-code
// enumerations) that the core classification engine never calls itself.
func (l Language) BCP47() string {
	code := l.IsoCode639_1()
	if code == "" {
		return ""
	}
	tag, err := xlanguage.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}
