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

import "sync"

// CharToLanguages is the static lookup from a short set of confusable
// characters to the languages that use them, e.g. 'ć' -> {Bosnian,
// Polish}. The rule engine (internal/rules) reads it in both passes: as
// per-word evidence in the unambiguous-decision pass and as narrowing
// evidence in the filter pass. Built once from the per-language
// unique-character sets and shared by reference.
var (
	charToLanguagesOnce sync.Once
	charToLanguages     map[rune][]Language
)

// CharToLanguages returns the shared confusable-character map.
func CharToLanguages() map[rune][]Language {
	charToLanguagesOnce.Do(buildCharToLanguages)
	return charToLanguages
}

func buildCharToLanguages() {
	m := make(map[rune][]Language)
	for _, l := range All() {
		for _, r := range table[l].uniqueStr {
			m[r] = append(m[r], l)
		}
	}
	charToLanguages = m
}
