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

// Package alphabet classifies runes and strings against the 18 Unicode
// scripts the detection engine cares about, generalizing the ad hoc
// Chinese/Japanese/Cyrillic range checks a hand-rolled detector tends to
// start with into the full script table.
package alphabet

import "unicode"

// Script identifies one of the Unicode script categories the engine
// reasons about.
type Script int

const (
	Latin Script = iota
	Cyrillic
	Arabic
	Han
	Hiragana
	Katakana
	Hangul
	Devanagari
	Greek
	Hebrew
	Armenian
	Georgian
	Bengali
	Gujarati
	Gurmukhi
	Tamil
	Telugu
	Thai
)

// All lists every supported script, in declaration order.
var All = []Script{
	Latin, Cyrillic, Arabic, Han, Hiragana, Katakana, Hangul, Devanagari,
	Greek, Hebrew, Armenian, Georgian, Bengali, Gujarati, Gurmukhi, Tamil,
	Telugu, Thai,
}

func (s Script) String() string {
	if name, ok := scriptNames[s]; ok {
		return name
	}
	return "Unknown"
}

var scriptNames = map[Script]string{
	Latin:      "Latin",
	Cyrillic:   "Cyrillic",
	Arabic:     "Arabic",
	Han:        "Han",
	Hiragana:   "Hiragana",
	Katakana:   "Katakana",
	Hangul:     "Hangul",
	Devanagari: "Devanagari",
	Greek:      "Greek",
	Hebrew:     "Hebrew",
	Armenian:   "Armenian",
	Georgian:   "Georgian",
	Bengali:    "Bengali",
	Gujarati:   "Gujarati",
	Gurmukhi:   "Gurmukhi",
	Tamil:      "Tamil",
	Telugu:     "Telugu",
	Thai:       "Thai",
}

// rangeTables backs each Script with the stdlib Unicode range table that
// defines it.
var rangeTables = map[Script]*unicode.RangeTable{
	Latin:      unicode.Latin,
	Cyrillic:   unicode.Cyrillic,
	Arabic:     unicode.Arabic,
	Han:        unicode.Han,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Hangul:     unicode.Hangul,
	Devanagari: unicode.Devanagari,
	Greek:      unicode.Greek,
	Hebrew:     unicode.Hebrew,
	Armenian:   unicode.Armenian,
	Georgian:   unicode.Georgian,
	Bengali:    unicode.Bengali,
	Gujarati:   unicode.Gujarati,
	Gurmukhi:   unicode.Gurmukhi,
	Tamil:      unicode.Tamil,
	Telugu:     unicode.Telugu,
	Thai:       unicode.Thai,
}

// MatchesChar reports whether r belongs to script s.
func (s Script) MatchesChar(r rune) bool {
	table, ok := rangeTables[s]
	if !ok {
		return false
	}
	return unicode.Is(table, r)
}

// Matches reports whether every code point of s consists of characters in
// this script. An empty string matches no script.
func (sc Script) Matches(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !sc.MatchesChar(r) {
			return false
		}
	}
	return true
}

// OfChar returns the first script (in declaration order) whose predicate
// accepts r, and true; or the zero Script and false if none matches.
func OfChar(r rune) (Script, bool) {
	for _, sc := range All {
		if sc.MatchesChar(r) {
			return sc, true
		}
	}
	return 0, false
}

// IsJapanese reports whether every code point of s belongs to the
// Hiragana ∪ Katakana ∪ Han union, AND at least one of them is actually
// Hiragana or Katakana. Mere Han alone is Chinese, not Japanese; this
// predicate is the one place that distinction is made.
func IsJapanese(s string) bool {
	if s == "" {
		return false
	}
	sawKana := false
	for _, r := range s {
		switch {
		case Hiragana.MatchesChar(r), Katakana.MatchesChar(r):
			sawKana = true
		case Han.MatchesChar(r):
			// stays within the union; decided by sawKana below
		default:
			return false
		}
	}
	return sawKana
}

// CharIsJapanese reports whether r is Hiragana or Katakana: the part of
// the Japanese script union that is not also shared with Chinese. A
// bare Han character is deliberately excluded, matching IsJapanese's
// "mere Han alone is Chinese, not Japanese" rule.
func CharIsJapanese(r rune) bool {
	return Hiragana.MatchesChar(r) || Katakana.MatchesChar(r)
}

// IsLogogram reports whether r is the kind of character the word
// splitter treats as a standalone word: Han, Hiragana, Katakana, or
// Hangul. Hangul is a logogram for splitting purposes but is not part
// of the Japanese union above; it implies Korean, never Japanese.
func IsLogogram(r rune) bool {
	return Han.MatchesChar(r) || Hiragana.MatchesChar(r) || Katakana.MatchesChar(r) || Hangul.MatchesChar(r)
}
