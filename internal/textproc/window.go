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

package textproc

import (
	"regexp"

	"github.com/caiatech/lingua/internal/ngram"
)

// letterOrCJK matches a run of characters that are each either a Unicode
// letter or a CJK ideograph; \p{L} alone already covers Han/Hiragana/
// Katakana/Hangul (they are letters under the Unicode general category),
// so this is kept as a single letter class rather than a separate CJK
// alternation.
var letterOrCJK = regexp.MustCompile(`^\p{L}+$`)

// NgramWindows slides a window of length n (in characters) over
// cleanedText and returns the distinct Ngrams whose window consists
// entirely of letter characters.
func NgramWindows(cleanedText string, n int) []ngram.Ngram {
	runes := []rune(cleanedText)
	if n < 1 || n > len(runes) {
		return nil
	}

	seen := make(map[string]bool)
	var out []ngram.Ngram
	for i := 0; i+n <= len(runes); i++ {
		window := string(runes[i : i+n])
		if !letterOrCJK.MatchString(window) {
			continue
		}
		if seen[window] {
			continue
		}
		seen[window] = true
		out = append(out, ngram.MustNew(window))
	}
	return out
}

// RuneLen reports the character length of text, used by the scorer to
// decide between the long-text n=3 shortcut and the full n=1..5 sweep.
func RuneLen(text string) int {
	return len([]rune(text))
}
