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
	"unicode"

	"github.com/caiatech/lingua/internal/alphabet"
)

// WordSpan is one word's rune-offset range within the original,
// uncleaned text: [Start, End).
type WordSpan struct {
	Start int
	End   int
	Text  string
}

// WordSpans tokenizes the original text into word spans, preserving
// character offsets, for use by the multi-language segmenter.
// Unlike Words, this operates on the original text rather
// than Clean's output, since the segmenter must report offsets the
// caller can slice the original string with. Logogram characters (Han,
// Hiragana, Katakana, Hangul) are always emitted as their own
// single-character span; unlike Words, a logogram is also split off from
// non-logogram characters directly before it.
func WordSpans(text string) []WordSpan {
	runes := []rune(text)
	var spans []WordSpan

	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		if alphabet.IsLogogram(runes[i]) {
			spans = append(spans, WordSpan{Start: i, End: i + 1, Text: string(runes[i])})
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) && !alphabet.IsLogogram(runes[i]) {
			i++
		}
		spans = append(spans, WordSpan{Start: start, End: i, Text: string(runes[start:i])})
	}
	return spans
}
