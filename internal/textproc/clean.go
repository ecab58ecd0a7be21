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

// Package textproc implements the text preprocessing that runs ahead of
// both the rule engine and the statistical scorer: cleaning,
// logogram-aware word splitting, and ngram windowing.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/caiatech/lingua/internal/alphabet"
)

// Clean lowercases text, trims surrounding whitespace, strips Unicode
// punctuation and digits, and collapses runs of whitespace to a single
// space. Input is first normalized to NFC (golang.org/x/text/unicode/norm)
// so that combining-character sequences count as the single character a
// human reader perceives, before any of the above runs.
func Clean(text string) string {
	normalized := norm.NFC.String(text)
	lower := strings.ToLower(normalized)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if unicode.IsPunct(r) || unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}

	return collapseWhitespace(strings.TrimSpace(b.String()))
}

func collapseWhitespace(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// Words splits cleaned text into words for the rule engine. A space is
// inserted after every logogram character (Han, Hiragana, Katakana, or
// Hangul) before splitting, so a logogram ends its word; it stays
// attached to any non-logogram characters directly before it ("ab日"
// is one word). If the text contains no space at all after that step, the
// whole cleaned text is returned as one word.
func Words(cleanedText string) []string {
	if cleanedText == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(cleanedText) + 8)
	for _, r := range cleanedText {
		b.WriteRune(r)
		if alphabet.IsLogogram(r) {
			b.WriteByte(' ')
		}
	}
	spaced := b.String()

	var words []string
	for _, w := range strings.Split(spaced, " ") {
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
