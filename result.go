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

package lingua

import (
	"github.com/caiatech/lingua/internal/segment"
	"github.com/caiatech/lingua/language"
)

// DetectionResult is one contiguous, single-language span of a
// DetectMultiple call. StartIndex/EndIndex are character (rune) offsets
// into the original text; ByteStart/ByteEnd are additionally provided
// for callers that need to slice the original string directly.
type DetectionResult struct {
	StartIndex int
	EndIndex   int
	ByteStart  int
	ByteEnd    int
	WordCount  int
	Language   language.Language
	// IsUnknown is true when this span's language could not be
	// determined; Language is the zero Language in that case and
	// must not be treated as a real result.
	IsUnknown bool
}

func newDetectionResult(text string, runes []rune, s segment.Span) DetectionResult {
	return DetectionResult{
		StartIndex: s.Start,
		EndIndex:   s.End,
		ByteStart:  runeOffsetToByteOffset(text, runes, s.Start),
		ByteEnd:    runeOffsetToByteOffset(text, runes, s.End),
		WordCount:  s.WordCount,
		Language:   s.Language,
		IsUnknown:  s.None,
	}
}

// runeOffsetToByteOffset converts a rune index into a byte offset into
// the original (multi-byte-safe) string.
func runeOffsetToByteOffset(text string, runes []rune, runeIdx int) int {
	if runeIdx >= len(runes) {
		return len(text)
	}
	return len(string(runes[:runeIdx]))
}
