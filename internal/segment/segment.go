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

// Package segment implements the multi-language segmenter: partitioning
// mixed-language input into a left-to-right sequence of same-language
// spans that together cover the whole input.
package segment

import (
	"github.com/caiatech/lingua/internal/textproc"
	"github.com/caiatech/lingua/language"
)

// Classify classifies a substring, returning (language, true) on a
// decision or (zero, false) when the text classifies to None. Segment
// is deliberately parameterized on this rather than depending on the
// root detector package, to keep the dependency direction pointing
// from the detector down into segment, not the other way around.
type Classify func(text string) (language.Language, bool)

// Span is one contiguous, same-language region of the original text,
// given as half-open rune offsets [Start, End).
type Span struct {
	Start     int
	End       int
	Language  language.Language
	None      bool
	WordCount int
}

// Segment partitions text into per-language Spans. The returned
// slice is never empty for nonempty text: spans are contiguous, cover
// [0, runeLen(text)) exactly, and adjacent spans never share a
// language (None spans included).
func Segment(text string, classify Classify) []Span {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	words := textproc.WordSpans(text)
	if len(words) == 0 {
		return []Span{{Start: 0, End: len(runes), None: true}}
	}

	spans := segmentWords(words, runes, classify)
	spans = mergeAdjacentSameLanguage(spans)
	spans = mergeNoneIntoNeighbor(spans)
	spans = mergeAdjacentSameLanguage(spans)
	snapToFullCoverage(spans, len(runes))
	return spans
}

// segmentWords implements the recursive "slide the window, reclassify
// the remainder" core of the algorithm: it finds the run of leading
// words whose concatenation keeps classifying as the remaining range's
// dominant language, emits that as one span, and recurses on what's
// left.
func segmentWords(words []textproc.WordSpan, runes []rune, classify Classify) []Span {
	if len(words) == 0 {
		return nil
	}
	if len(words) == 1 {
		lang, ok := classify(words[0].Text)
		span := Span{Start: words[0].Start, End: words[0].End, WordCount: 1}
		if ok {
			span.Language = lang
		} else {
			span.None = true
		}
		return []Span{span}
	}

	remaining := string(runes[words[0].Start:words[len(words)-1].End])
	dominant, ok := classify(remaining)
	if !ok {
		// The region as a whole has no clear dominant language, but it
		// may still contain sub-regions that do: bisect and recurse
		// rather than giving up on the whole range.
		mid := len(words) / 2
		left := segmentWords(words[:mid], runes, classify)
		right := segmentWords(words[mid:], runes, classify)
		return append(left, right...)
	}

	end := 0
	count := 0
	for i := 0; i < len(words); i++ {
		window := string(runes[words[0].Start:words[i].End])
		lang, ok := classify(window)
		if !ok || lang != dominant {
			break
		}
		end = words[i].End
		count = i + 1
	}

	if count == 0 {
		// Not even the leading word alone agrees with the region's
		// dominant language (len(words) >= 2 here; the single-word case
		// is handled above); label that one word by its own
		// classification instead and let the next recursion find a
		// fresh dominant for whatever follows it.
		span := Span{Start: words[0].Start, End: words[0].End, WordCount: 1}
		if lang, ok := classify(words[0].Text); ok {
			span.Language = lang
		} else {
			span.None = true
		}
		return append([]Span{span}, segmentWords(words[1:], runes, classify)...)
	}

	span := Span{Start: words[0].Start, End: end, Language: dominant, WordCount: count}
	if count == len(words) {
		return []Span{span}
	}
	return append([]Span{span}, segmentWords(words[count:], runes, classify)...)
}

// mergeAdjacentSameLanguage coalesces consecutive non-None spans that
// ended up with identical languages.
func mergeAdjacentSameLanguage(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	out := make([]Span, 0, len(spans))
	out = append(out, spans[0])
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if !last.None && !s.None && last.Language == s.Language {
			last.End = s.End
			last.WordCount += s.WordCount
			continue
		}
		out = append(out, s)
	}
	return out
}

// mergeNoneIntoNeighbor attaches each span whose sub-region classified
// to None to whichever neighboring span has the fewest words. A lone
// top-level None span (the whole-text failure mode) is left untouched.
func mergeNoneIntoNeighbor(spans []Span) []Span {
	if len(spans) <= 1 {
		return spans
	}

	for {
		if len(spans) <= 1 {
			return spans
		}
		idx := -1
		for i, s := range spans {
			if s.None {
				idx = i
				break
			}
		}
		if idx == -1 {
			return spans
		}

		var target int
		switch {
		case idx == 0:
			target = idx + 1
		case idx == len(spans)-1:
			target = idx - 1
		default:
			if spans[idx-1].WordCount <= spans[idx+1].WordCount {
				target = idx - 1
			} else {
				target = idx + 1
			}
		}

		merged := Span{
			Language:  spans[target].Language,
			None:      spans[target].None,
			WordCount: spans[target].WordCount + spans[idx].WordCount,
		}
		if target < idx {
			merged.Start, merged.End = spans[target].Start, spans[idx].End
		} else {
			merged.Start, merged.End = spans[idx].Start, spans[target].End
		}

		lo, hi := idx, target
		if lo > hi {
			lo, hi = hi, lo
		}
		next := make([]Span, 0, len(spans)-1)
		next = append(next, spans[:lo]...)
		next = append(next, merged)
		next = append(next, spans[hi+1:]...)
		spans = next
	}
}

// snapToFullCoverage stretches span boundaries so consecutive spans
// are contiguous and the first/last span reach the text's edges: any
// inter-word gap (whitespace, stray punctuation, a trailing residue
// shorter than the shortest word) is absorbed into the preceding span.
func snapToFullCoverage(spans []Span, runeLen int) {
	if len(spans) == 0 {
		return
	}
	spans[0].Start = 0
	for i := 0; i < len(spans)-1; i++ {
		spans[i].End = spans[i+1].Start
	}
	spans[len(spans)-1].End = runeLen
}
