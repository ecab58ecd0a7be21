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

// Package ngram implements the Ngram value type: a short Unicode string of
// length 1..5 characters with a lower-order prefix iterator used by the
// back-off rule in the statistical scorer.
package ngram

import "fmt"

// MaxLength is the largest supported ngram length, in characters.
const MaxLength = 5

// Ngram is a contiguous run of 1..5 Unicode characters drawn from some
// input text. The zero value is not valid; use New.
type Ngram struct {
	runes []rune
}

// New builds an Ngram from s. It fails if s has zero characters or more
// than MaxLength characters.
func New(s string) (Ngram, error) {
	runes := []rune(s)
	if len(runes) < 1 || len(runes) > MaxLength {
		return Ngram{}, fmt.Errorf("ngram: %q has length %d, want [1,%d]", s, len(runes), MaxLength)
	}
	return Ngram{runes: runes}, nil
}

// MustNew is like New but panics on a length violation. Callers within the
// engine use this at sites where the length is already guaranteed by a
// windowing loop; a panic there signals an internal invariant break, not a
// caller input error.
func MustNew(s string) Ngram {
	n, err := New(s)
	if err != nil {
		panic(err)
	}
	return n
}

// Len reports the ngram's length in characters.
func (n Ngram) Len() int {
	return len(n.runes)
}

// String returns the ngram's text.
func (n Ngram) String() string {
	return string(n.runes)
}

// IsZero reports whether n is the zero value (not a valid ngram).
func (n Ngram) IsZero() bool {
	return len(n.runes) == 0
}

// LowerOrderIterator yields an Ngram's successive shorter prefixes,
// starting at the full ngram itself and truncating one trailing character
// per step, down to the unigram. It allocates nothing beyond the source
// Ngram.
type LowerOrderIterator struct {
	runes []rune
	n     int // next length to yield, or 0 when exhausted
}

// LowerOrder returns an iterator over n's prefixes of decreasing order:
// the n-gram itself, then its (n-1)-gram prefix, ..., down to the
// unigram. The sequence always terminates after yielding length 1.
func (n Ngram) LowerOrder() *LowerOrderIterator {
	return &LowerOrderIterator{runes: n.runes, n: len(n.runes)}
}

// Next returns the next lower-order Ngram and true, or the zero value and
// false once the unigram has already been yielded.
func (it *LowerOrderIterator) Next() (Ngram, bool) {
	if it.n == 0 {
		return Ngram{}, false
	}
	g := Ngram{runes: it.runes[:it.n]}
	it.n--
	return g, true
}

// All drains the iterator into a slice, longest first. Convenience for
// callers that don't need the zero-allocation guarantee of Next.
func (n Ngram) All() []Ngram {
	out := make([]Ngram, 0, n.Len())
	it := n.LowerOrder()
	for g, ok := it.Next(); ok; g, ok = it.Next() {
		out = append(out, g)
	}
	return out
}
