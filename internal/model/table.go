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

// Package model implements the language model store: probability tables
// keyed by (language, n), a concurrently readable cache, and the
// on-disk fraction/ngram file format loader.
package model

import "github.com/caiatech/lingua/internal/ngram"

// Table maps Ngrams to their natural-log relative frequency for a single
// (language, n) pair. It is defined as a narrow interface, per the
// "mockable n-gram tables for testing" design note, so real file-backed
// loaders and test doubles are interchangeable.
//
// RelativeFrequency reports (logProb, true) when g has a known entry, or
// (0, false) when it does not. Stored values are natural logs of
// relative frequencies in (0,1] and are therefore always <= 0; an
// explicit ok flag rather than a sign check keeps the "unknown"
// sentinel from colliding with a genuine (rare) freq==1 entry whose ln
// is exactly 0.
type Table interface {
	RelativeFrequency(g ngram.Ngram) (logProb float64, ok bool)
}

// MapTable is the simplest Table: a flat map from ngram text to
// natural-log relative frequency. Loaded tables and most test doubles
// use this directly.
type MapTable map[string]float64

// RelativeFrequency implements Table.
func (t MapTable) RelativeFrequency(g ngram.Ngram) (float64, bool) {
	v, ok := t[g.String()]
	return v, ok
}
