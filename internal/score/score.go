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

// Package score implements the statistical scorer and the confidence
// combiner: the sum of back-off log probabilities per candidate
// language, and its conversion into a normalized confidence
// distribution.
package score

import (
	"github.com/caiatech/lingua/internal/model"
	"github.com/caiatech/lingua/internal/ngram"
	"github.com/caiatech/lingua/internal/textproc"
	"github.com/caiatech/lingua/language"
)

// longTextThreshold is the character-length cutoff at or above which only
// trigrams are scored; long texts carry enough trigram evidence that
// the other orders stop paying for themselves.
const longTextThreshold = 120

// TableFunc looks up the probability table for (lang, n). It returns
// ok==false when the model for that pair is unavailable; Compute treats
// that as "no contribution from this order" rather than an error, so
// that a single missing order does not abort scoring for languages that
// do have data at other orders.
type TableFunc func(lang language.Language, n int) (table model.Table, ok bool)

// Compute scores each candidate language against cleanedText and returns
// the (always-negative) log-probability sum across scored orders per
// language that produced a nonzero score; when n=1 was scored, a
// language's sum is divided by its count of unigram hits. Languages
// entirely absent from the result
// had no matching evidence at any scored order.
func Compute(cleanedText string, candidates []language.Language, lowAccuracy bool, tableFor TableFunc) map[language.Language]float64 {
	orders := ordersFor(cleanedText, lowAccuracy)
	if len(orders) == 0 {
		return nil
	}

	type langN struct {
		lang language.Language
		n    int
	}
	scoresByOrder := make(map[langN]float64)
	unigramHits := make(map[language.Language]int)

	for _, n := range orders {
		windows := textproc.NgramWindows(cleanedText, n)
		if len(windows) == 0 {
			continue
		}
		for _, cand := range candidates {
			table, ok := tableFor(cand, n)
			if !ok {
				continue
			}
			var sum float64
			hasScore := false
			for _, g := range windows {
				logProb, found := backOff(g, table)
				if !found {
					continue
				}
				sum += logProb
				hasScore = true
				if n == 1 {
					unigramHits[cand]++
				}
			}
			if hasScore && sum < 0 {
				scoresByOrder[langN{cand, n}] = sum
			}
		}
	}

	raw := make(map[language.Language]float64)
	for ln, s := range scoresByOrder {
		raw[ln.lang] += s
	}
	for lang, sum := range raw {
		if hits, ok := unigramHits[lang]; ok && hits > 0 {
			raw[lang] = sum / float64(hits)
		}
	}
	for lang, sum := range raw {
		if sum == 0 {
			delete(raw, lang)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}

// backOff walks g's lower-order sequence and returns the log probability
// of the first prefix with a known table entry, and true; or (0, false)
// if no prefix down to the unigram has one.
func backOff(g ngram.Ngram, table model.Table) (float64, bool) {
	it := g.LowerOrder()
	for order, ok := it.Next(); ok; order, ok = it.Next() {
		if v, found := table.RelativeFrequency(order); found {
			return v, true
		}
	}
	return 0, false
}

func ordersFor(cleanedText string, lowAccuracy bool) []int {
	if lowAccuracy {
		return []int{3}
	}
	length := textproc.RuneLen(cleanedText)
	if length == 0 {
		return nil
	}
	if length >= longTextThreshold {
		return []int{3}
	}
	var orders []int
	for n := 1; n <= 5; n++ {
		if n > length {
			break
		}
		orders = append(orders, n)
	}
	return orders
}
