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

package score

import (
	"math"
	"sort"

	"github.com/caiatech/lingua/language"
)

// Value pairs a candidate language with its confidence ratio.
type Value struct {
	Language language.Language
	Ratio    float64
}

// Combine converts a raw (always-negative) log-probability sum per
// language into a best/score ratio distribution: the winning language
// (the least-negative sum) gets ratio 1, every other candidate gets
// best/score in (0,1]. Results are sorted descending by ratio, ties
// broken by Language declaration order. Normalize below additionally
// renormalizes to sum to 1 for callers that want a distribution.
func Combine(raw map[language.Language]float64) []Value {
	if len(raw) == 0 {
		return nil
	}

	best := math.Inf(-1)
	for _, s := range raw {
		if s > best {
			best = s
		}
	}

	values := make([]Value, 0, len(raw))
	for lang, s := range raw {
		values = append(values, Value{Language: lang, Ratio: best / s})
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].Ratio != values[j].Ratio {
			return values[i].Ratio > values[j].Ratio
		}
		return values[i].Language < values[j].Language
	})
	return values
}

// Normalize renormalizes Combine's ratios so they sum to 1.
func Normalize(values []Value) []Value {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v.Ratio
	}
	if sum == 0 {
		return values
	}
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{Language: v.Language, Ratio: v.Ratio / sum}
	}
	return out
}

// Winner picks the top language from values, declining when there are
// no candidates, when the top two ratios are numerically equal, or when
// 1-second < minRelativeDistance.
func Winner(values []Value, minRelativeDistance float64) (language.Language, bool) {
	if len(values) == 0 {
		return 0, false
	}
	if len(values) == 1 {
		return values[0].Language, true
	}
	top, second := values[0], values[1]
	if top.Ratio == second.Ratio {
		return 0, false
	}
	if 1-second.Ratio < minRelativeDistance {
		return 0, false
	}
	return top.Language, true
}

// ValueFor returns the confidence ratio for lang within values, or 0 if
// lang is absent.
func ValueFor(values []Value, lang language.Language) float64 {
	for _, v := range values {
		if v.Language == lang {
			return v.Ratio
		}
	}
	return 0
}
