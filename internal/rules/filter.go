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

package rules

import (
	"github.com/caiatech/lingua/internal/alphabet"
	"github.com/caiatech/lingua/language"
)

// Filter narrows the enabled language set before the statistical scorer
// runs. It never returns an empty slice when the
// engine started with a nonempty enabled set: if narrowing would empty
// it, the original enabled set is returned unchanged.
func (e *Engine) Filter(words []string) []language.Language {
	if len(words) == 0 {
		return e.enabledSet
	}

	scriptCounts := make(map[alphabet.Script]int)
	for _, w := range words {
		sc, ok := firstScript(w)
		if !ok {
			continue
		}
		scriptCounts[sc]++
	}
	if len(scriptCounts) == 0 {
		return e.enabledSet
	}

	mostFrequent, allEqual := mostFrequentScript(scriptCounts)

	var scriptFiltered []language.Language
	if allEqual {
		scriptFiltered = e.enabledSet
	} else {
		for _, l := range e.enabledSet {
			if l.HasScript(mostFrequent) {
				scriptFiltered = append(scriptFiltered, l)
			}
		}
		if len(scriptFiltered) == 0 {
			scriptFiltered = e.enabledSet
		}
	}

	evidence := e.characterEvidence(words, scriptFiltered)
	if len(evidence) > 0 {
		return evidence
	}
	return scriptFiltered
}

// firstScript returns the script of the first character in w that
// matches any known script.
func firstScript(w string) (alphabet.Script, bool) {
	for _, r := range w {
		if sc, ok := alphabet.OfChar(r); ok {
			return sc, true
		}
	}
	return 0, false
}

// mostFrequentScript returns the single most common script in counts,
// and whether every script that occurs ties at the same count (in which
// case there is no single winner and no narrowing happens). A tie only
// at the top, with other scripts at lower counts, is not this case: the
// top script still wins normally.
func mostFrequentScript(counts map[alphabet.Script]int) (alphabet.Script, bool) {
	var best alphabet.Script
	bestCount := -1
	distinct := make(map[int]bool)
	for _, sc := range alphabet.All {
		c, ok := counts[sc]
		if !ok {
			continue
		}
		distinct[c] = true
		if c > bestCount {
			bestCount = c
			best = sc
		}
	}
	allEqual := len(counts) > 1 && len(distinct) == 1
	return best, allEqual
}

// characterEvidence restricts candidates to those languages with
// unique-character evidence in words: for each entry in the
// character-to-languages map, every
// occurrence of one of its characters in any word increments that
// language's own evidence count; only languages whose individual count
// reaches at least half the word count survive into the returned
// subset.
func (e *Engine) characterEvidence(words []string, candidates []language.Language) []language.Language {
	allowed := make(map[language.Language]bool, len(candidates))
	for _, l := range candidates {
		allowed[l] = true
	}

	counts := make(map[language.Language]int)
	charToLangs := language.CharToLanguages()
	for _, w := range words {
		for _, r := range w {
			langs, ok := charToLangs[r]
			if !ok {
				continue
			}
			for _, l := range langs {
				if allowed[l] {
					counts[l]++
				}
			}
		}
	}

	var out []language.Language
	for _, l := range candidates {
		if counts[l]*2 >= len(words) {
			out = append(out, l)
		}
	}
	return out
}
