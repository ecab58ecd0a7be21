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

// Package rules implements the deterministic rule engine: a fast
// unambiguous-decision pass, and, failing that, a filter pass that
// narrows the enabled language set before the statistical scorer runs.
package rules

import (
	"sync"

	"github.com/caiatech/lingua/internal/alphabet"
	"github.com/caiatech/lingua/language"
)

// Decision is the result of the unambiguous-decision pass. Decided is
// false when the pass could not reach a verdict at all (the caller
// should fall through to the filter pass); when Decided is true, None
// distinguishes "the rules determined the text's language is genuinely
// unclear" from an actual language pick.
type Decision struct {
	Decided  bool
	None     bool
	Language language.Language
}

// Engine evaluates the rule engine against one fixed enabled-language
// set. It is cheap to construct and holds no mutable state of its own
// beyond the lazily-built global single-language-script map.
type Engine struct {
	enabled    map[language.Language]bool
	enabledSet []language.Language
}

// New builds an Engine for the given enabled languages.
func New(enabled []language.Language) *Engine {
	e := &Engine{enabled: make(map[language.Language]bool, len(enabled)), enabledSet: enabled}
	for _, l := range enabled {
		e.enabled[l] = true
	}
	return e
}

var (
	singleLanguageScriptsOnce sync.Once
	singleLanguageScripts     map[alphabet.Script]language.Language
)

// singleLanguageScriptMap returns, for every script supported by exactly
// one of the 75 known languages globally, that language. It is a
// property of the whole language registry, not of any one detector's
// enabled subset.
func singleLanguageScriptMap() map[alphabet.Script]language.Language {
	singleLanguageScriptsOnce.Do(func() {
		counts := make(map[alphabet.Script][]language.Language)
		for _, l := range language.All() {
			for _, sc := range l.Scripts() {
				counts[sc] = append(counts[sc], l)
			}
		}
		m := make(map[alphabet.Script]language.Language)
		for sc, langs := range counts {
			if len(langs) == 1 {
				m[sc] = langs[0]
			}
		}
		singleLanguageScripts = m
	})
	return singleLanguageScripts
}

// wordLanguageCounts tallies, for one word, how many characters provided
// evidence for each language: single-language scripts first, then the
// Han/Chinese rule, then unique-character evidence for Latin, Cyrillic,
// and Devanagari words.
func (e *Engine) wordLanguageCounts(word string) map[language.Language]int {
	counts := make(map[language.Language]int)
	slm := singleLanguageScriptMap()

	for _, r := range word {
		sc, ok := alphabet.OfChar(r)
		if !ok {
			continue
		}

		if lang, ok := slm[sc]; ok {
			if e.enabled[lang] {
				counts[lang]++
			}
			continue
		}

		if sc == alphabet.Han {
			// Hiragana/Katakana characters are routed to Japanese by
			// the single-language-script branch above; a bare Han
			// character only ever provides Chinese evidence here. A
			// word mixing Han with actual kana still nets out as
			// Japanese once per-word counts are totaled, via the
			// {Chinese,Japanese} tie-break below and in Decide.
			if e.enabled[language.Chinese] {
				counts[language.Chinese]++
			}
			continue
		}

		if sc == alphabet.Latin || sc == alphabet.Cyrillic || sc == alphabet.Devanagari {
			for _, lang := range language.CharToLanguages()[r] {
				if e.enabled[lang] {
					counts[lang]++
				}
			}
		}
	}
	return counts
}

// wordDecision aggregates one word's counts into a single contribution:
// the word's strict majority language, Japanese for a {Chinese,
// Japanese} pair, or none when the evidence ties or is absent.
func wordDecision(counts map[language.Language]int) (lang language.Language, isNone bool) {
	if len(counts) == 0 {
		return 0, true
	}
	if len(counts) == 1 {
		for l := range counts {
			return l, false
		}
	}
	if len(counts) == 2 {
		_, hasZh := counts[language.Chinese]
		_, hasJa := counts[language.Japanese]
		if hasZh && hasJa {
			return language.Japanese, false
		}
	}

	top, second := topTwo(counts)
	if top.count > second.count {
		return top.lang, false
	}
	return 0, true
}

type langCount struct {
	lang  language.Language
	count int
}

func topTwo(counts map[language.Language]int) (top, second langCount) {
	langs := make([]language.Language, 0, len(counts))
	for l := range counts {
		langs = append(langs, l)
	}
	sortLanguagesDeterministically(langs)

	top = langCount{lang: langs[0], count: counts[langs[0]]}
	for _, l := range langs[1:] {
		c := langCount{lang: l, count: counts[l]}
		if c.count > top.count {
			second = top
			top = c
		} else if c.count > second.count {
			second = c
		}
	}
	return top, second
}

func sortLanguagesDeterministically(langs []language.Language) {
	for i := 1; i < len(langs); i++ {
		for j := i; j > 0 && langs[j] < langs[j-1]; j-- {
			langs[j], langs[j-1] = langs[j-1], langs[j]
		}
	}
}

// Decide runs the unambiguous-decision pass over words, short-circuiting
// the statistical path when per-word evidence yields a strict winner.
func (e *Engine) Decide(words []string) Decision {
	if len(words) == 0 {
		return Decision{}
	}

	total := make(map[language.Language]int)
	noneCount := 0
	for _, w := range words {
		counts := e.wordLanguageCounts(w)
		lang, isNone := wordDecision(counts)
		if isNone {
			noneCount++
		} else {
			total[lang]++
		}
	}

	entries := make(map[language.Language]int, len(total))
	for l, c := range total {
		entries[l] = c
	}

	// No word produced any language evidence at all: the rule engine
	// has nothing to decide between and abstains, leaving the text to
	// the filter pass and statistical scorer. The "keep None if it
	// covers at least half the words" rule below only matters once
	// there is at least one real language entry to weigh it against.
	if len(entries) == 0 {
		return Decision{}
	}

	keepNone := noneCount*2 >= len(words)
	hasNoneEntry := keepNone && noneCount > 0

	numEntries := len(entries)
	if hasNoneEntry {
		numEntries++
	}

	if numEntries == 1 {
		if hasNoneEntry {
			return Decision{Decided: true, None: true}
		}
		for l := range entries {
			return Decision{Decided: true, Language: l}
		}
	}

	if !hasNoneEntry && len(entries) == 2 {
		_, hasZh := entries[language.Chinese]
		_, hasJa := entries[language.Japanese]
		if hasZh && hasJa {
			return Decision{Decided: true, Language: language.Japanese}
		}
	}

	// General case: compare every surviving entry, including the
	// synthetic "None" bucket if it was kept, and require a strict
	// winner.
	all := make([]decisionEntry, 0, numEntries)
	for l, c := range entries {
		all = append(all, decisionEntry{lang: l, count: c})
	}
	if hasNoneEntry {
		all = append(all, decisionEntry{isNone: true, count: noneCount})
	}
	sortEntriesDeterministically(all)

	best := all[0]
	for _, e := range all[1:] {
		if e.count > best.count {
			best = e
		}
	}
	runnerUp := -1
	for _, e := range all {
		if e.lang == best.lang && e.isNone == best.isNone {
			continue
		}
		if e.count > runnerUp {
			runnerUp = e.count
		}
	}
	if best.count > runnerUp {
		if best.isNone {
			return Decision{Decided: true, None: true}
		}
		return Decision{Decided: true, Language: best.lang}
	}
	return Decision{}
}

// decisionEntry is one candidate (a language, or the synthetic "None"
// bucket) competing for the unambiguous-decision verdict.
type decisionEntry struct {
	lang   language.Language
	isNone bool
	count  int
}

func sortEntriesDeterministically(all []decisionEntry) {
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].lang < all[j-1].lang; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
}
