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
	"sync"

	"go.uber.org/zap"

	"github.com/caiatech/lingua/internal/model"
	"github.com/caiatech/lingua/internal/rules"
	"github.com/caiatech/lingua/internal/score"
	"github.com/caiatech/lingua/internal/segment"
	"github.com/caiatech/lingua/internal/textproc"
	"github.com/caiatech/lingua/language"
)

// ConfidenceValue pairs a candidate language with its confidence ratio.
type ConfidenceValue = score.Value

// Detector classifies text against the candidate language set it was
// built with. It is safe for concurrent use by any number of goroutines:
// it spawns no goroutines of its own, and all shared state
// (the model cache) is internally synchronized.
type Detector struct {
	candidates          []language.Language
	minRelativeDistance float64
	lowAccuracy         bool
	cache               *model.Cache
	logger              *zap.Logger

	mu      sync.Mutex
	demoted map[language.Language]bool
}

// Detect classifies text and returns the winning language, or
// (zero-value, false) if no language could be determined (empty or
// letterless input, or the confidence combiner's decision rule finding
// no clear winner).
func (d *Detector) Detect(text string) (language.Language, bool) {
	cleaned := textproc.Clean(text)
	if cleaned == "" {
		return 0, false
	}

	candidates := d.activeCandidates()
	words := textproc.Words(cleaned)

	engine := rules.New(candidates)
	if dec := engine.Decide(words); dec.Decided && !dec.None {
		return dec.Language, true
	}

	filtered := engine.Filter(words)
	values := d.confidenceValues(cleaned, filtered)
	return score.Winner(values, d.minRelativeDistance)
}

// ConfidenceValues returns the raw best/score ratio for each candidate
// language with nonzero evidence, sorted descending. The winning
// language (if any, per the rule engine or the statistical scorer) has
// ratio 1; see NormalizedConfidenceValues for the sum-to-1 form.
func (d *Detector) ConfidenceValues(text string) []ConfidenceValue {
	cleaned := textproc.Clean(text)
	if cleaned == "" {
		return nil
	}
	candidates := d.activeCandidates()
	words := textproc.Words(cleaned)

	engine := rules.New(candidates)
	if dec := engine.Decide(words); dec.Decided && !dec.None {
		return []ConfidenceValue{{Language: dec.Language, Ratio: 1}}
	}

	filtered := engine.Filter(words)
	return d.confidenceValues(cleaned, filtered)
}

// NormalizedConfidenceValues is ConfidenceValues renormalized so ratios
// sum to 1.
func (d *Detector) NormalizedConfidenceValues(text string) []ConfidenceValue {
	return score.Normalize(d.ConfidenceValues(text))
}

// Confidence returns the confidence value for one specific language: 0
// if absent from the candidate set or from the computed distribution.
func (d *Detector) Confidence(text string, lang language.Language) float64 {
	return score.ValueFor(d.ConfidenceValues(text), lang)
}

// DetectMultiple partitions text into a left-to-right, non-overlapping
// sequence of DetectionResult spans covering the whole input, one span
// per contiguous single-language region.
func (d *Detector) DetectMultiple(text string) []DetectionResult {
	runes := []rune(text)
	spans := segment.Segment(text, func(sub string) (language.Language, bool) {
		return d.Detect(sub)
	})

	out := make([]DetectionResult, 0, len(spans))
	for _, s := range spans {
		out = append(out, newDetectionResult(text, runes, s))
	}
	return out
}

// UnloadModels frees every cached probability table. Subsequent
// detection calls reload model data on first use.
func (d *Detector) UnloadModels() {
	d.cache.Unload()
}

// DetectBatch, DetectMultipleBatch, and ConfidenceValuesBatch apply the
// corresponding single-text method across texts concurrently, preserving
// input order one-to-one.

// DetectBatch runs Detect over every text concurrently.
func (d *Detector) DetectBatch(texts []string) []DetectResult {
	out := make([]DetectResult, len(texts))
	runParallel(len(texts), func(i int) {
		lang, ok := d.Detect(texts[i])
		out[i] = DetectResult{Language: lang, Found: ok}
	})
	return out
}

// DetectMultipleBatch runs DetectMultiple over every text concurrently.
func (d *Detector) DetectMultipleBatch(texts []string) [][]DetectionResult {
	out := make([][]DetectionResult, len(texts))
	runParallel(len(texts), func(i int) {
		out[i] = d.DetectMultiple(texts[i])
	})
	return out
}

// ConfidenceValuesBatch runs ConfidenceValues over every text
// concurrently.
func (d *Detector) ConfidenceValuesBatch(texts []string) [][]ConfidenceValue {
	out := make([][]ConfidenceValue, len(texts))
	runParallel(len(texts), func(i int) {
		out[i] = d.ConfidenceValues(texts[i])
	})
	return out
}

// ConfidenceBatch runs Confidence against lang over every text
// concurrently.
func (d *Detector) ConfidenceBatch(texts []string, lang language.Language) []float64 {
	out := make([]float64, len(texts))
	runParallel(len(texts), func(i int) {
		out[i] = d.Confidence(texts[i], lang)
	})
	return out
}

// DetectResult is one text's Detect outcome within a batch.
type DetectResult struct {
	Language language.Language
	Found    bool
}

// runParallel fans fn(0), fn(1), ..., fn(n-1) out across a bounded
// goroutine pool and waits for all of them. There is no in-band
// cancellation; callers abandon the call externally if they need to
// give up early.
func runParallel(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	const maxWorkers = 16
	workers := n
	if workers > maxWorkers {
		workers = maxWorkers
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// activeCandidates returns the candidate set with any languages demoted
// by a prior model-missing failure removed.
func (d *Detector) activeCandidates() []language.Language {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.demoted) == 0 {
		return d.candidates
	}
	out := make([]language.Language, 0, len(d.candidates))
	for _, l := range d.candidates {
		if !d.demoted[l] {
			out = append(out, l)
		}
	}
	return out
}

// demote removes lang from the active candidate set for the remaining
// lifetime of the Detector. A language whose model data is missing is
// skipped from then on rather than failing every classification.
func (d *Detector) demote(lang language.Language, cause error) {
	d.mu.Lock()
	if d.demoted == nil {
		d.demoted = make(map[language.Language]bool)
	}
	d.demoted[lang] = true
	d.mu.Unlock()
	d.logger.Warn("demoting language after model load failure",
		zap.String("language", lang.String()), zap.Error(cause))
}

// confidenceValues runs the statistical scorer against candidates and
// converts its raw log-probability sums into ratios via the confidence
// combiner. When the rule engine's filter pass has already narrowed the
// candidate set to a single language, that language wins outright with
// confidence 1 without involving the scorer at all: the filter pass is
// itself a decision once only one candidate survives it, not merely a
// hint for the scorer to weigh.
func (d *Detector) confidenceValues(cleaned string, candidates []language.Language) []ConfidenceValue {
	if len(candidates) == 1 {
		return []ConfidenceValue{{Language: candidates[0], Ratio: 1}}
	}
	raw := score.Compute(cleaned, candidates, d.lowAccuracy, d.tableFor)
	return score.Combine(raw)
}

// tableFor adapts the model cache to score.TableFunc, demoting a
// language on first model-missing failure rather than erroring the
// whole classification.
func (d *Detector) tableFor(lang language.Language, n int) (model.Table, bool) {
	t, err := d.cache.Get(lang, n)
	if err != nil {
		d.demote(lang, err)
		return nil, false
	}
	return t, true
}
