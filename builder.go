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

// Package lingua is the public surface of the classification engine:
// Detector, DetectorBuilder, and DetectionResult, wiring the rule
// engine, statistical scorer, and segmenter internals together.
package lingua

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/caiatech/lingua/internal/model"
	"github.com/caiatech/lingua/language"
)

// ModelSource supplies the compressed probability-table data for one
// (language, n) pair. FSModelSource adapts any fs.FS; custom
// implementations can fetch model data from wherever they keep it.
type ModelSource = model.Source

// FSModelSource adapts an fs.FS (an embed.FS, os.DirFS, or a test
// fstest.MapFS) into a ModelSource using the layout
// "<iso-639-3>/<n>.json.zst".
func FSModelSource(fsys fs.FS) ModelSource {
	return model.FSSource{FS: fsys}
}

const (
	// defaultMinRelativeDistance is the minimum-relative-distance used
	// when a Builder does not call WithMinimumRelativeDistance.
	defaultMinRelativeDistance = 0.0
	maxMinRelativeDistance     = 0.99
)

// DetectorBuilder configures and constructs a Detector. The zero value
// is not usable; obtain one via NewBuilder or NewBuilderFromAllLanguages.
type DetectorBuilder struct {
	languages           []language.Language
	minRelativeDistance float64
	preload             bool
	lowAccuracy         bool
	source              ModelSource
	logger              *zap.Logger
}

// NewBuilder starts a DetectorBuilder restricted to the given candidate
// languages. source supplies each language's compressed probability
// tables; see FSModelSource to adapt an fs.FS.
func NewBuilder(languages []language.Language, source ModelSource) *DetectorBuilder {
	return &DetectorBuilder{
		languages:           languages,
		minRelativeDistance: defaultMinRelativeDistance,
		source:              source,
	}
}

// NewBuilderFromAllLanguages starts a DetectorBuilder with every
// language the engine knows about as a candidate.
func NewBuilderFromAllLanguages(source ModelSource) *DetectorBuilder {
	return NewBuilder(language.All(), source)
}

// WithMinimumRelativeDistance sets the minimum-relative-distance used by
// the confidence combiner's decision rule: when the gap between the top
// two confidence values falls below it, Detect declines. Must lie in
// [0.0, 0.99]; Build reports a *ConfigurationError otherwise.
func (b *DetectorBuilder) WithMinimumRelativeDistance(d float64) *DetectorBuilder {
	b.minRelativeDistance = d
	return b
}

// WithPreloadedModels causes Build to eagerly load all five n-orders for
// every candidate language, rather than deferring to first use.
func (b *DetectorBuilder) WithPreloadedModels() *DetectorBuilder {
	b.preload = true
	return b
}

// WithLowAccuracyMode restricts the statistical scorer to n=3 only,
// regardless of input length, trading accuracy for speed and memory.
func (b *DetectorBuilder) WithLowAccuracyMode() *DetectorBuilder {
	b.lowAccuracy = true
	return b
}

// WithLogger injects a *zap.Logger for model-missing warnings and cache
// diagnostics. A nil logger (the default) is a no-op logger.
func (b *DetectorBuilder) WithLogger(logger *zap.Logger) *DetectorBuilder {
	b.logger = logger
	return b
}

// Build validates the configuration and constructs a Detector.
// Candidate languages whose model data cannot be loaded during preload
// are demoted from the candidate set for the Detector's lifetime and
// reported via the returned ModelMissingError slice;
// Build itself only fails (returning a *ConfigurationError) for
// structurally invalid configuration.
func (b *DetectorBuilder) Build() (*Detector, []error) {
	if len(b.languages) < 2 {
		return nil, []error{&ConfigurationError{Reason: "at least 2 candidate languages are required"}}
	}
	if b.minRelativeDistance < 0.0 || b.minRelativeDistance > maxMinRelativeDistance {
		return nil, []error{&ConfigurationError{Reason: "minimum relative distance must lie in [0.0, 0.99]"}}
	}

	cache := model.NewCache(b.source, b.logger)

	candidates := make([]language.Language, len(b.languages))
	copy(candidates, b.languages)

	det := &Detector{
		candidates:          candidates,
		minRelativeDistance: b.minRelativeDistance,
		lowAccuracy:         b.lowAccuracy,
		cache:               cache,
		logger:              loggerOrNop(b.logger),
	}

	var loadErrs []error
	if b.preload {
		failed := cache.Preload(candidates)
		for _, lang := range candidates {
			if err, ok := failed[lang]; ok {
				loadErrs = append(loadErrs, &ModelMissingError{Language: lang.String(), Cause: err})
				det.demote(lang, err)
			}
		}
	}

	return det, loadErrs
}

func loggerOrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
