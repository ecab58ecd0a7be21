package lingua

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiatech/lingua/internal/model"
	"github.com/caiatech/lingua/language"
)

func englishOnlyFS(t *testing.T) fstest.MapFS {
	t.Helper()
	unigrams, err := model.EncodeTable(map[string]string{"1/100": "h e l o w r d n t s"})
	require.NoError(t, err)
	empty, err := model.EncodeTable(map[string]string{})
	require.NoError(t, err)

	return fstest.MapFS{
		"eng/1.json.zst": &fstest.MapFile{Data: unigrams},
		"eng/2.json.zst": &fstest.MapFile{Data: empty},
		"eng/3.json.zst": &fstest.MapFile{Data: empty},
		"eng/4.json.zst": &fstest.MapFile{Data: empty},
		"eng/5.json.zst": &fstest.MapFile{Data: empty},
	}
}

func newTestBuilder(t *testing.T) *DetectorBuilder {
	t.Helper()
	src := FSModelSource(englishOnlyFS(t))
	return NewBuilder([]language.Language{language.English, language.German, language.Greek}, src)
}

func TestBuilderRejectsTooFewLanguages(t *testing.T) {
	src := FSModelSource(fstest.MapFS{})
	_, errs := NewBuilder([]language.Language{language.English}, src).Build()
	require.Len(t, errs, 1)
	assert.IsType(t, &ConfigurationError{}, errs[0])
}

func TestBuilderRejectsOutOfRangeDistance(t *testing.T) {
	src := FSModelSource(fstest.MapFS{})
	_, errs := NewBuilder([]language.Language{language.English, language.German}, src).
		WithMinimumRelativeDistance(1.5).
		Build()
	require.Len(t, errs, 1)
	assert.IsType(t, &ConfigurationError{}, errs[0])
}

func TestDetectUsesRuleEngineForUniqueScript(t *testing.T) {
	det, errs := newTestBuilder(t).Build()
	assert.Empty(t, errs)

	lang, ok := det.Detect("ελληνικά")
	require.True(t, ok)
	assert.Equal(t, language.Greek, lang)
}

func TestDetectFallsBackToScorerForLatinText(t *testing.T) {
	det, errs := newTestBuilder(t).Build()
	assert.Empty(t, errs)

	lang, ok := det.Detect("hello world")
	require.True(t, ok)
	assert.Equal(t, language.English, lang)
}

func TestDetectEmptyTextIsNoDecision(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	_, ok := det.Detect("   123 !!! ")
	assert.False(t, ok)
}

func TestConfidenceValuesSortedDescendingAndWinnerIsOne(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	values := det.ConfidenceValues("hello world")
	require.NotEmpty(t, values)
	assert.Equal(t, language.English, values[0].Language)
	assert.Equal(t, 1.0, values[0].Ratio)
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i].Ratio, values[i-1].Ratio)
	}
}

func TestConfidenceReturnsZeroForUnevidencedLanguage(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	c := det.Confidence("hello world", language.German)
	assert.Equal(t, 0.0, c)
}

func TestDetectMultipleSplitsOnScriptBoundary(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	text := "ελληνικά hello world"
	results := det.DetectMultiple(text)
	require.NotEmpty(t, results)

	assert.Equal(t, 0, results[0].StartIndex)
	assert.Equal(t, len([]rune(text)), results[len(results)-1].EndIndex)
	for i := 0; i < len(results)-1; i++ {
		assert.Equal(t, results[i].EndIndex, results[i+1].StartIndex)
	}
}

func TestDetectBatchPreservesOrder(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	texts := []string{"hello world", "ελληνικά", "hello world"}
	results := det.DetectBatch(texts)
	require.Len(t, results, 3)
	assert.Equal(t, language.English, results[0].Language)
	assert.Equal(t, language.Greek, results[1].Language)
	assert.Equal(t, language.English, results[2].Language)
}

// germanAndEnglishFS builds unigram-only models (n=2..5 empty, matching
// englishOnlyFS's pattern) where German's distinct characters carry a
// higher relative frequency than English's, so the statistical scorer
// prefers German once the rule engine falls through to it.
func germanAndEnglishFS(t *testing.T) fstest.MapFS {
	t.Helper()
	germanUnigrams, err := model.EncodeTable(map[string]string{"1/20": "m e i n h a u s t g r o ß"})
	require.NoError(t, err)
	englishUnigrams, err := model.EncodeTable(map[string]string{"1/100": "h e l o w r d n t s"})
	require.NoError(t, err)
	empty, err := model.EncodeTable(map[string]string{})
	require.NoError(t, err)

	return fstest.MapFS{
		"deu/1.json.zst": &fstest.MapFile{Data: germanUnigrams},
		"deu/2.json.zst": &fstest.MapFile{Data: empty},
		"deu/3.json.zst": &fstest.MapFile{Data: empty},
		"deu/4.json.zst": &fstest.MapFile{Data: empty},
		"deu/5.json.zst": &fstest.MapFile{Data: empty},
		"eng/1.json.zst": &fstest.MapFile{Data: englishUnigrams},
		"eng/2.json.zst": &fstest.MapFile{Data: empty},
		"eng/3.json.zst": &fstest.MapFile{Data: empty},
		"eng/4.json.zst": &fstest.MapFile{Data: empty},
		"eng/5.json.zst": &fstest.MapFile{Data: empty},
	}
}

// TestDetectFallsThroughToScorerWhenRuleEngineNoneBucketWins: the rule
// engine's unambiguous-decision pass aggregates 3 evidence-free words
// ("mein", "haus", "ist") into a None bucket of size 3, which strictly
// beats German's single-word count of 1 (from "groß"'s unique "ß") in
// Decide's internal vote. That None verdict must still fall through to
// the filter pass and statistical scorer rather than being treated as
// "no language detected": the rule engine's "no clear winner" is not
// the same as the classifier's own final answer.
func TestDetectFallsThroughToScorerWhenRuleEngineNoneBucketWins(t *testing.T) {
	src := FSModelSource(germanAndEnglishFS(t))
	det, errs := NewBuilder([]language.Language{language.German, language.English}, src).Build()
	assert.Empty(t, errs)

	lang, ok := det.Detect("mein Haus ist groß")
	require.True(t, ok)
	assert.Equal(t, language.German, lang)
}

func TestNormalizedConfidenceValuesSumToOne(t *testing.T) {
	src := FSModelSource(germanAndEnglishFS(t))
	det, _ := NewBuilder([]language.Language{language.German, language.English}, src).Build()

	values := det.NormalizedConfidenceValues("mein haus")
	require.NotEmpty(t, values)
	var sum float64
	for _, v := range values {
		sum += v.Ratio
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestMinimumRelativeDistanceForcesNoDecision(t *testing.T) {
	src := FSModelSource(germanAndEnglishFS(t))

	relaxed, errs := NewBuilder([]language.Language{language.German, language.English}, src).Build()
	assert.Empty(t, errs)
	_, ok := relaxed.Detect("mein haus")
	require.True(t, ok, "without a distance threshold the top language wins")

	strict, errs := NewBuilder([]language.Language{language.German, language.English}, src).
		WithMinimumRelativeDistance(0.9).
		Build()
	assert.Empty(t, errs)
	_, ok = strict.Detect("mein haus")
	assert.False(t, ok, "a 0.9 gap requirement must force a no-decision on close scores")
}

func TestPreloadDemotesLanguageWithMissingModels(t *testing.T) {
	src := FSModelSource(germanAndEnglishFS(t))
	det, errs := NewBuilder([]language.Language{language.German, language.English, language.French}, src).
		WithPreloadedModels().
		Build()
	require.NotNil(t, det)
	require.NotEmpty(t, errs, "French has no model data and must be reported")
	assert.IsType(t, &ModelMissingError{}, errs[0])

	lang, ok := det.Detect("mein Haus ist groß")
	require.True(t, ok, "the surviving candidates must still classify")
	assert.Equal(t, language.German, lang)
	assert.Equal(t, 0.0, det.Confidence("mein Haus ist groß", language.French))
}

func TestUnloadModelsAllowsReload(t *testing.T) {
	det, _ := newTestBuilder(t).Build()
	_, ok := det.Detect("hello world")
	require.True(t, ok)

	det.UnloadModels()

	_, ok = det.Detect("hello world")
	assert.True(t, ok)
}
