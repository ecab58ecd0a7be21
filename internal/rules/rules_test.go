package rules

import (
	"testing"

	"github.com/caiatech/lingua/internal/alphabet"
	"github.com/caiatech/lingua/internal/textproc"
	"github.com/caiatech/lingua/language"
	"github.com/stretchr/testify/assert"
)

func TestDecideSingleLanguageScriptIsUnambiguous(t *testing.T) {
	e := New([]language.Language{language.Greek, language.English, language.Russian})
	words := textproc.Words(textproc.Clean("Ελληνικά"))
	d := e.Decide(words)
	assert.True(t, d.Decided)
	assert.False(t, d.None)
	assert.Equal(t, language.Greek, d.Language)
}

func TestDecideHanOnlyIsChinese(t *testing.T) {
	e := New([]language.Language{language.Chinese, language.Japanese, language.English})
	words := textproc.Words(textproc.Clean("这是中文"))
	d := e.Decide(words)
	assert.True(t, d.Decided)
	assert.Equal(t, language.Chinese, d.Language)
}

func TestDecideHiraganaAndHanIsJapanese(t *testing.T) {
	e := New([]language.Language{language.Chinese, language.Japanese, language.English})
	words := textproc.Words(textproc.Clean("私は元気です"))
	d := e.Decide(words)
	assert.True(t, d.Decided)
	assert.Equal(t, language.Japanese, d.Language)
}

func TestDecideLatinAlphabetAloneIsUndecided(t *testing.T) {
	e := New([]language.Language{language.English, language.French, language.German})
	words := textproc.Words(textproc.Clean("hello world"))
	d := e.Decide(words)
	assert.False(t, d.Decided)
}

func TestDecideEmptyWordsUndecided(t *testing.T) {
	e := New([]language.Language{language.English})
	d := e.Decide(nil)
	assert.False(t, d.Decided)
}

func TestFilterNarrowsToMostFrequentScript(t *testing.T) {
	enabled := []language.Language{language.Russian, language.Ukrainian, language.English, language.French}
	e := New(enabled)
	words := textproc.Words(textproc.Clean("привет как дела у тебя сегодня"))
	out := e.Filter(words)
	assert.NotEmpty(t, out)
	for _, l := range out {
		assert.True(t, l.HasScript(alphabet.Cyrillic))
	}
}

func TestFilterPicksTopScriptWhenOnlyTheTopTies(t *testing.T) {
	// Latin and Cyrillic both occur 3 times, Greek occurs once: the top
	// is tied between two scripts, but the full set of distinct counts
	// is {3,1}, not a single value, so this must not fall back to the
	// full enabled set. The top-tied script (alphabet.All's Latin, which
	// sorts before Cyrillic) should still narrow the candidates.
	enabled := []language.Language{language.English, language.Russian, language.Greek}
	e := New(enabled)
	words := []string{"cat", "dog", "sun", "привет", "как", "дела", "ελ"}
	out := e.Filter(words)
	assert.NotEmpty(t, out)
	for _, l := range out {
		assert.True(t, l.HasScript(alphabet.Latin))
	}
}

func TestFilterFallsBackToEnabledSetWhenNoScriptEvidence(t *testing.T) {
	enabled := []language.Language{language.English, language.French}
	e := New(enabled)
	out := e.Filter([]string{"123", "456"})
	assert.ElementsMatch(t, enabled, out)
}

func TestFilterNeverEmptiesTheEnabledSet(t *testing.T) {
	enabled := []language.Language{language.English}
	e := New(enabled)
	words := textproc.Words(textproc.Clean("привет"))
	out := e.Filter(words)
	assert.NotEmpty(t, out)
}

func TestCharacterEvidenceGatesPerLanguageNotAggregate(t *testing.T) {
	// 10 words: 5 carry Polish's unique "ł", 1 carries Czech's unique
	// "ě", 4 carry neither. Polish clears its own half-the-words bar
	// (5 >= 5) and survives; Czech does not (1 < 5) and must be
	// dropped, even though some word did carry Czech evidence.
	candidates := []language.Language{language.Polish, language.Czech}
	e := New(candidates)
	words := []string{"łubudu", "łatwy", "łyk", "łza", "miły", "ěsko", "plain", "plain", "plain", "plain"}

	out := e.characterEvidence(words, candidates)
	assert.ElementsMatch(t, []language.Language{language.Polish}, out)
}
