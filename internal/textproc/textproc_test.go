package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "mein haus ist gross", Clean("Mein Haus ist gross!!  "))
	assert.Equal(t, "hello world", Clean("  Hello,   World123. "))
	assert.Equal(t, "", Clean("123 !!! ???"))
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   "))
}

func TestWordsSplitsLogogramsStandalone(t *testing.T) {
	words := Words(Clean("私は元気です"))
	// every character is a logogram (hiragana/han), so each becomes its own word
	assert.Equal(t, []string{"私", "は", "元", "気", "で", "す"}, words)
}

func TestWordsWhitespaceSplitsNormally(t *testing.T) {
	words := Words(Clean("the quick fox"))
	assert.Equal(t, []string{"the", "quick", "fox"}, words)
}

func TestWordsSingleWordWhenNoSpace(t *testing.T) {
	words := Words(Clean("hello"))
	assert.Equal(t, []string{"hello"}, words)
}

func TestWordsMixedLogogramAndLatin(t *testing.T) {
	words := Words(Clean("I love 日本"))
	assert.Equal(t, []string{"i", "love", "日", "本"}, words)
}

func TestWordsEmpty(t *testing.T) {
	assert.Nil(t, Words(""))
}

func TestNgramWindows(t *testing.T) {
	windows := NgramWindows("abcabc", 3)
	var texts []string
	for _, g := range windows {
		texts = append(texts, g.String())
	}
	assert.ElementsMatch(t, []string{"abc", "bca", "cab"}, texts)
}

func TestNgramWindowsSkipsNonLetterWindows(t *testing.T) {
	windows := NgramWindows("ab c", 3)
	for _, g := range windows {
		assert.NotContains(t, g.String(), " ")
	}
}

func TestNgramWindowsTooLongSkipped(t *testing.T) {
	assert.Nil(t, NgramWindows("ab", 3))
}

func TestRuneLenCountsCharactersNotBytes(t *testing.T) {
	assert.Equal(t, 3, RuneLen("日本語"))
}
