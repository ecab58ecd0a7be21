package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptMatches(t *testing.T) {
	assert.True(t, Latin.Matches("hello"))
	assert.False(t, Latin.Matches("hello!"))
	assert.True(t, Cyrillic.Matches("привет"))
	assert.True(t, Han.Matches("漢字"))
	assert.True(t, Hiragana.Matches("ひらがな"))
	assert.True(t, Katakana.Matches("カタカナ"))
	assert.True(t, Hangul.Matches("한국어"))
	assert.True(t, Greek.Matches("ελληνικά"))
	assert.True(t, Hebrew.Matches("עברית"))
	assert.True(t, Arabic.Matches("العربية"))
	assert.False(t, Latin.Matches(""))
}

func TestOfChar(t *testing.T) {
	sc, ok := OfChar('a')
	assert.True(t, ok)
	assert.Equal(t, Latin, sc)

	sc, ok = OfChar('漢')
	assert.True(t, ok)
	assert.Equal(t, Han, sc)

	_, ok = OfChar('1')
	assert.False(t, ok)
}

func TestIsJapanese(t *testing.T) {
	assert.True(t, IsJapanese("こんにちは"))
	assert.True(t, IsJapanese("カタカナ"))
	assert.True(t, IsJapanese("漢字とひらがな"))
	assert.False(t, IsJapanese("漢字"), "pure Han alone is Chinese, not Japanese")
	assert.False(t, IsJapanese("hello"))
}

func TestIsLogogram(t *testing.T) {
	assert.True(t, IsLogogram('漢'))
	assert.True(t, IsLogogram('ひ'))
	assert.True(t, IsLogogram('カ'))
	assert.True(t, IsLogogram('한'))
	assert.False(t, IsLogogram('a'))
}
