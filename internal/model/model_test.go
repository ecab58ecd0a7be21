package model

import (
	"reflect"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiatech/lingua/internal/ngram"
	"github.com/caiatech/lingua/language"
)

func mapFSWith(t *testing.T, lang language.Language, n int, logical map[string]string) fstest.MapFS {
	t.Helper()
	data, err := EncodeTable(logical)
	require.NoError(t, err)
	return fstest.MapFS{
		lang.IsoCode639_3() + "/" + itoa(n) + ".json.zst": &fstest.MapFile{Data: data},
	}
}

func itoa(n int) string {
	return string(rune('0' + n))
}

func TestParseFraction(t *testing.T) {
	v, err := parseFraction("1/2")
	require.NoError(t, err)
	assert.InDelta(t, -0.6931471805599453, v, 1e-12)

	_, err = parseFraction("1/0")
	assert.Error(t, err)

	_, err = parseFraction("nope")
	assert.Error(t, err)
}

func TestLoadTableRoundTrip(t *testing.T) {
	fsys := mapFSWith(t, language.German, 3, map[string]string{
		"1/100": "der die das",
		"3/100": "ich",
	})
	src := FSSource{FS: fsys}

	r, err := src.Open(language.German, 3)
	require.NoError(t, err)
	defer r.Close()

	table, err := loadTable(r)
	require.NoError(t, err)

	v, ok := table.RelativeFrequency(ngram.MustNew("der"))
	require.True(t, ok)
	assert.Less(t, v, 0.0)

	v2, ok := table.RelativeFrequency(ngram.MustNew("das"))
	require.True(t, ok)
	assert.InDelta(t, v, v2, 1e-12)

	_, ok = table.RelativeFrequency(ngram.MustNew("xyz"))
	assert.False(t, ok)
}

func TestCacheGetLoadsOnce(t *testing.T) {
	fsys := mapFSWith(t, language.English, 1, map[string]string{"1/10": "e"})
	cache := NewCache(FSSource{FS: fsys}, nil)

	t1, err := cache.Get(language.English, 1)
	require.NoError(t, err)
	t2, err := cache.Get(language.English, 1)
	require.NoError(t, err)

	_, ok := t1.RelativeFrequency(ngram.MustNew("e"))
	assert.True(t, ok)
	assert.Equal(t, reflect.ValueOf(t1).Pointer(), reflect.ValueOf(t2).Pointer(), "second Get must return the same cached table")
}

func TestCacheGetConcurrentDeduplicates(t *testing.T) {
	fsys := mapFSWith(t, language.French, 1, map[string]string{"1/10": "e"})
	cache := NewCache(FSSource{FS: fsys}, nil)

	const goroutines = 16
	var wg sync.WaitGroup
	results := make([]Table, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := cache.Get(language.French, 1)
			require.NoError(t, err)
			results[i] = tbl
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, reflect.ValueOf(results[0]).Pointer(), reflect.ValueOf(results[i]).Pointer())
	}
}

func TestCacheUnloadReloads(t *testing.T) {
	fsys := mapFSWith(t, language.Spanish, 1, map[string]string{"1/10": "e"})
	cache := NewCache(FSSource{FS: fsys}, nil)

	_, err := cache.Get(language.Spanish, 1)
	require.NoError(t, err)

	cache.Unload()

	_, err = cache.Get(language.Spanish, 1)
	require.NoError(t, err, "unload must allow a fresh reload from source")
}

func TestCacheGetMissingLanguageIsError(t *testing.T) {
	cache := NewCache(FSSource{FS: fstest.MapFS{}}, nil)
	_, err := cache.Get(language.Zulu, 1)
	assert.Error(t, err)
}

func TestPreloadReportsMissingWithoutFailing(t *testing.T) {
	fsys := mapFSWith(t, language.Spanish, 1, map[string]string{"1/10": "e"})
	for n := 2; n <= 5; n++ {
		data, err := EncodeTable(map[string]string{})
		require.NoError(t, err)
		fsys["spa/"+itoa(n)+".json.zst"] = &fstest.MapFile{Data: data}
	}
	cache := NewCache(FSSource{FS: fsys}, nil)

	failed := cache.Preload([]language.Language{language.Spanish, language.Zulu})
	assert.NotContains(t, failed, language.Spanish)
	assert.Contains(t, failed, language.Zulu)
}
