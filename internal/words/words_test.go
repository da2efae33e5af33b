package words

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestReadDictionary(t *testing.T) {
	got, err := ReadDictionary(strings.NewReader("# comment\napple\n\n  Paris \nBERRY\napple\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Paris", "BERRY", "apple"}, got)
}

func TestReadJSONDictionary(t *testing.T) {
	got, err := ReadJSONDictionary(strings.NewReader(`{"zebra": 1, "apple": {"x": [1,2]}, "Paris": null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "Paris"}, got, "object keys keep document order")

	got, err = ReadJSONDictionary(strings.NewReader(`{"trace": 1, "crane": 2, "trace": 3}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "crane"}, got, "repeated keys keep their first position")

	got, err = ReadJSONDictionary(strings.NewReader(`["trace", "crane", "trace"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"trace", "crane", "trace"}, got, "arrays are returned as written")

	got, err = ReadJSONDictionary(strings.NewReader(`["crane", "Texas", "adieu"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "Texas", "adieu"}, got)

	_, err = ReadJSONDictionary(strings.NewReader(`"crane"`))
	assert.Error(t, err)
	_, err = ReadJSONDictionary(strings.NewReader(`[1, 2]`))
	assert.Error(t, err)
}

func TestLoadDictionary_Missing(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrDictionaryUnavailable)

	_, err = Load(Sources{DictionaryFile: filepath.Join(t.TempDir(), "nope.json")})
	assert.ErrorIs(t, err, ErrDictionaryUnavailable)
}

func TestLoadDictionary_BadJSON(t *testing.T) {
	p := writeFile(t, "words.json", `{"crane": `)
	_, err := LoadDictionary(p)
	assert.ErrorIs(t, err, ErrDictionaryUnavailable)
}

func TestLoad_Files(t *testing.T) {
	dict := writeFile(t, "words.json", `{"crane":1,"Paris":1,"trace":1,"apples":1,"Crane":1,"trace":1}`)
	allowed := writeFile(t, "allowed.txt", "ZEBRA\nxx\nquail\n")

	lx, err := Load(Sources{DictionaryFile: dict, AllowedFile: allowed})
	require.NoError(t, err)

	assert.Equal(t, []string{"crane", "Paris", "trace", "apples", "Crane"}, lx.Dictionary())
	assert.Equal(t, []string{"crane", "trace"}, lx.Answers())
	assert.True(t, lx.IsAllowed("ZEBRA"))
	assert.True(t, lx.IsAllowed("quail"))
	assert.False(t, lx.IsAllowed("crane"), "dictionary words are not accepted guesses by themselves")
	assert.False(t, lx.IsAllowed("xx"))

	d, a, g := lx.Stats()
	assert.Equal(t, 5, d)
	assert.Equal(t, 2, a)
	assert.Equal(t, 2, g)

	ok, err := lx.Oracle().Confirm(context.Background(), "QUAIL")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = lx.Oracle().Confirm(context.Background(), "CRANE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOracle_RefusesWordsOutsideAllowedList(t *testing.T) {
	lx := New([]string{"qwert", "crane"}, []string{"crane"})
	ctx := context.Background()

	ok, err := lx.Oracle().Confirm(ctx, "QWERT")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = lx.Oracle().Confirm(ctx, "crane")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoad_EmbeddedAllowedCoversAnswers(t *testing.T) {
	lx, err := Load(Sources{})
	require.NoError(t, err)
	for _, w := range lx.Answers() {
		assert.True(t, lx.IsAllowed(w), "%s is an answer but not an accepted guess", w)
	}
}

func TestLoad_Embedded(t *testing.T) {
	lx, err := Load(Sources{})
	require.NoError(t, err)

	d, a, g := lx.Stats()
	assert.Greater(t, d, a, "embedded dictionary carries proper nouns and other lengths")
	assert.Greater(t, a, 100)
	assert.GreaterOrEqual(t, g, a)
	assert.True(t, lx.IsAllowed("ADIEU"))
	assert.True(t, lx.IsAllowed("zebra"))
	assert.False(t, lx.IsAllowed("Paris"))
	assert.Contains(t, lx.Dictionary(), "Paris")
	assert.Contains(t, lx.Answers(), lx.RandomAnswer())
}

func TestRandomAnswer_Empty(t *testing.T) {
	assert.Equal(t, "crane", New(nil, nil).RandomAnswer())
}
