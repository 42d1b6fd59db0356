package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmcdole/tunes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# favourites
Led Zeppelin - Rock and Roll
Bill Haley - Rock Around the Clock

Queen - Bohemian Rhapsody
Greensleeves
`

func titles(results []domain.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, domain.Result{ID: "2", Kind: domain.ResultKindCatalog, Artist: "Led Zeppelin", Title: "Rock and Roll"}, entries[0])
	assert.Equal(t, "5", entries[2].ID)
	assert.Equal(t, "Greensleeves", entries[3].Title)
	assert.Empty(t, entries[3].Artist)
}

func TestRequestRanksMatches(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	c := New(entries, 0, nil)

	results, err := c.Request(context.Background(), "rock")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rock and Roll", "Rock Around the Clock"}, titles(results))

	results, err = c.Request(context.Background(), "QUEEN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bohemian Rhapsody"}, titles(results))

	results, err = c.Request(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRequestEmptyTerm(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	results, err := New(entries, 0, nil).Request(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRequestLimit(t *testing.T) {
	entries, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	results, err := New(entries, 1, nil).Request(context.Background(), "rock")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestRequestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, 0, nil).Request(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "songs.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c, err := Load(path, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n"), 0644))
	_, err = Load(empty, 10, nil)
	assert.ErrorIs(t, err, domain.ErrCatalogEmpty)

	_, err = Load(filepath.Join(dir, "missing.txt"), 10, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
