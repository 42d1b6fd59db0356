package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/tunes/internal/adapter"
	"github.com/mmcdole/tunes/internal/adapter/source/catalog"
	"github.com/mmcdole/tunes/internal/adapter/source/itunes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStrategyITunes(t *testing.T) {
	s, err := NewStrategy(adapter.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.IsType(t, &itunes.Client{}, s)
}

func TestNewStrategyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.txt")
	require.NoError(t, os.WriteFile(path, []byte("Queen - Bohemian Rhapsody\n"), 0644))

	cfg := adapter.DefaultConfig()
	cfg.Search.Source = adapter.SourceTypeCatalog
	cfg.Catalog.File = path

	s, err := NewStrategy(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &catalog.Catalog{}, s)
}

func TestNewStrategyErrors(t *testing.T) {
	_, err := NewStrategy(nil, nil)
	assert.Error(t, err)

	cfg := adapter.DefaultConfig()
	cfg.Search.Source = "napster"
	_, err = NewStrategy(cfg, nil)
	assert.ErrorContains(t, err, "unknown search source")

	cfg = adapter.DefaultConfig()
	cfg.Search.Source = adapter.SourceTypeCatalog
	_, err = NewStrategy(cfg, nil)
	assert.Error(t, err)

	cfg = adapter.DefaultConfig()
	cfg.Search.Endpoint = ""
	_, err = NewStrategy(cfg, nil)
	assert.Error(t, err)
}
