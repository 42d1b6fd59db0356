package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/tunes/internal/adapter"
	"github.com/mmcdole/tunes/internal/adapter/source/catalog"
	"github.com/mmcdole/tunes/internal/adapter/source/itunes"
	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/domain"
)

// Strategy is a search backend producing domain results
type Strategy = autocomplete.Strategy[domain.Result]

// NewStrategy creates the search backend selected by the configuration.
// This factory function abstracts away the specific backend implementation.
func NewStrategy(cfg *adapter.Config, logger *slog.Logger) (Strategy, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	switch cfg.Search.Source {
	case adapter.SourceTypeITunes, "":
		if cfg.Search.Endpoint == "" {
			return nil, fmt.Errorf("search endpoint is required")
		}
		return itunes.NewClient(itunes.Options{
			Endpoint:      cfg.Search.Endpoint,
			Media:         cfg.Search.Media,
			Entity:        cfg.Search.Entity,
			Country:       cfg.Search.Country,
			Limit:         cfg.Search.Limit,
			Timeout:       cfg.Search.Timeout,
			RatePerMinute: cfg.Search.RatePerMin,
		}, logger), nil

	case adapter.SourceTypeCatalog:
		if cfg.Catalog.File == "" {
			return nil, fmt.Errorf("catalog source requires a catalog file")
		}
		c, err := catalog.Load(cfg.Catalog.File, cfg.Catalog.Limit, logger)
		if err != nil {
			return nil, err
		}
		return c, nil

	default:
		return nil, fmt.Errorf("unknown search source: %s", cfg.Search.Source)
	}
}
