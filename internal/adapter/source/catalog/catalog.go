// Package catalog implements an offline search strategy that fuzzy-matches
// terms against a fixed list of entries loaded from a text file.
package catalog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/tunes/internal/domain"
)

// Catalog is an in-memory search strategy
type Catalog struct {
	entries []domain.Result
	targets []string // DisplayTitle of each entry, matched against terms
	limit   int
	logger  *slog.Logger
}

// New creates a catalog over entries. limit <= 0 returns every match.
func New(entries []domain.Result, limit int, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.DisplayTitle()
	}

	return &Catalog{
		entries: entries,
		targets: targets,
		limit:   limit,
		logger:  logger,
	}
}

// Load reads a catalog file, see Parse for the format
func Load(path string, limit int, logger *slog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrCatalogEmpty)
	}

	return New(entries, limit, logger), nil
}

// Parse reads one entry per line in the form "Artist - Title".
// Blank lines and lines starting with # are skipped; a line without the
// separator is a bare title.
func Parse(r io.Reader) ([]domain.Result, error) {
	var entries []domain.Result

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := domain.Result{
			ID:   strconv.Itoa(lineNum),
			Kind: domain.ResultKindCatalog,
		}
		if artist, title, ok := strings.Cut(line, " - "); ok {
			entry.Artist = strings.TrimSpace(artist)
			entry.Title = strings.TrimSpace(title)
		} else {
			entry.Title = line
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Request returns the entries matching term, best matches first
func (c *Catalog) Request(ctx context.Context, term string) ([]domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Result{}, nil
	}

	ranks := fuzzy.RankFindFold(term, c.targets)

	// Ties keep catalog order
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	n := len(ranks)
	if c.limit > 0 && n > c.limit {
		n = c.limit
	}

	results := make([]domain.Result, n)
	for i := 0; i < n; i++ {
		results[i] = c.entries[ranks[i].OriginalIndex]
	}

	c.logger.Debug("catalog search", "term", term, "matches", len(ranks), "returned", n)
	return results, nil
}
