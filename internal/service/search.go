package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Match is a search result with the title characters that matched the term
type Match struct {
	domain.Result
	MatchedIndexes []int // Rune positions in DisplayTitle()
}

// resultIndex implements sahilm/fuzzy.Source over result titles
type resultIndex []domain.Result

// String returns the display title at index i (implements fuzzy.Source)
func (idx resultIndex) String(i int) string { return idx[i].DisplayTitle() }

// Len returns the number of results (implements fuzzy.Source)
func (idx resultIndex) Len() int { return len(idx) }

// SearchService owns the debouncer that sits between a search box and a strategy
type SearchService struct {
	strategy  autocomplete.Strategy[domain.Result]
	debouncer *autocomplete.Debouncer[domain.Result]
	logger    *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(strategy autocomplete.Strategy[domain.Result], logger *slog.Logger, opts ...autocomplete.Option) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	opts = append([]autocomplete.Option{autocomplete.WithLogger(logger)}, opts...)

	return &SearchService{
		strategy:  strategy,
		debouncer: autocomplete.NewDebouncer(strategy, opts...),
		logger:    logger,
	}
}

// Search schedules a debounced search; only the last term of a burst is requested
func (s *SearchService) Search(term string) *autocomplete.Future[domain.Result] {
	return s.debouncer.Search(term)
}

// Cancel drops the scheduled search, if any
func (s *SearchService) Cancel() {
	s.debouncer.Cancel()
}

// Pending reports whether a search is waiting for the quiet window to pass
func (s *SearchService) Pending() bool {
	return s.debouncer.Pending()
}

// Lookup queries the strategy directly, bypassing the debouncer
func (s *SearchService) Lookup(ctx context.Context, term string) ([]domain.Result, error) {
	s.logger.Debug("lookup", "term", term)

	results, err := s.strategy.Request(ctx, term)
	if err != nil {
		s.logger.Warn("lookup failed", "term", term, "error", err)
		return nil, err
	}

	s.logger.Debug("lookup complete", "term", term, "results", len(results))
	return results, nil
}

// Highlight pairs each result with the positions of its display title that
// fuzzy-match term. Order is preserved; results that do not match get no
// positions.
func Highlight(term string, results []domain.Result) []Match {
	out := make([]Match, len(results))
	for i, r := range results {
		out[i] = Match{Result: r}
	}

	term = strings.TrimSpace(term)
	if term == "" || len(results) == 0 {
		return out
	}

	idx := resultIndex(results)
	for _, m := range fuzzy.FindFrom(term, idx) {
		out[m.Index].MatchedIndexes = runeIndexes(idx.String(m.Index), m.MatchedIndexes)
	}
	return out
}

// runeIndexes converts byte offsets reported by fuzzy into rune positions
func runeIndexes(s string, byteIndexes []int) []int {
	if len(byteIndexes) == 0 {
		return nil
	}

	positions := make(map[int]int, len(s))
	runeIdx := 0
	for byteIdx := range s {
		positions[byteIdx] = runeIdx
		runeIdx++
	}

	out := make([]int, 0, len(byteIndexes))
	for _, b := range byteIndexes {
		if r, ok := positions[b]; ok {
			out = append(out, r)
		}
	}
	return out
}
