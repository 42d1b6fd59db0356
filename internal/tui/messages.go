package tui

import "github.com/mmcdole/tunes/internal/domain"

// Message types for the TUI

// ErrMsg represents a failed search
type ErrMsg struct {
	Err     error
	Context string
	Term    string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e ErrMsg) Unwrap() error {
	return e.Err
}

// SearchResultsMsg signals that search results are ready
type SearchResultsMsg struct {
	Results []domain.Result
	Term    string
}
