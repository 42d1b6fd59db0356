package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/tunes/internal/service"
)

// SearchCmd schedules a debounced search and returns a command that waits
// for its outcome. The search is scheduled immediately, on the update loop,
// so keystrokes reach the debouncer in order; only the wait runs in the
// command goroutine.
func SearchCmd(svc *service.SearchService, term string) tea.Cmd {
	future := svc.Search(term)
	return func() tea.Msg {
		results, err := future.Wait(context.Background())
		if err != nil {
			return ErrMsg{Err: err, Context: "searching", Term: term}
		}
		return SearchResultsMsg{Results: results, Term: term}
	}
}
