package tui

import (
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/tunes/internal/autocomplete"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/mmcdole/tunes/internal/service"
	"github.com/mmcdole/tunes/internal/tui/components"
)

// Model is the root Bubble Tea model: a single search box
type Model struct {
	search   *service.SearchService
	box      components.SearchBox
	logger   *slog.Logger
	selected *domain.Result
}

// NewModel creates the TUI model. The service should reject abandoned
// searches (autocomplete.WithAbandonedRejection) so waiting commands finish.
func NewModel(search *service.SearchService, maxResults int, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		search: search,
		box:    components.NewSearchBox(maxResults),
		logger: logger,
	}
}

// Selected returns the result chosen with enter, or nil if the user quit
func (m Model) Selected() *domain.Result {
	return m.selected
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.box.Init()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.box.SetSize(msg.Width, msg.Height)
		return m, nil

	case SearchResultsMsg:
		// A request issued before the latest keystroke may still complete
		if msg.Term != m.box.Query() {
			m.logger.Debug("dropping stale results", "term", msg.Term, "current", m.box.Query())
			return m, nil
		}
		m.box.SetResults(service.Highlight(msg.Term, msg.Results))
		return m, nil

	case ErrMsg:
		if errors.Is(msg.Err, autocomplete.ErrSuperseded) || msg.Term != m.box.Query() {
			return m, nil
		}
		m.logger.Warn("search failed", "term", msg.Term, "error", msg.Err)
		m.box.SetError(msg)
		return m, nil
	}

	var cmd tea.Cmd
	var event components.SearchBoxEvent
	m.box, cmd, event = m.box.Update(msg)

	switch event {
	case components.EventClosed:
		m.search.Cancel()
		return m, tea.Quit

	case components.EventSelected:
		m.selected = m.box.Selected()
		m.search.Cancel()
		return m, tea.Quit

	case components.EventQueryChanged:
		query := m.box.Query()
		if query == "" {
			m.search.Cancel()
			m.box.SetResults(nil)
			return m, cmd
		}
		m.box.SetLoading(true)
		return m, tea.Batch(cmd, SearchCmd(m.search, query))
	}

	return m, cmd
}

// View renders the model
func (m Model) View() string {
	return m.box.View()
}
