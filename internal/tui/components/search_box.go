package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/tunes/internal/domain"
	"github.com/mmcdole/tunes/internal/service"
	"github.com/mmcdole/tunes/internal/tui/styles"
)

// SearchBoxEvent tells the parent what a key press meant
type SearchBoxEvent int

const (
	EventNone SearchBoxEvent = iota
	EventQueryChanged
	EventSelected
	EventClosed
)

// SearchBox is a text input with a list of highlighted results below it
type SearchBox struct {
	input      textinput.Model
	results    []service.Match
	cursor     int
	width      int
	height     int
	maxResults int
	loading    bool
	prevQuery  string
	err        error
}

// NewSearchBox creates a new search box showing at most maxResults rows
func NewSearchBox(maxResults int) SearchBox {
	if maxResults <= 0 {
		maxResults = 10
	}

	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	ti.CharLimit = 200
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return SearchBox{
		input:      ti,
		maxResults: maxResults,
	}
}

// SetResults replaces the results and resets the cursor
func (o *SearchBox) SetResults(results []service.Match) {
	o.results = results
	o.cursor = 0
	o.loading = false
	o.err = nil
}

// SetLoading marks a search as scheduled
func (o *SearchBox) SetLoading(loading bool) {
	o.loading = loading
}

// SetError shows a failed search
func (o *SearchBox) SetError(err error) {
	o.err = err
	o.loading = false
	o.results = nil
	o.cursor = 0
}

// SetSize updates the component dimensions
func (o *SearchBox) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = max(width-10, 10)
}

// Query returns the current search query
func (o SearchBox) Query() string {
	return o.input.Value()
}

// Loading reports whether a search is outstanding
func (o SearchBox) Loading() bool {
	return o.loading
}

// Selected returns the highlighted result, or nil when there are none
func (o SearchBox) Selected() *domain.Result {
	if len(o.results) == 0 || o.cursor >= len(o.results) {
		return nil
	}
	return &o.results[o.cursor].Result
}

// ResultCount returns the number of results
func (o SearchBox) ResultCount() int {
	return len(o.results)
}

// Init initializes the component
func (o SearchBox) Init() tea.Cmd {
	return textinput.Blink
}

// queryChanged returns true if the query changed since last check and updates prevQuery
func (o *SearchBox) queryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// Update handles messages
func (o SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd, SearchBoxEvent) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, SearchBoxKeys.Escape):
			return o, nil, EventClosed

		case key.Matches(msg, SearchBoxKeys.Enter):
			if len(o.results) > 0 {
				return o, nil, EventSelected
			}
			return o, nil, EventNone

		case key.Matches(msg, SearchBoxKeys.Down):
			if o.cursor < min(len(o.results), o.maxResults)-1 {
				o.cursor++
			}
			return o, nil, EventNone

		case key.Matches(msg, SearchBoxKeys.Up):
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil, EventNone
		}
	}

	o.input, cmd = o.input.Update(msg)
	if o.queryChanged() {
		return o, cmd, EventQueryChanged
	}
	return o, cmd, EventNone
}

// View renders the component
func (o SearchBox) View() string {
	modalWidth := o.width * 2 / 3
	modalWidth = max(modalWidth, 40)
	modalWidth = min(modalWidth, 90)

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	switch {
	case o.err != nil:
		b.WriteString(styles.ErrorStyle.Render("Search failed: " + o.err.Error()))
	case o.loading && len(o.results) == 0:
		b.WriteString(styles.SpinnerStyle.Render("Searching..."))
	default:
		o.renderResults(&b, modalWidth)
	}

	b.WriteString("\n\n")
	b.WriteString(renderHelp())

	content := lipgloss.NewStyle().
		Width(modalWidth - 4).
		Render(b.String())

	modal := styles.ModalStyle.
		Width(modalWidth).
		Render(content)

	if o.width == 0 || o.height == 0 {
		return modal
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, modal)
}

func (o SearchBox) renderResults(b *strings.Builder, modalWidth int) {
	if len(o.results) == 0 && o.input.Value() != "" && !o.loading {
		b.WriteString(styles.DimStyle.Render("No matches found"))
		return
	}

	displayCount := min(len(o.results), o.maxResults)
	for i := 0; i < displayCount; i++ {
		match := o.results[i]
		selected := i == o.cursor

		b.WriteString(styles.DimBadgeStyle.Render(kindBadge(match.Kind)))
		b.WriteString(" ")

		title := styles.Truncate(match.DisplayTitle(), modalWidth-20)
		b.WriteString(highlightMatches(title, match.MatchedIndexes, selected))

		if desc := match.Description(); desc != "" {
			b.WriteString(" ")
			b.WriteString(styles.DimStyle.Render(styles.Truncate(desc, 30)))
		}
		b.WriteString("\n")
	}

	if len(o.results) > o.maxResults {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... and %d more", len(o.results)-o.maxResults)))
	}
}

// kindBadge returns a short label for a result kind
func kindBadge(kind domain.ResultKind) string {
	switch kind {
	case domain.ResultKindSong:
		return "SONG"
	case domain.ResultKindAlbum:
		return "ALBUM"
	case domain.ResultKindVideo:
		return "VIDEO"
	case domain.ResultKindPodcast:
		return "POD"
	case domain.ResultKindMovie:
		return "MOVIE"
	case domain.ResultKindSoftware:
		return "APP"
	case domain.ResultKindCatalog:
		return "LOCAL"
	default:
		return "ITEM"
	}
}

// highlightMatches renders text with matched rune positions emphasised,
// batching consecutive runes with the same style
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	normal, match := styles.NormalItemStyle, styles.MatchHighlightStyle
	if selected {
		normal, match = styles.SelectedItemStyle, styles.MatchHighlightSelectedStyle
	}

	if len(matchedIndexes) == 0 {
		return normal.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	var result strings.Builder
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		isMatch := matchSet[i]
		start := i
		for i < len(runes) && matchSet[i] == isMatch {
			i++
		}

		if isMatch {
			result.WriteString(match.Render(string(runes[start:i])))
		} else {
			result.WriteString(normal.Render(string(runes[start:i])))
		}
	}

	return result.String()
}

func renderHelp() string {
	bindings := []key.Binding{SearchBoxKeys.Up, SearchBoxKeys.Down, SearchBoxKeys.Enter, SearchBoxKeys.Escape}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
