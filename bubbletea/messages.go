package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/browse"
)

// ResultsMsg carries a rendered search.
type ResultsMsg struct {
	Query   string
	Results []knacks.MatchResult
}

// NoResultsMsg reports a search without matches.
type NoResultsMsg struct {
	Query string
}

// ClearResultsMsg empties the results pane.
type ClearResultsMsg struct{}

// ContentMsg carries a change of the content pane.
type ContentMsg struct {
	Event browse.Event
}

// catalogMsg carries the knack list once the browser has started.
type catalogMsg struct {
	list []knacks.Knack
	err  error
}

// statusMsg replaces the status line.
type statusMsg string

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}
