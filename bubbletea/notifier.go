package bubbletea

import (
	"sync"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/browse"
	"github.com/redsepro/knacks/search"
)

var _ search.ResultsView = (*Notifier)(nil)

// Notifier forwards results and content events produced off the update
// loop to the program as messages. Messages sent before Attach are dropped.
type Notifier struct {
	mu     sync.Mutex
	sender Sender
}

// Attach sets the program messages are sent to.
func (n *Notifier) Attach(s Sender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = s
}

func (n *Notifier) ShowResults(query string, results []knacks.MatchResult) {
	n.send(ResultsMsg{Query: query, Results: results})
}

func (n *Notifier) ShowNoResults(query string) {
	n.send(NoResultsMsg{Query: query})
}

func (n *Notifier) ClearResults() {
	n.send(ClearResultsMsg{})
}

// BrowserEvent is a browse.EventFunc.
func (n *Notifier) BrowserEvent(e browse.Event) {
	n.send(ContentMsg{Event: e})
}

func (n *Notifier) send(msg any) {
	n.mu.Lock()
	s := n.sender
	n.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
}
