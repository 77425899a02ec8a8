package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/redsepro/knacks"
)

// ResultsView is the surface search results are rendered into.
type ResultsView interface {
	// ShowResults replaces the visible rows with results.
	ShowResults(query string, results []knacks.MatchResult)

	// ShowNoResults replaces the visible rows with a "no results" message.
	ShowNoResults(query string)

	// ClearResults empties the results without a message.
	ClearResults()
}

// ContentView is the surface documents are displayed in.
type ContentView interface {
	// ScrollToText scrolls the first text of the current document whose
	// normalized form contains normalizedQuery into view. It reports
	// whether such text exists.
	ScrollToText(normalizedQuery string) bool
}

// Controller wires query input to the matcher and result selection to
// document navigation.
type Controller struct {
	Index     knacks.IndexLoader
	Documents knacks.DocumentLoader
	Results   ResultsView
	Content   ContentView
	Debouncer *Debouncer

	seq atomic.Uint64

	renderMu sync.Mutex
	rendered uint64
}

// Input handles a keystroke: the search runs once the debounce delay has
// passed without further input.
func (c *Controller) Input(ctx context.Context, query string) {
	c.Debouncer.Arm(func() {
		c.Execute(ctx, query)
	})
}

// Submit runs the search immediately, dropping any pending debounced one.
func (c *Controller) Submit(ctx context.Context, query string) {
	c.Debouncer.Cancel()
	c.Execute(ctx, query)
}

// Execute searches for query and renders the outcome. A query that normalizes
// to nothing clears the results without touching the index. Outcomes older than one already
// rendered are dropped.
func (c *Controller) Execute(ctx context.Context, query string) []knacks.MatchResult {
	id := c.seq.Add(1)

	if knacks.Normalize(strings.TrimSpace(query)) == "" {
		c.render(id, func() { c.Results.ClearResults() })
		return nil
	}

	results := knacks.Search(query, c.Index.Load(ctx))
	c.render(id, func() {
		if len(results) == 0 {
			c.Results.ShowNoResults(query)
			return
		}
		c.Results.ShowResults(query, results)
	})
	return results
}

func (c *Controller) render(id uint64, f func()) {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if id < c.rendered {
		return
	}
	c.rendered = id
	f()
}

// Select opens the document of result and scrolls to the first text
// matching query. A load error is returned as is; the document loader has
// already shown it, and the results stay in place. A load replaced by a
// later one returns nil without scrolling.
func (c *Controller) Select(ctx context.Context, result knacks.MatchResult, query string) error {
	id := knacks.DocumentID(result.File)
	if err := c.Documents.LoadDocument(ctx, id, result.Title); err != nil {
		if errors.Is(err, knacks.ErrSuperseded) {
			return nil
		}
		return err
	}

	if q := knacks.Normalize(strings.TrimSpace(query)); q != "" {
		c.Content.ScrollToText(q)
	}
	return nil
}
