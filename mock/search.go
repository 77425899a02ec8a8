package mock

import (
	"context"

	"github.com/redsepro/knacks"
	"github.com/redsepro/knacks/search"
)

var (
	_ knacks.IndexLoader    = (*IndexLoader)(nil)
	_ knacks.DocumentLoader = (*DocumentLoader)(nil)
	_ search.ResultsView    = (*ResultsView)(nil)
	_ search.ContentView    = (*ContentView)(nil)
)

// IndexLoader is a mock implementation of knacks.IndexLoader.
type IndexLoader struct {
	LoadFn func(ctx context.Context) []*knacks.IndexEntry
}

func (l *IndexLoader) Load(ctx context.Context) []*knacks.IndexEntry {
	return l.LoadFn(ctx)
}

// DocumentLoader is a mock implementation of knacks.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, id, title string) error
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, id, title string) error {
	return l.LoadDocumentFn(ctx, id, title)
}

// ResultsView is a mock implementation of search.ResultsView.
type ResultsView struct {
	ShowResultsFn   func(query string, results []knacks.MatchResult)
	ShowNoResultsFn func(query string)
	ClearResultsFn  func()
}

func (v *ResultsView) ShowResults(query string, results []knacks.MatchResult) {
	v.ShowResultsFn(query, results)
}

func (v *ResultsView) ShowNoResults(query string) {
	v.ShowNoResultsFn(query)
}

func (v *ResultsView) ClearResults() {
	v.ClearResultsFn()
}

// ContentView is a mock implementation of search.ContentView.
type ContentView struct {
	ScrollToTextFn func(normalizedQuery string) bool
}

func (v *ContentView) ScrollToText(normalizedQuery string) bool {
	return v.ScrollToTextFn(normalizedQuery)
}
