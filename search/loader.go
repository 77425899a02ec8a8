// Package search implements the search subsystem around the pure matcher:
// the process-wide index cache, the keystroke debouncer, and the controller
// that turns input into rendered results and result selection into
// navigation.
package search

import (
	"context"
	"log/slog"
	"sync"

	"github.com/redsepro/knacks"
	"golang.org/x/sync/singleflight"
)

// Ensure IndexLoader implements knacks.IndexLoader at compile time.
var _ knacks.IndexLoader = (*IndexLoader)(nil)

// IndexLoader fetches the search index at most once per process and serves
// the cached entries afterwards. Failures are cached as an empty index.
type IndexLoader struct {
	fetcher knacks.Fetcher
	url     string
	logger  *slog.Logger

	group singleflight.Group

	mu      sync.RWMutex
	loaded  bool
	entries []*knacks.IndexEntry
}

// NewIndexLoader creates a loader for the index at url.
func NewIndexLoader(fetcher knacks.Fetcher, url string, logger *slog.Logger) *IndexLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &IndexLoader{fetcher: fetcher, url: url, logger: logger}
}

// Load returns the index. Concurrent first callers share one fetch. The
// fetch is detached from ctx: a caller giving up does not cancel it for the
// others.
func (l *IndexLoader) Load(ctx context.Context) []*knacks.IndexEntry {
	if entries, ok := l.cached(); ok {
		return entries
	}

	v, _, _ := l.group.Do("index", func() (any, error) {
		if entries, ok := l.cached(); ok {
			return entries, nil
		}
		entries := l.fetch(context.WithoutCancel(ctx))

		l.mu.Lock()
		l.entries = entries
		l.loaded = true
		l.mu.Unlock()

		return entries, nil
	})
	return v.([]*knacks.IndexEntry)
}

// Loaded reports whether the index has been resolved.
func (l *IndexLoader) Loaded() bool {
	_, ok := l.cached()
	return ok
}

func (l *IndexLoader) cached() ([]*knacks.IndexEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries, l.loaded
}

func (l *IndexLoader) fetch(ctx context.Context) []*knacks.IndexEntry {
	body, err := l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		l.logger.Error("search index unavailable", "url", l.url, "err", err)
		return []*knacks.IndexEntry{}
	}

	entries, err := knacks.ParseIndex([]byte(body))
	if err != nil {
		l.logger.Error("search index unavailable", "url", l.url, "err", err)
		return []*knacks.IndexEntry{}
	}
	if entries == nil {
		entries = []*knacks.IndexEntry{}
	}

	l.logger.Debug("search index loaded", "url", l.url, "entries", len(entries))
	return entries
}
