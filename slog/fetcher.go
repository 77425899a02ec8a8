// Package slog provides logging decorators for knacks services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/redsepro/knacks"
)

// Ensure LoggingFetcher implements knacks.Fetcher.
var _ knacks.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging of every request.
type LoggingFetcher struct {
	next   knacks.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next knacks.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs url, size, and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)
	attrs := []any{
		"url", url,
		"bytes", len(body),
		"duration", time.Since(begin),
	}
	if err != nil {
		f.logger.Warn("fetch", append(attrs, "err", err)...)
		return body, err
	}
	f.logger.Debug("fetch", attrs...)
	return body, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
