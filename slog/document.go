package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/redsepro/knacks"
)

// Ensure LoggingDocumentLoader implements knacks.DocumentLoader.
var _ knacks.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader logs every document load.
type LoggingDocumentLoader struct {
	next   knacks.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next knacks.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

func (l *LoggingDocumentLoader) LoadDocument(ctx context.Context, id, title string) (err error) {
	defer func(begin time.Time) {
		l.logger.Info("load document",
			"id", id,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDocument(ctx, id, title)
}
