package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/redsepro/knacks"
)

// Ensure LoggingSessionService implements knacks.SessionService.
var _ knacks.SessionService = (*LoggingSessionService)(nil)

// LoggingSessionService logs session reads and writes at debug level.
type LoggingSessionService struct {
	next   knacks.SessionService
	logger *slog.Logger
}

// NewLoggingSessionService creates a new LoggingSessionService.
func NewLoggingSessionService(next knacks.SessionService, logger *slog.Logger) *LoggingSessionService {
	return &LoggingSessionService{next: next, logger: logger}
}

func (s *LoggingSessionService) LastKnack(ctx context.Context) (sess *knacks.Session, err error) {
	defer func(begin time.Time) {
		file := ""
		if sess != nil {
			file = sess.File
		}
		s.logger.Debug("last knack",
			"file", file,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LastKnack(ctx)
}

func (s *LoggingSessionService) SaveLastKnack(ctx context.Context, sess *knacks.Session) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save last knack",
			"file", sess.File,
			"title", sess.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveLastKnack(ctx, sess)
}

func (s *LoggingSessionService) ClearLastKnack(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("clear last knack",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearLastKnack(ctx)
}
