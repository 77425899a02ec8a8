package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/redsepro/knacks"
)

// Compile-time interface verification.
var _ knacks.SessionService = (*SessionService)(nil)

// SessionService implements knacks.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// LastKnack returns the last opened knack.
func (s *SessionService) LastKnack(ctx context.Context) (*knacks.Session, error) {
	var sess knacks.Session
	var openedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT file, title, opened_at
		FROM sessions
		WHERE id = 1
	`).Scan(&sess.File, &sess.Title, &openedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, knacks.Errorf(knacks.ENOTFOUND, "no last knack")
	}
	if err != nil {
		return nil, err
	}

	sess.OpenedAt, err = parseRFC3339(openedAt, "opened_at")
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

// SaveLastKnack records sess as the last opened knack, replacing any
// previous one. A zero OpenedAt is set to the current time.
func (s *SessionService) SaveLastKnack(ctx context.Context, sess *knacks.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if sess.OpenedAt.IsZero() {
		sess.OpenedAt = time.Now()
	}
	sess.OpenedAt = sess.OpenedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, file, title, opened_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			file = excluded.file,
			title = excluded.title,
			opened_at = excluded.opened_at
	`, sess.File, sess.Title, sess.OpenedAt.Format(time.RFC3339))

	return err
}

// ClearLastKnack forgets the last opened knack. Clearing an empty store is
// not an error.
func (s *SessionService) ClearLastKnack(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`)
	return err
}
