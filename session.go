package knacks

import (
	"context"
	"time"
)

// Session records the last knack the user opened.
type Session struct {
	File     string    `json:"file"`
	Title    string    `json:"title"`
	OpenedAt time.Time `json:"openedAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.File == "" {
		return Errorf(EINVALID, "session knack file required")
	}
	return nil
}

// SessionService persists the last opened knack between runs.
type SessionService interface {
	// LastKnack returns the last opened knack.
	// Returns ENOTFOUND if none has been recorded.
	LastKnack(ctx context.Context) (*Session, error)

	// SaveLastKnack records s as the last opened knack.
	SaveLastKnack(ctx context.Context, s *Session) error

	// ClearLastKnack forgets the last opened knack.
	ClearLastKnack(ctx context.Context) error
}
