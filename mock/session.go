package mock

import (
	"context"

	"github.com/redsepro/knacks"
)

var _ knacks.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of knacks.SessionService.
type SessionService struct {
	LastKnackFn      func(ctx context.Context) (*knacks.Session, error)
	SaveLastKnackFn  func(ctx context.Context, s *knacks.Session) error
	ClearLastKnackFn func(ctx context.Context) error
}

func (s *SessionService) LastKnack(ctx context.Context) (*knacks.Session, error) {
	return s.LastKnackFn(ctx)
}

func (s *SessionService) SaveLastKnack(ctx context.Context, sess *knacks.Session) error {
	return s.SaveLastKnackFn(ctx, sess)
}

func (s *SessionService) ClearLastKnack(ctx context.Context) error {
	return s.ClearLastKnackFn(ctx)
}
