package service

import (
	"context"
	"fmt"

	"tempo/internal/modules/session/domain"
	sessionout "tempo/internal/modules/session/port/out"
)

// SessionService owns all reads and writes of the persisted collection.
type SessionService struct {
	store sessionout.Store
}

func NewSessionService(store sessionout.Store) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.store.LoadAll(ctx)
}

func (s *SessionService) Add(ctx context.Context, session domain.Session) (domain.Session, error) {
	if session.Timestamp.IsZero() {
		return domain.Session{}, fmt.Errorf("session timestamp is required")
	}
	session = session.Normalized()
	id, err := s.store.Append(ctx, session)
	if err != nil {
		return domain.Session{}, err
	}
	session.ID = id
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, session domain.Session) (domain.Session, error) {
	if session.ID == 0 {
		return domain.Session{}, fmt.Errorf("session id is required")
	}
	session = session.Normalized()
	if err := s.store.Update(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	return s.store.Remove(ctx, id)
}

func (s *SessionService) Clear(ctx context.Context) error {
	return s.store.ReplaceAll(ctx, nil)
}

// Replace installs a freshly decoded collection wholesale. Used by
// import and by backup restore; never a merge.
func (s *SessionService) Replace(ctx context.Context, sessions []domain.Session) error {
	return s.store.ReplaceAll(ctx, sessions)
}
