package service

import (
	"context"
	"fmt"

	"coffeechat.app/api/common/id"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/store"
)

// SessionService saves and loads practice sessions. Concurrent saves to the
// same session are last-write-wins; there is no version check.
type SessionService interface {
	Save(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (*model.ChatSession, error)
	Load(ctx context.Context, ownerUserID, sessionID int64) (*model.ChatSession, error)
}

type sessionService struct {
	sessions store.ChatSessionStore
}

func NewSessionService(sessions store.ChatSessionStore) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Save(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (*model.ChatSession, error) {
	if sessionID != nil {
		session, err := s.sessions.Update(ctx, *sessionID, ownerUserID, store.ChatSessionUpdate{
			Transcript: transcript,
			Scenario:   &sc,
		})
		if err != nil {
			return nil, fmt.Errorf("updating session: %w", err)
		}
		return session, nil
	}

	session := &model.ChatSession{
		ID:          id.New(),
		OwnerUserID: ownerUserID,
		Scenario:    sc,
		Transcript:  transcript,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}

func (s *sessionService) Load(ctx context.Context, ownerUserID, sessionID int64) (*model.ChatSession, error) {
	return s.sessions.GetByID(ctx, sessionID, ownerUserID)
}
