package service

import (
	"context"
	"fmt"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/store"
)

// historyLimit bounds each artifact list in a history response.
const historyLimit = 50

// History is a user's recent artifacts across all three features.
type History struct {
	Sessions    []model.ChatSession
	Kits        []model.KitListItem
	EmailDrafts []model.EmailDraft
}

type HistoryService interface {
	Recent(ctx context.Context, ownerUserID int64) (*History, error)
}

type historyService struct {
	sessions store.ChatSessionStore
	kits     store.KitStore
	drafts   store.EmailDraftStore
}

func NewHistoryService(sessions store.ChatSessionStore, kits store.KitStore, drafts store.EmailDraftStore) HistoryService {
	return &historyService{sessions: sessions, kits: kits, drafts: drafts}
}

func (s *historyService) Recent(ctx context.Context, ownerUserID int64) (*History, error) {
	sessions, err := s.sessions.ListRecent(ctx, ownerUserID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	kits, err := s.kits.ListRecent(ctx, ownerUserID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing kits: %w", err)
	}

	drafts, err := s.drafts.ListRecent(ctx, ownerUserID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("listing email drafts: %w", err)
	}

	return &History{
		Sessions:    sessions,
		Kits:        kits,
		EmailDrafts: drafts,
	}, nil
}
