package service

import (
	"context"
	"fmt"
	"log/slog"

	"coffeechat.app/api/common/id"
	"coffeechat.app/api/common/logger"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/store"
)

// FeedbackService generates coaching feedback for a transcript and attaches
// it to the owning session. Regeneration overwrites the stored feedback
// whole; it is never merged.
type FeedbackService interface {
	Generate(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (model.Feedback, error)
}

type feedbackService struct {
	coach    CoachClient
	sessions store.ChatSessionStore
}

func NewFeedbackService(coach CoachClient, sessions store.ChatSessionStore) FeedbackService {
	return &feedbackService{coach: coach, sessions: sessions}
}

func (s *feedbackService) Generate(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (model.Feedback, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(ownerUserID),
		SessionID: sessionID,
		Scenario:  logger.Ptr(sc.String()),
		Component: "coach.feedback",
	})

	feedback, err := s.coach.GenerateFeedback(ctx, transcript)
	if err != nil {
		return model.Feedback{}, err
	}

	if sessionID != nil {
		// Ownership is re-checked inside the update; a foreign session id
		// fails as not-found without touching the row.
		_, err := s.sessions.Update(ctx, *sessionID, ownerUserID, store.ChatSessionUpdate{
			Transcript: transcript,
			Feedback:   &feedback,
			Scenario:   &sc,
		})
		if err != nil {
			return model.Feedback{}, fmt.Errorf("attaching feedback: %w", err)
		}
	} else {
		session := &model.ChatSession{
			ID:          id.New(),
			OwnerUserID: ownerUserID,
			Scenario:    sc,
			Transcript:  transcript,
			Feedback:    &feedback,
		}
		if err := s.sessions.Create(ctx, session); err != nil {
			return model.Feedback{}, fmt.Errorf("saving feedback session: %w", err)
		}
	}

	slog.InfoContext(ctx, "feedback generated",
		"strengths", len(feedback.Strengths),
		"improvements", len(feedback.Improvements))

	return feedback, nil
}
