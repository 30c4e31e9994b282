package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"coffeechat.app/api/common/id"
	"coffeechat.app/api/common/logger"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/ratelimit"
	"coffeechat.app/api/internal/store"
)

// ErrRateLimited is returned when the rate governor rejects an identifier.
var ErrRateLimited = errors.New("rate limit exceeded")

// ColdEmailService analyzes a cold outreach draft and records the result.
type ColdEmailService interface {
	Analyze(ctx context.Context, ownerUserID int64, draftText string) (*model.EmailDraft, model.EmailAnalysis, error)
}

type coldEmailService struct {
	coach   CoachClient
	drafts  store.EmailDraftStore
	limiter ratelimit.Limiter
}

func NewColdEmailService(coach CoachClient, drafts store.EmailDraftStore, limiter ratelimit.Limiter) ColdEmailService {
	return &coldEmailService{coach: coach, drafts: drafts, limiter: limiter}
}

func (s *coldEmailService) Analyze(ctx context.Context, ownerUserID int64, draftText string) (*model.EmailDraft, model.EmailAnalysis, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(ownerUserID),
		Component: "coach.coldemail",
	})

	if err := checkLimit(ctx, s.limiter, ownerUserID); err != nil {
		return nil, model.EmailAnalysis{}, err
	}

	analysis, err := s.coach.AnalyzeColdEmail(ctx, draftText)
	if err != nil {
		return nil, model.EmailAnalysis{}, err
	}

	draft := &model.EmailDraft{
		ID:                 id.New(),
		OwnerUserID:        ownerUserID,
		DraftText:          draftText,
		Feedback:           analysis.Feedback,
		Rewrite:            analysis.Rewrite,
		SubjectSuggestions: analysis.SubjectSuggestions,
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, model.EmailAnalysis{}, fmt.Errorf("saving email draft: %w", err)
	}

	slog.InfoContext(ctx, "cold email analyzed", "draft_id", draft.ID)

	return draft, analysis, nil
}

// checkLimit consults the rate governor for the given user. Governor errors
// are logged and treated as admission: enforcement never takes the feature
// down with it.
func checkLimit(ctx context.Context, limiter ratelimit.Limiter, ownerUserID int64) error {
	allowed, err := limiter.Allow(ctx, strconv.FormatInt(ownerUserID, 10))
	if err != nil {
		slog.WarnContext(ctx, "rate limiter unavailable, allowing request", "error", err)
		return nil
	}
	if !allowed {
		return ErrRateLimited
	}
	return nil
}
