package service

import (
	"context"
	"fmt"
	"log/slog"

	"coffeechat.app/api/common/id"
	"coffeechat.app/api/common/logger"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/ratelimit"
	"coffeechat.app/api/internal/store"
)

// KitService generates a coffeechat kit for a networking target and records
// both the target contact and the kit.
type KitService interface {
	Generate(ctx context.Context, ownerUserID int64, user model.KitUserInfo, target model.KitTargetInfo) (*model.Kit, error)
}

type kitService struct {
	coach   CoachClient
	kits    store.KitStore
	limiter ratelimit.Limiter
}

func NewKitService(coach CoachClient, kits store.KitStore, limiter ratelimit.Limiter) KitService {
	return &kitService{coach: coach, kits: kits, limiter: limiter}
}

func (s *kitService) Generate(ctx context.Context, ownerUserID int64, user model.KitUserInfo, target model.KitTargetInfo) (*model.Kit, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(ownerUserID),
		Component: "coach.kit",
	})

	if err := checkLimit(ctx, s.limiter, ownerUserID); err != nil {
		return nil, err
	}

	content, err := s.coach.GenerateKit(ctx, user, target)
	if err != nil {
		return nil, err
	}

	var profileURL *string
	if target.ProfileURL != "" {
		profileURL = &target.ProfileURL
	}

	contact := &model.Contact{
		ID:             id.New(),
		OwnerUserID:    ownerUserID,
		ProfileURL:     profileURL,
		RawProfileText: target.ProfileText,
	}
	kit := &model.Kit{
		ID:           id.New(),
		OwnerUserID:  ownerUserID,
		Content:      content,
		ModelVersion: s.coach.Model(),
	}
	if err := s.kits.CreateWithContact(ctx, contact, kit); err != nil {
		return nil, fmt.Errorf("saving kit: %w", err)
	}

	slog.InfoContext(ctx, "kit generated", "kit_id", kit.ID, "contact_id", contact.ID)

	return kit, nil
}
