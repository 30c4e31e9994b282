package store

import (
	"context"
	"encoding/json"
	"fmt"

	"coffeechat.app/api/core/db"
	"coffeechat.app/api/internal/model"
)

type emailDraftStore struct {
	db *db.DB
}

func NewEmailDraftStore(database *db.DB) EmailDraftStore {
	return &emailDraftStore{db: database}
}

func (s *emailDraftStore) Create(ctx context.Context, draft *model.EmailDraft) error {
	feedback, err := json.Marshal(draft.Feedback)
	if err != nil {
		return fmt.Errorf("encoding feedback: %w", err)
	}
	subjects, err := json.Marshal(draft.SubjectSuggestions)
	if err != nil {
		return fmt.Errorf("encoding subject suggestions: %w", err)
	}

	err = s.db.Pool().QueryRow(ctx, `
		INSERT INTO email_drafts (id, owner_user_id, draft_text, feedback, rewrite, subject_suggestions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		draft.ID, draft.OwnerUserID, draft.DraftText, feedback, draft.Rewrite, subjects,
	).Scan(&draft.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating email draft: %w", err)
	}
	return nil
}

func (s *emailDraftStore) ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.EmailDraft, error) {
	rows, err := s.db.Pool().Query(ctx, `
		SELECT id, owner_user_id, draft_text, feedback, rewrite, subject_suggestions, created_at
		FROM email_drafts
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, ownerUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing email drafts: %w", err)
	}
	defer rows.Close()

	var drafts []model.EmailDraft
	for rows.Next() {
		var (
			draft    model.EmailDraft
			feedback []byte
			subjects []byte
		)
		if err := rows.Scan(&draft.ID, &draft.OwnerUserID, &draft.DraftText, &feedback,
			&draft.Rewrite, &subjects, &draft.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning email draft: %w", err)
		}
		if err := json.Unmarshal(feedback, &draft.Feedback); err != nil {
			return nil, fmt.Errorf("decoding feedback: %w", err)
		}
		if err := json.Unmarshal(subjects, &draft.SubjectSuggestions); err != nil {
			return nil, fmt.Errorf("decoding subject suggestions: %w", err)
		}
		drafts = append(drafts, draft)
	}
	return drafts, rows.Err()
}
