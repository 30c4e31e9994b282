package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"coffeechat.app/api/core/db"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

type chatSessionStore struct {
	db *db.DB
}

func NewChatSessionStore(database *db.DB) ChatSessionStore {
	return &chatSessionStore{db: database}
}

func (s *chatSessionStore) Create(ctx context.Context, session *model.ChatSession) error {
	transcript, err := json.Marshal(session.Transcript)
	if err != nil {
		return fmt.Errorf("encoding transcript: %w", err)
	}

	var feedback []byte
	if session.Feedback != nil {
		if feedback, err = json.Marshal(session.Feedback); err != nil {
			return fmt.Errorf("encoding feedback: %w", err)
		}
	}

	err = s.db.Pool().QueryRow(ctx, `
		INSERT INTO chat_sessions (id, owner_user_id, scenario, transcript, feedback)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		session.ID, session.OwnerUserID, session.Scenario.String(), transcript, feedback,
	).Scan(&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating chat session: %w", err)
	}
	return nil
}

// Update mutates only the fields set in upd, always re-checking ownership.
// A session owned by another user comes back as ErrNotFound with the row
// untouched.
func (s *chatSessionStore) Update(ctx context.Context, id, ownerUserID int64, upd ChatSessionUpdate) (*model.ChatSession, error) {
	var (
		transcript []byte
		feedback   []byte
		scen       *string
		err        error
	)
	if upd.Transcript != nil {
		if transcript, err = json.Marshal(upd.Transcript); err != nil {
			return nil, fmt.Errorf("encoding transcript: %w", err)
		}
	}
	if upd.Feedback != nil {
		if feedback, err = json.Marshal(upd.Feedback); err != nil {
			return nil, fmt.Errorf("encoding feedback: %w", err)
		}
	}
	if upd.Scenario != nil {
		v := upd.Scenario.String()
		scen = &v
	}

	row := s.db.Pool().QueryRow(ctx, `
		UPDATE chat_sessions
		SET transcript = COALESCE($3, transcript),
		    feedback   = COALESCE($4, feedback),
		    scenario   = COALESCE($5, scenario),
		    updated_at = now()
		WHERE id = $1 AND owner_user_id = $2
		RETURNING id, owner_user_id, scenario, transcript, feedback, created_at, updated_at`,
		id, ownerUserID, transcript, feedback, scen)

	session, err := scanChatSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating chat session: %w", err)
	}
	return session, nil
}

func (s *chatSessionStore) GetByID(ctx context.Context, id, ownerUserID int64) (*model.ChatSession, error) {
	row := s.db.Pool().QueryRow(ctx, `
		SELECT id, owner_user_id, scenario, transcript, feedback, created_at, updated_at
		FROM chat_sessions
		WHERE id = $1 AND owner_user_id = $2`, id, ownerUserID)

	session, err := scanChatSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting chat session: %w", err)
	}
	return session, nil
}

func (s *chatSessionStore) ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.ChatSession, error) {
	rows, err := s.db.Pool().Query(ctx, `
		SELECT id, owner_user_id, scenario, transcript, feedback, created_at, updated_at
		FROM chat_sessions
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, ownerUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []model.ChatSession
	for rows.Next() {
		session, err := scanChatSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning chat session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

func scanChatSession(row pgx.Row) (*model.ChatSession, error) {
	var (
		session    model.ChatSession
		scen       string
		transcript []byte
		feedback   []byte
	)
	if err := row.Scan(&session.ID, &session.OwnerUserID, &scen, &transcript, &feedback,
		&session.CreatedAt, &session.UpdatedAt); err != nil {
		return nil, err
	}

	session.Scenario = scenario.Scenario(scen)
	if err := json.Unmarshal(transcript, &session.Transcript); err != nil {
		return nil, fmt.Errorf("decoding transcript: %w", err)
	}
	if len(feedback) > 0 {
		session.Feedback = &model.Feedback{}
		if err := json.Unmarshal(feedback, session.Feedback); err != nil {
			return nil, fmt.Errorf("decoding feedback: %w", err)
		}
	}
	return &session, nil
}
