package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"coffeechat.app/api/core/db"
	"coffeechat.app/api/internal/model"
)

type authSessionStore struct {
	db *db.DB
}

func NewAuthSessionStore(database *db.DB) AuthSessionStore {
	return &authSessionStore{db: database}
}

func (s *authSessionStore) Create(ctx context.Context, session *model.AuthSession) error {
	err := s.db.Pool().QueryRow(ctx, `
		INSERT INTO auth_sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		session.ID, session.UserID, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating auth session: %w", err)
	}
	return nil
}

func (s *authSessionStore) GetValid(ctx context.Context, id int64) (*model.AuthSession, error) {
	var session model.AuthSession
	err := s.db.Pool().QueryRow(ctx, `
		SELECT id, user_id, expires_at, created_at
		FROM auth_sessions
		WHERE id = $1 AND expires_at > now()`, id,
	).Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting auth session: %w", err)
	}
	return &session, nil
}

func (s *authSessionStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.Pool().Exec(ctx, `DELETE FROM auth_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting auth session: %w", err)
	}
	return nil
}
