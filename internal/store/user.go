package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"coffeechat.app/api/core/db"
	"coffeechat.app/api/internal/model"
)

type userStore struct {
	db *db.DB
}

func NewUserStore(database *db.DB) UserStore {
	return &userStore{db: database}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.Pool().QueryRow(ctx, `
		SELECT id, workos_id, name, email, avatar_url, created_at, updated_at
		FROM users
		WHERE id = $1`, id,
	).Scan(&user.ID, &user.WorkOSID, &user.Name, &user.Email, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// UpsertByWorkOSID creates the user on first login and refreshes profile
// fields on subsequent logins. The caller pre-generates the id; an existing
// row keeps its original id, which is written back to user.
func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	err := s.db.Pool().QueryRow(ctx, `
		INSERT INTO users (id, workos_id, name, email, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (workos_id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    avatar_url = EXCLUDED.avatar_url,
		    updated_at = now()
		RETURNING id, created_at, updated_at`,
		user.ID, user.WorkOSID, user.Name, user.Email, user.AvatarURL,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}
