package store

import (
	"context"
	"errors"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

// ErrNotFound is returned when a requested row does not exist or is owned by
// a different user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// AuthSessionStore defines the contract for login-session data access
type AuthSessionStore interface {
	Create(ctx context.Context, session *model.AuthSession) error
	GetValid(ctx context.Context, id int64) (*model.AuthSession, error) // checks expiry
	Delete(ctx context.Context, id int64) error
}

// ChatSessionUpdate carries the fields a session update may change.
// Nil fields are left untouched.
type ChatSessionUpdate struct {
	Transcript model.Transcript
	Feedback   *model.Feedback
	Scenario   *scenario.Scenario
}

// ChatSessionStore defines the contract for practice-session data access.
// Every read and write is scoped to the owning user.
type ChatSessionStore interface {
	Create(ctx context.Context, session *model.ChatSession) error
	Update(ctx context.Context, id, ownerUserID int64, upd ChatSessionUpdate) (*model.ChatSession, error)
	GetByID(ctx context.Context, id, ownerUserID int64) (*model.ChatSession, error)
	ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.ChatSession, error)
}

// KitStore defines the contract for kit + contact data access
type KitStore interface {
	CreateWithContact(ctx context.Context, contact *model.Contact, kit *model.Kit) error
	ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.KitListItem, error)
}

// EmailDraftStore defines the contract for cold-email draft data access
type EmailDraftStore interface {
	Create(ctx context.Context, draft *model.EmailDraft) error
	ListRecent(ctx context.Context, ownerUserID int64, limit int32) ([]model.EmailDraft, error)
}
