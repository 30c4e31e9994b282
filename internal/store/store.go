// Package store implements the persistence gateway on postgres via pgx.
// Every operation on user-owned artifacts takes the owner id and folds it
// into the WHERE clause, so a row owned by someone else behaves exactly like
// a row that does not exist.
package store

import (
	"coffeechat.app/api/core/db"
)

// Stores bundles all store implementations over one database handle.
type Stores struct {
	Users        UserStore
	AuthSessions AuthSessionStore
	ChatSessions ChatSessionStore
	Kits         KitStore
	EmailDrafts  EmailDraftStore
}

func NewStores(database *db.DB) *Stores {
	return &Stores{
		Users:        NewUserStore(database),
		AuthSessions: NewAuthSessionStore(database),
		ChatSessions: NewChatSessionStore(database),
		Kits:         NewKitStore(database),
		EmailDrafts:  NewEmailDraftStore(database),
	}
}
