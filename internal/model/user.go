package model

import "time"

// User is an authenticated account, provisioned on first WorkOS login.
type User struct {
	ID        int64
	WorkOSID  *string
	Name      string
	Email     string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuthSession is a cookie-backed login session.
type AuthSession struct {
	ID        int64
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *AuthSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
