package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/common/logger"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
)

const (
	// SessionCookieName carries the login session id between requests.
	SessionCookieName = "coffeechat_session"

	sessionIDHeader = "X-Session-ID"
	userContextKey  = "auth_user"
)

// RequireAuth rejects requests without a valid login session and attaches the
// resolved user to the gin context and the user id to the request context's
// log fields.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionIDFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := c.Request.Context()
		user, _, err := auth.ValidateSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			slog.ErrorContext(ctx, "failed to validate session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to validate session"})
			return
		}

		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(user.ID)})
		c.Request = c.Request.WithContext(ctx)
		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth.
// Only valid on routes behind that middleware.
func CurrentUser(c *gin.Context) *model.User {
	if user, ok := c.Get(userContextKey); ok {
		return user.(*model.User)
	}
	return nil
}

// SetCurrentUser injects a user directly, for handler tests that bypass the
// auth middleware.
func SetCurrentUser(c *gin.Context, user *model.User) {
	c.Set(userContextKey, user)
}

func sessionIDFrom(c *gin.Context) (int64, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		raw = c.GetHeader(sessionIDHeader)
	}
	if raw == "" {
		return 0, false
	}

	sessionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return sessionID, true
}
