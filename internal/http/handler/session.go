package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/dto"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
	"coffeechat.app/api/internal/store"
)

type SessionHandler struct {
	sessionService service.SessionService
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) Save(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sc, transcript, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	session, err := h.sessionService.Save(ctx, user.ID, req.SessionID, sc, transcript)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or access denied"})
			return
		}
		slog.ErrorContext(ctx, "failed to save session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, dto.SaveSessionResponse{SessionID: session.ID, Success: true})
}

func (h *SessionHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID, err := strconv.ParseInt(c.Query("sessionId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sessionId is required"})
		return
	}

	user := middleware.CurrentUser(c)

	session, err := h.sessionService.Load(ctx, user.ID, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or access denied"})
			return
		}
		slog.ErrorContext(ctx, "failed to load session", "error", err, "session_id", sessionID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}
