package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/dto"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
	"coffeechat.app/api/internal/store"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.FeedbackRequest
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

	feedback, err := h.feedbackService.Generate(ctx, user.ID, req.SessionID, sc, transcript)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found or access denied"})
			return
		}
		slog.ErrorContext(ctx, "failed to generate feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
