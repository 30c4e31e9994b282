package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/dto"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
)

type ColdEmailHandler struct {
	coldEmailService service.ColdEmailService
}

func NewColdEmailHandler(coldEmailService service.ColdEmailService) *ColdEmailHandler {
	return &ColdEmailHandler{coldEmailService: coldEmailService}
}

func (h *ColdEmailHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ColdEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	draft, analysis, err := h.coldEmailService.Analyze(ctx, user.ID, req.DraftText)
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please slow down"})
			return
		}
		slog.ErrorContext(ctx, "failed to analyze cold email", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze email"})
		return
	}

	c.JSON(http.StatusOK, dto.ToColdEmailResponse(draft.ID, analysis))
}
