package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/dto"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
)

type HistoryHandler struct {
	historyService service.HistoryService
}

func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	history, err := h.historyService.Recent(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(history))
}
