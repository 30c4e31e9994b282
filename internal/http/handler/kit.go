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

type KitHandler struct {
	kitService service.KitService
}

func NewKitHandler(kitService service.KitService) *KitHandler {
	return &KitHandler{kitService: kitService}
}

func (h *KitHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userInfo, targetInfo, err := req.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	kit, err := h.kitService.Generate(ctx, user.ID, userInfo, targetInfo)
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, please slow down"})
			return
		}
		slog.ErrorContext(ctx, "failed to generate kit", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate kit"})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateKitResponse{ID: kit.ID, Kit: kit.Content})
}
