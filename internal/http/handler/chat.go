package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/common/logger"
	"coffeechat.app/api/internal/http/dto"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Stream relays one persona reply as plain text chunks, flushed as they
// arrive. Once the first chunk is on the wire the status line is gone, so a
// mid-stream failure can only truncate the body; it is logged but the
// connection is simply closed.
func (h *ChatHandler) Stream(c *gin.Context) {
	var req dto.ChatRequest
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
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
		UserID:    logger.Ptr(user.ID),
		Scenario:  logger.Ptr(sc.String()),
		Component: "coach.chat",
	})

	chunks, errs := h.chatService.StreamReply(ctx, sc, transcript)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	wrote := false
	for chunk := range chunks {
		if _, err := c.Writer.WriteString(chunk); err != nil {
			// Client went away mid-stream. Drain so the producer can exit.
			slog.DebugContext(ctx, "client disconnected during stream", "error", err)
			for range chunks {
			}
			<-errs
			return
		}
		c.Writer.Flush()
		wrote = true
	}

	if err := <-errs; err != nil {
		if errors.Is(err, context.Canceled) {
			slog.DebugContext(ctx, "chat stream canceled by client")
			return
		}
		slog.ErrorContext(ctx, "chat stream failed", "error", err, "wrote", wrote)
		if !wrote {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
		}
		return
	}

	if !wrote {
		slog.WarnContext(ctx, "chat stream produced no content")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
	}
}
