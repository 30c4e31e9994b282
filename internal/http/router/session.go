package router

import (
	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/handler"
)

func SessionRouter(rg *gin.RouterGroup, h *handler.SessionHandler) {
	rg.POST("", h.Save)
	rg.GET("", h.Get)
}
