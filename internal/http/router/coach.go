package router

import (
	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/handler"
)

func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler) {
	rg.POST("/chat", h.Stream)
}

func FeedbackRouter(rg *gin.RouterGroup, h *handler.FeedbackHandler) {
	rg.POST("/feedback", h.Generate)
}

func ColdEmailRouter(rg *gin.RouterGroup, h *handler.ColdEmailHandler) {
	rg.POST("/cold-email", h.Analyze)
}

func KitRouter(rg *gin.RouterGroup, h *handler.KitHandler) {
	rg.POST("/kits", h.Generate)
}

func HistoryRouter(rg *gin.RouterGroup, h *handler.HistoryHandler) {
	rg.GET("/history", h.List)
}

func ScenarioRouter(rg *gin.RouterGroup, h *handler.ScenarioHandler) {
	rg.GET("", h.List)
}
