package router

import (
	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/handler"
	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(services.Auth()))
	{
		chatHandler := handler.NewChatHandler(services.Chat())
		ChatRouter(v1, chatHandler)

		feedbackHandler := handler.NewFeedbackHandler(services.Feedback())
		FeedbackRouter(v1, feedbackHandler)

		sessionHandler := handler.NewSessionHandler(services.Sessions())
		SessionRouter(v1.Group("/chat-sessions"), sessionHandler)

		coldEmailHandler := handler.NewColdEmailHandler(services.ColdEmail())
		ColdEmailRouter(v1, coldEmailHandler)

		kitHandler := handler.NewKitHandler(services.Kits())
		KitRouter(v1, kitHandler)

		historyHandler := handler.NewHistoryHandler(services.History())
		HistoryRouter(v1, historyHandler)

		scenarioHandler := handler.NewScenarioHandler()
		ScenarioRouter(v1.Group("/scenarios"), scenarioHandler)
	}
}
