package service

import (
	"context"

	"coffeechat.app/api/core/config"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/ratelimit"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/store"
)

// CoachClient is the slice of the coach the services need. Declared here so
// tests can substitute a mock.
type CoachClient interface {
	StreamChat(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error)
	GenerateFeedback(ctx context.Context, transcript model.Transcript) (model.Feedback, error)
	AnalyzeColdEmail(ctx context.Context, draftText string) (model.EmailAnalysis, error)
	GenerateKit(ctx context.Context, user model.KitUserInfo, target model.KitTargetInfo) (model.KitContent, error)
	Model() string
}

// Services provides access to all service implementations.
type Services struct {
	auth      AuthService
	chat      ChatService
	feedback  FeedbackService
	sessions  SessionService
	coldEmail ColdEmailService
	kits      KitService
	history   HistoryService
}

type ServicesConfig struct {
	Stores       *store.Stores
	Coach        CoachClient
	Limiter      ratelimit.Limiter
	WorkOS       config.WorkOSConfig
	DashboardURL string
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		auth:      NewAuthService(cfg.Stores.Users, cfg.Stores.AuthSessions, cfg.WorkOS),
		chat:      NewChatService(cfg.Coach),
		feedback:  NewFeedbackService(cfg.Coach, cfg.Stores.ChatSessions),
		sessions:  NewSessionService(cfg.Stores.ChatSessions),
		coldEmail: NewColdEmailService(cfg.Coach, cfg.Stores.EmailDrafts, cfg.Limiter),
		kits:      NewKitService(cfg.Coach, cfg.Stores.Kits, cfg.Limiter),
		history:   NewHistoryService(cfg.Stores.ChatSessions, cfg.Stores.Kits, cfg.Stores.EmailDrafts),
	}
}

func (s *Services) Auth() AuthService           { return s.auth }
func (s *Services) Chat() ChatService           { return s.chat }
func (s *Services) Feedback() FeedbackService   { return s.feedback }
func (s *Services) Sessions() SessionService    { return s.sessions }
func (s *Services) ColdEmail() ColdEmailService { return s.coldEmail }
func (s *Services) Kits() KitService            { return s.kits }
func (s *Services) History() HistoryService     { return s.history }
