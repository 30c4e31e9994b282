package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/http/middleware"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/service"
)

// withUser stands in for the auth middleware on test routers.
func withUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

type mockAuthService struct {
	getAuthorizationURLFn func(state string) (string, error)
	handleCallbackFn      func(ctx context.Context, code string) (*model.User, *model.AuthSession, error)
	validateSessionFn     func(ctx context.Context, sessionID int64) (*model.User, *model.AuthSession, error)
	logoutFn              func(ctx context.Context, sessionID int64) error
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	if m.getAuthorizationURLFn != nil {
		return m.getAuthorizationURLFn(state)
	}
	return "https://auth.example.com/authorize", nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.AuthSession, error) {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code)
	}
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, *model.AuthSession, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, nil, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

type mockChatService struct {
	streamReplyFn func(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error)
}

func (m *mockChatService) StreamReply(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error) {
	if m.streamReplyFn != nil {
		return m.streamReplyFn(ctx, sc, history)
	}
	chunks := make(chan string)
	errs := make(chan error, 1)
	close(chunks)
	close(errs)
	return chunks, errs
}

type mockFeedbackService struct {
	generateFn func(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (model.Feedback, error)
}

func (m *mockFeedbackService) Generate(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (model.Feedback, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, ownerUserID, sessionID, sc, transcript)
	}
	return model.Feedback{}, nil
}

type mockSessionService struct {
	saveFn func(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (*model.ChatSession, error)
	loadFn func(ctx context.Context, ownerUserID, sessionID int64) (*model.ChatSession, error)
}

func (m *mockSessionService) Save(ctx context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (*model.ChatSession, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, ownerUserID, sessionID, sc, transcript)
	}
	return nil, nil
}

func (m *mockSessionService) Load(ctx context.Context, ownerUserID, sessionID int64) (*model.ChatSession, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx, ownerUserID, sessionID)
	}
	return nil, nil
}

type mockColdEmailService struct {
	analyzeFn func(ctx context.Context, ownerUserID int64, draftText string) (*model.EmailDraft, model.EmailAnalysis, error)
}

func (m *mockColdEmailService) Analyze(ctx context.Context, ownerUserID int64, draftText string) (*model.EmailDraft, model.EmailAnalysis, error) {
	if m.analyzeFn != nil {
		return m.analyzeFn(ctx, ownerUserID, draftText)
	}
	return nil, model.EmailAnalysis{}, nil
}

type mockKitService struct {
	generateFn func(ctx context.Context, ownerUserID int64, user model.KitUserInfo, target model.KitTargetInfo) (*model.Kit, error)
}

func (m *mockKitService) Generate(ctx context.Context, ownerUserID int64, user model.KitUserInfo, target model.KitTargetInfo) (*model.Kit, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, ownerUserID, user, target)
	}
	return nil, nil
}

type mockHistoryService struct {
	recentFn func(ctx context.Context, ownerUserID int64) (*service.History, error)
}

func (m *mockHistoryService) Recent(ctx context.Context, ownerUserID int64) (*service.History, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, ownerUserID)
	}
	return &service.History{}, nil
}
