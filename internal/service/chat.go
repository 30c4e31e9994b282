package service

import (
	"context"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

// ChatService opens streamed persona conversation turns. Nothing is persisted
// on this path: the client saves the session explicitly once the stream has
// completed, so an abandoned stream leaves no partial transcript behind.
type ChatService interface {
	StreamReply(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error)
}

type chatService struct {
	coach CoachClient
}

func NewChatService(coach CoachClient) ChatService {
	return &chatService{coach: coach}
}

func (s *chatService) StreamReply(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error) {
	return s.coach.StreamChat(ctx, sc, history)
}
