// Package coach holds the AI-facing half of the product: prompt templates for
// each generation task, the typed generators built on the completion relay,
// and the normalizer that repairs near-valid model output.
package coach

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"coffeechat.app/api/common/llm"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

// ErrUpstream is returned when the generation service fails or returns no
// content. The real cause is logged server-side; callers surface a generic
// retry message.
var ErrUpstream = errors.New("generation service failed")

// Temperatures per task: feedback wants consistency, generation tasks want
// variety, conversation wants the most.
const (
	feedbackTemp = 0.3
	generateTemp = 0.7
	chatTemp     = 0.8
)

type Coach struct {
	llm llm.Client
}

func New(client llm.Client) *Coach {
	return &Coach{llm: client}
}

// Model reports the generation model in use, recorded alongside persisted kits.
func (c *Coach) Model() string {
	return c.llm.Model()
}

// StreamChat opens a streamed persona conversation turn. The returned
// channels follow the relay contract in common/llm.
func (c *Coach) StreamChat(ctx context.Context, sc scenario.Scenario, history model.Transcript) (<-chan string, <-chan error) {
	messages := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		messages = append(messages, llm.Message{Role: string(msg.Role), Content: msg.Content})
	}

	return c.llm.Stream(ctx, llm.Request{
		SystemPrompt: scenario.PromptFor(ctx, sc),
		Messages:     messages,
		Temperature:  llm.Temp(chatTemp),
	})
}

// GenerateFeedback analyzes the user's side of a transcript.
func (c *Coach) GenerateFeedback(ctx context.Context, transcript model.Transcript) (model.Feedback, error) {
	raw, err := c.complete(ctx, feedbackPrompt(transcript), feedbackTemp)
	if err != nil {
		return model.Feedback{}, err
	}

	var feedback model.Feedback
	if err := Normalize(ctx, raw, &feedback); err != nil {
		return model.Feedback{}, fmt.Errorf("feedback: %w", err)
	}

	return feedback, nil
}

// analysisPayload matches the key names the prompt instructs the model to use.
type analysisPayload struct {
	Feedback           model.Feedback `json:"aiFeedback"`
	Rewrite            string         `json:"aiRewrite"`
	SubjectSuggestions []string       `json:"aiSubjectSuggestions"`
	OpeningLine        string         `json:"aiOpeningLine"`
	ClosingCTA         string         `json:"aiClosingCTA"`
}

// AnalyzeColdEmail reviews a cold outreach draft and produces feedback, a
// rewrite, and subject-line suggestions.
func (c *Coach) AnalyzeColdEmail(ctx context.Context, draftText string) (model.EmailAnalysis, error) {
	raw, err := c.complete(ctx, coldEmailPrompt(draftText), generateTemp)
	if err != nil {
		return model.EmailAnalysis{}, err
	}

	var payload analysisPayload
	if err := Normalize(ctx, raw, &payload); err != nil {
		return model.EmailAnalysis{}, fmt.Errorf("cold email: %w", err)
	}

	return model.EmailAnalysis{
		Feedback:           payload.Feedback,
		Rewrite:            payload.Rewrite,
		SubjectSuggestions: payload.SubjectSuggestions,
		OpeningLine:        payload.OpeningLine,
		ClosingCTA:         payload.ClosingCTA,
	}, nil
}

// GenerateKit produces a coffeechat kit from the user's descriptor and the
// target's profile text.
func (c *Coach) GenerateKit(ctx context.Context, user model.KitUserInfo, target model.KitTargetInfo) (model.KitContent, error) {
	raw, err := c.complete(ctx, kitPrompt(user, target), generateTemp)
	if err != nil {
		return model.KitContent{}, err
	}

	var kit model.KitContent
	if err := Normalize(ctx, raw, &kit); err != nil {
		return model.KitContent{}, fmt.Errorf("kit: %w", err)
	}

	return kit, nil
}

func (c *Coach) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	raw, err := c.llm.Complete(ctx, llm.Request{
		Messages:    []llm.Message{{Role: "user", Content: prompt}},
		Temperature: llm.Temp(temperature),
	})
	if err != nil {
		slog.ErrorContext(ctx, "completion failed", "error", err, "model", c.llm.Model())
		return "", ErrUpstream
	}
	return raw, nil
}
