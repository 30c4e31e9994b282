package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrEmptyCompletion is returned when the generation service responds
// successfully but with no usable content.
var ErrEmptyCompletion = errors.New("empty completion from generation service")

// streamBufferSize bounds in-flight chunks between the upstream reader and
// the downstream consumer. Beyond this the relay stops pulling from upstream
// until the consumer catches up.
const streamBufferSize = 16

// Message is a single turn in a conversation sent to the generation service.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

type Request struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration // per-request deadline, zero = transport default
}

// Client talks to an OpenAI-compatible chat completions API.
type Client interface {
	// Complete sends the full prompt and waits for the whole completion.
	Complete(ctx context.Context, req Request) (string, error)

	// Stream sends the prompt and relays incremental tokens as they arrive.
	// Chunks are delivered on the first channel; a terminal upstream error,
	// if any, on the second. Both channels are closed when the stream ends.
	// The relay performs no buffering beyond the bounded channel, so a slow
	// consumer throttles the upstream pull.
	Stream(ctx context.Context, req Request) (<-chan string, <-chan error)

	Model() string
}

type client struct {
	openai openai.Client
	model  string
}

func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := cfg.Model
	if model == "" {
		model = "llama-3.1-8b-instant"
	}

	return &client{
		openai: openai.NewClient(opts...),
		model:  model,
	}, nil
}

func (c *client) Complete(ctx context.Context, req Request) (string, error) {
	params := c.buildParams(req)

	start := time.Now()
	resp, err := c.openai.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	slog.DebugContext(ctx, "chat completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *client) Stream(ctx context.Context, req Request) (<-chan string, <-chan error) {
	params := c.buildParams(req)

	chunks := make(chan string, streamBufferSize)
	errs := make(chan error, 1)

	stream := c.openai.Chat.Completions.NewStreaming(ctx, params)

	go func() {
		defer close(errs)
		defer close(chunks)
		defer stream.Close() //nolint:errcheck

		start := time.Now()
		sent := 0

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}

			select {
			case chunks <- delta:
				sent++
			case <-ctx.Done():
				slog.DebugContext(ctx, "stream consumer gone, releasing upstream",
					"model", c.model, "chunks_sent", sent)
				errs <- ctx.Err()
				return
			}
		}

		if err := stream.Err(); err != nil {
			errs <- fmt.Errorf("chat stream: %w", err)
			return
		}

		slog.DebugContext(ctx, "chat stream finished",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"chunks_sent", sent)
	}()

	return chunks, errs
}

func (c *client) Model() string {
	return c.model
}

func (c *client) buildParams(req Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.SystemPrompt))
	}
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	return params
}

// Temp is a convenience for building a temperature pointer inline.
func Temp(t float64) *float64 {
	return &t
}
