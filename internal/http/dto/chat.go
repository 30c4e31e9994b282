package dto

import (
	"errors"
	"fmt"
	"strings"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

const maxMessageLen = 1000

// ChatRequest asks for one streamed persona reply. The client carries the
// running transcript; the new message is appended server-side.
type ChatRequest struct {
	Scenario   string          `json:"scenario"`
	Message    string          `json:"message"`
	Transcript []model.Message `json:"transcript,omitempty"`
}

// Validate enforces the chat constraints and returns the typed scenario plus
// the full transcript to prompt with. The first violated constraint wins.
func (r *ChatRequest) Validate() (scenario.Scenario, model.Transcript, error) {
	sc, err := scenario.FromString(r.Scenario)
	if err != nil {
		return "", nil, fmt.Errorf("scenario must be one of: %s", scenarioList())
	}

	if r.Message == "" {
		return "", nil, errors.New("message cannot be empty")
	}
	if len(r.Message) > maxMessageLen {
		return "", nil, fmt.Errorf("message too long (maximum %d characters)", maxMessageLen)
	}

	for _, msg := range r.Transcript {
		if !msg.Role.Valid() {
			return "", nil, fmt.Errorf("invalid message role %q", msg.Role)
		}
	}

	transcript := make(model.Transcript, 0, len(r.Transcript)+1)
	transcript = append(transcript, r.Transcript...)
	transcript = append(transcript, model.Message{Role: model.RoleUser, Content: r.Message})

	return sc, transcript, nil
}

func scenarioList() string {
	names := make([]string, len(scenario.All))
	for i, s := range scenario.All {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
