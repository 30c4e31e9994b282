package dto

import (
	"errors"
	"fmt"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

const minFeedbackTranscript = 2

// FeedbackRequest asks for coaching feedback on a finished (or paused)
// practice conversation.
type FeedbackRequest struct {
	SessionID  *int64          `json:"sessionId,string,omitempty"`
	Scenario   string          `json:"scenario"`
	Transcript []model.Message `json:"transcript"`
}

func (r *FeedbackRequest) Validate() (scenario.Scenario, model.Transcript, error) {
	sc, err := scenario.FromString(r.Scenario)
	if err != nil {
		return "", nil, fmt.Errorf("scenario must be one of: %s", scenarioList())
	}

	if len(r.Transcript) < minFeedbackTranscript {
		return "", nil, errors.New("transcript must have at least 2 messages")
	}
	for _, msg := range r.Transcript {
		if !msg.Role.Valid() {
			return "", nil, fmt.Errorf("invalid message role %q", msg.Role)
		}
	}

	return sc, model.Transcript(r.Transcript), nil
}
