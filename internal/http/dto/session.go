package dto

import (
	"errors"
	"fmt"
	"time"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
)

// SaveSessionRequest creates a session when SessionID is absent, otherwise
// updates the identified session (owner-checked downstream).
type SaveSessionRequest struct {
	SessionID  *int64          `json:"sessionId,string,omitempty"`
	Scenario   string          `json:"scenario"`
	Transcript []model.Message `json:"transcript"`
}

func (r *SaveSessionRequest) Validate() (scenario.Scenario, model.Transcript, error) {
	sc, err := scenario.FromString(r.Scenario)
	if err != nil {
		return "", nil, fmt.Errorf("scenario must be one of: %s", scenarioList())
	}

	if len(r.Transcript) == 0 {
		return "", nil, errors.New("transcript cannot be empty")
	}
	for _, msg := range r.Transcript {
		if !msg.Role.Valid() {
			return "", nil, fmt.Errorf("invalid message role %q", msg.Role)
		}
	}

	return sc, model.Transcript(r.Transcript), nil
}

type SaveSessionResponse struct {
	SessionID int64 `json:"sessionId,string"`
	Success   bool  `json:"success"`
}

type SessionResponse struct {
	SessionID  int64           `json:"sessionId,string"`
	Scenario   string          `json:"scenario"`
	Transcript []model.Message `json:"transcript"`
	Feedback   *model.Feedback `json:"feedback,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func ToSessionResponse(s *model.ChatSession) *SessionResponse {
	return &SessionResponse{
		SessionID:  s.ID,
		Scenario:   s.Scenario.String(),
		Transcript: s.Transcript,
		Feedback:   s.Feedback,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
