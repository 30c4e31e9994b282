package model

import (
	"time"

	"coffeechat.app/api/internal/scenario"
)

// ChatSession is a persisted practice conversation owned by one user.
// The transcript grows over the session's life; feedback is attached once
// the user asks for it and is overwritten whole on regeneration.
type ChatSession struct {
	ID          int64
	OwnerUserID int64
	Scenario    scenario.Scenario
	Transcript  Transcript
	Feedback    *Feedback
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Feedback is the AI's assessment of the user's side of a conversation.
// Each list carries 1-3 items in practice.
type Feedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
