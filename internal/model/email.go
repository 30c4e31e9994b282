package model

import "time"

// EmailAnalysis is the AI's assessment of a cold outreach draft.
// Derived whole from a single draft text; never hand-edited.
type EmailAnalysis struct {
	Feedback           Feedback `json:"feedback"`
	Rewrite            string   `json:"rewrite"`
	SubjectSuggestions []string `json:"subjectSuggestions"`
	OpeningLine        string   `json:"openingLine"`
	ClosingCTA         string   `json:"closingCTA"`
}

// EmailDraft is a persisted cold-email submission plus its analysis.
type EmailDraft struct {
	ID                 int64
	OwnerUserID        int64
	DraftText          string
	Feedback           Feedback
	Rewrite            string
	SubjectSuggestions []string
	CreatedAt          time.Time
}
