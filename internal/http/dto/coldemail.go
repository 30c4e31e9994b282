package dto

import (
	"fmt"

	"coffeechat.app/api/internal/model"
)

const (
	minDraftLen = 20
	maxDraftLen = 2000
)

type ColdEmailRequest struct {
	DraftText string `json:"draftText"`
}

func (r *ColdEmailRequest) Validate() error {
	if len(r.DraftText) < minDraftLen {
		return fmt.Errorf("email draft must be at least %d characters", minDraftLen)
	}
	if len(r.DraftText) > maxDraftLen {
		return fmt.Errorf("email draft too long (maximum %d characters)", maxDraftLen)
	}
	return nil
}

type ColdEmailResponse struct {
	ID                 int64          `json:"id,string"`
	Feedback           model.Feedback `json:"feedback"`
	Rewrite            string         `json:"rewrite"`
	SubjectSuggestions []string       `json:"subjectSuggestions"`
	OpeningLine        string         `json:"openingLine"`
	ClosingCTA         string         `json:"closingCTA"`
}

func ToColdEmailResponse(draftID int64, analysis model.EmailAnalysis) *ColdEmailResponse {
	return &ColdEmailResponse{
		ID:                 draftID,
		Feedback:           analysis.Feedback,
		Rewrite:            analysis.Rewrite,
		SubjectSuggestions: analysis.SubjectSuggestions,
		OpeningLine:        analysis.OpeningLine,
		ClosingCTA:         analysis.ClosingCTA,
	}
}
