package dto

import (
	"time"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
)

type HistoryResponse struct {
	Sessions    []SessionSummary `json:"sessions"`
	Kits        []KitSummary     `json:"kits"`
	EmailDrafts []DraftSummary   `json:"emailDrafts"`
}

type SessionSummary struct {
	SessionID   int64           `json:"sessionId,string"`
	Scenario    string          `json:"scenario"`
	Messages    int             `json:"messages"`
	HasFeedback bool            `json:"hasFeedback"`
	Feedback    *model.Feedback `json:"feedback,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type KitSummary struct {
	ID                int64            `json:"id,string"`
	Kit               model.KitContent `json:"kit"`
	ContactName       *string          `json:"contactName,omitempty"`
	ContactProfileURL *string          `json:"contactProfileUrl,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
}

type DraftSummary struct {
	ID                 int64          `json:"id,string"`
	DraftText          string         `json:"draftText"`
	Feedback           model.Feedback `json:"feedback"`
	Rewrite            string         `json:"rewrite"`
	SubjectSuggestions []string       `json:"subjectSuggestions"`
	CreatedAt          time.Time      `json:"createdAt"`
}

func ToHistoryResponse(h *service.History) *HistoryResponse {
	resp := &HistoryResponse{
		Sessions:    make([]SessionSummary, 0, len(h.Sessions)),
		Kits:        make([]KitSummary, 0, len(h.Kits)),
		EmailDrafts: make([]DraftSummary, 0, len(h.EmailDrafts)),
	}

	for _, s := range h.Sessions {
		resp.Sessions = append(resp.Sessions, SessionSummary{
			SessionID:   s.ID,
			Scenario:    s.Scenario.String(),
			Messages:    len(s.Transcript),
			HasFeedback: s.Feedback != nil,
			Feedback:    s.Feedback,
			CreatedAt:   s.CreatedAt,
		})
	}
	for _, k := range h.Kits {
		resp.Kits = append(resp.Kits, KitSummary{
			ID:                k.ID,
			Kit:               k.Content,
			ContactName:       k.ContactName,
			ContactProfileURL: k.ContactProfileURL,
			CreatedAt:         k.CreatedAt,
		})
	}
	for _, d := range h.EmailDrafts {
		resp.EmailDrafts = append(resp.EmailDrafts, DraftSummary{
			ID:                 d.ID,
			DraftText:          d.DraftText,
			Feedback:           d.Feedback,
			Rewrite:            d.Rewrite,
			SubjectSuggestions: d.SubjectSuggestions,
			CreatedAt:          d.CreatedAt,
		})
	}

	return resp
}
