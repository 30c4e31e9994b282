package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/internal/http/handler"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/store"
)

var _ = Describe("FeedbackHandler", func() {
	var (
		router *gin.Engine
		svc    *mockFeedbackService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockFeedbackService{}
		h := handler.NewFeedbackHandler(svc)
		router.POST("/feedback", withUser(&model.User{ID: 42}), h.Generate)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/feedback", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	validBody := `{
		"scenario": "recruiter",
		"transcript": [
			{"role": "user", "content": "hi"},
			{"role": "assistant", "content": "hello"}
		]
	}`

	It("returns the generated feedback", func() {
		svc.generateFn = func(_ context.Context, ownerUserID int64, sessionID *int64, _ scenario.Scenario, _ model.Transcript) (model.Feedback, error) {
			Expect(ownerUserID).To(Equal(int64(42)))
			Expect(sessionID).To(BeNil())
			return model.Feedback{
				Strengths:    []string{"asked specific questions"},
				Improvements: []string{"state your goal earlier"},
			}, nil
		}

		w := post(validBody)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			Feedback model.Feedback `json:"feedback"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Feedback.Strengths).To(HaveLen(1))
		Expect(resp.Feedback.Improvements).To(HaveLen(1))
	})

	It("passes the session id through when present", func() {
		var gotSessionID *int64
		svc.generateFn = func(_ context.Context, _ int64, sessionID *int64, _ scenario.Scenario, _ model.Transcript) (model.Feedback, error) {
			gotSessionID = sessionID
			return model.Feedback{}, nil
		}

		body := fmt.Sprintf(`{
			"sessionId": "%d",
			"scenario": "pm",
			"transcript": [
				{"role": "user", "content": "hi"},
				{"role": "assistant", "content": "hello"}
			]
		}`, int64(987654321))
		w := post(body)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotSessionID).NotTo(BeNil())
		Expect(*gotSessionID).To(Equal(int64(987654321)))
	})

	It("returns 400 on a one-message transcript", func() {
		w := post(`{"scenario": "pm", "transcript": [{"role": "user", "content": "hi"}]}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("at least 2 messages"))
	})

	It("returns 404 when the session belongs to someone else", func() {
		svc.generateFn = func(_ context.Context, _ int64, _ *int64, _ scenario.Scenario, _ model.Transcript) (model.Feedback, error) {
			return model.Feedback{}, fmt.Errorf("attaching feedback: %w", store.ErrNotFound)
		}

		w := post(validBody)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("session not found or access denied"))
	})

	It("returns 500 when generation fails", func() {
		svc.generateFn = func(_ context.Context, _ int64, _ *int64, _ scenario.Scenario, _ model.Transcript) (model.Feedback, error) {
			return model.Feedback{}, errors.New("boom")
		}

		w := post(validBody)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
