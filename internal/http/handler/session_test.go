package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/internal/http/handler"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/scenario"
	"coffeechat.app/api/internal/store"
)

var _ = Describe("SessionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockSessionService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockSessionService{}
		h := handler.NewSessionHandler(svc)
		auth := withUser(&model.User{ID: 7})
		router.POST("/sessions", auth, h.Save)
		router.GET("/sessions", auth, h.Get)
	})

	Describe("Save", func() {
		post := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/sessions", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("creates a session when no id is given", func() {
			svc.saveFn = func(_ context.Context, ownerUserID int64, sessionID *int64, sc scenario.Scenario, transcript model.Transcript) (*model.ChatSession, error) {
				Expect(ownerUserID).To(Equal(int64(7)))
				Expect(sessionID).To(BeNil())
				return &model.ChatSession{ID: 1234, OwnerUserID: ownerUserID, Scenario: sc, Transcript: transcript}, nil
			}

			w := post(`{"scenario": "alumni", "transcript": [{"role": "user", "content": "hi"}]}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["sessionId"]).To(Equal("1234"))
			Expect(resp["success"]).To(BeTrue())
		})

		It("updates in place when an id is given", func() {
			var gotID *int64
			svc.saveFn = func(_ context.Context, _ int64, sessionID *int64, _ scenario.Scenario, _ model.Transcript) (*model.ChatSession, error) {
				gotID = sessionID
				return &model.ChatSession{ID: *sessionID}, nil
			}

			w := post(`{"sessionId": "555", "scenario": "alumni", "transcript": [{"role": "user", "content": "hi"}]}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotID).NotTo(BeNil())
			Expect(*gotID).To(Equal(int64(555)))
		})

		It("returns 400 on an empty transcript", func() {
			w := post(`{"scenario": "alumni", "transcript": []}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when updating a foreign session", func() {
			svc.saveFn = func(_ context.Context, _ int64, _ *int64, _ scenario.Scenario, _ model.Transcript) (*model.ChatSession, error) {
				return nil, store.ErrNotFound
			}

			w := post(`{"sessionId": "555", "scenario": "alumni", "transcript": [{"role": "user", "content": "hi"}]}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 500 when the store fails", func() {
			svc.saveFn = func(_ context.Context, _ int64, _ *int64, _ scenario.Scenario, _ model.Transcript) (*model.ChatSession, error) {
				return nil, errors.New("boom")
			}

			w := post(`{"scenario": "alumni", "transcript": [{"role": "user", "content": "hi"}]}`)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Get", func() {
		It("returns the session with transcript and feedback", func() {
			now := time.Now()
			svc.loadFn = func(_ context.Context, ownerUserID, sessionID int64) (*model.ChatSession, error) {
				Expect(ownerUserID).To(Equal(int64(7)))
				Expect(sessionID).To(Equal(int64(888)))
				return &model.ChatSession{
					ID:          888,
					OwnerUserID: 7,
					Scenario:    scenario.PM,
					Transcript:  model.Transcript{{Role: model.RoleUser, Content: "hi"}},
					Feedback:    &model.Feedback{Strengths: []string{"direct"}},
					CreatedAt:   now,
					UpdatedAt:   now,
				}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/sessions?sessionId=888", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["sessionId"]).To(Equal("888"))
			Expect(resp["scenario"]).To(Equal("pm"))
			Expect(resp["feedback"]).NotTo(BeNil())
		})

		It("returns 400 without a sessionId", func() {
			req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for a missing or foreign session", func() {
			svc.loadFn = func(_ context.Context, _, _ int64) (*model.ChatSession, error) {
				return nil, store.ErrNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/sessions?sessionId=1", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
