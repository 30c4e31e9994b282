package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/internal/http/handler"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
)

var _ = Describe("KitHandler", func() {
	var (
		router *gin.Engine
		svc    *mockKitService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockKitService{}
		h := handler.NewKitHandler(svc)
		router.POST("/kits", withUser(&model.User{ID: 11}), h.Generate)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/kits", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	validBody, _ := json.Marshal(map[string]any{
		"userInfo": map[string]string{
			"name": "Sam",
			"role": "CS student",
		},
		"targetInfo": map[string]string{
			"profileText": strings.Repeat("Engineering manager, ex-startup founder. ", 4),
		},
	})

	It("returns the generated kit", func() {
		svc.generateFn = func(_ context.Context, ownerUserID int64, user model.KitUserInfo, target model.KitTargetInfo) (*model.Kit, error) {
			Expect(ownerUserID).To(Equal(int64(11)))
			Expect(user.Name).To(Equal("Sam"))
			Expect(target.ProfileText).NotTo(BeEmpty())
			return &model.Kit{
				ID: 777,
				Content: model.KitContent{
					SharedInterests: []string{"startups"},
					Starters:        []string{"What made you jump from founding to managing?"},
					FollowUps:       []string{"How did you pick your first hires?"},
					OneLinePitch:    "I'm Sam, a CS student exploring engineering leadership.",
				},
			}, nil
		}

		w := post(string(validBody))

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp struct {
			ID  int64            `json:"id,string"`
			Kit model.KitContent `json:"kit"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.ID).To(Equal(int64(777)))
		Expect(resp.Kit.Starters).To(HaveLen(1))
		Expect(resp.Kit.OneLinePitch).NotTo(BeEmpty())
	})

	It("returns 400 when required fields are missing", func() {
		w := post(`{"userInfo": {"name": "Sam"}, "targetInfo": {"profileText": "x"}}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("required"))
	})

	It("returns 400 for a link with no pasted profile text", func() {
		body, _ := json.Marshal(map[string]any{
			"userInfo":   map[string]string{"name": "Sam", "role": "CS student"},
			"targetInfo": map[string]string{"profileText": "see link", "profileUrl": "https://linkedin.com/in/x"},
		})
		w := post(string(body))

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("paste the actual profile text"))
	})

	It("returns 429 when rate limited", func() {
		svc.generateFn = func(_ context.Context, _ int64, _ model.KitUserInfo, _ model.KitTargetInfo) (*model.Kit, error) {
			return nil, service.ErrRateLimited
		}

		w := post(string(validBody))

		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
	})

	It("returns 500 when generation fails", func() {
		svc.generateFn = func(_ context.Context, _ int64, _ model.KitUserInfo, _ model.KitTargetInfo) (*model.Kit, error) {
			return nil, errors.New("boom")
		}

		w := post(string(validBody))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
