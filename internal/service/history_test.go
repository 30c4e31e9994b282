package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
)

var _ = Describe("HistoryService", func() {
	var (
		svc      service.HistoryService
		sessions *mockChatSessionStore
		kits     *mockKitStore
		drafts   *mockEmailDraftStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		sessions = &mockChatSessionStore{}
		kits = &mockKitStore{}
		drafts = &mockEmailDraftStore{}

		svc = service.NewHistoryService(sessions, kits, drafts)
	})

	It("lists all three artifact kinds with the same cap", func() {
		var sessionLimit, kitLimit, draftLimit int32
		sessions.listRecentFn = func(_ context.Context, owner int64, limit int32) ([]model.ChatSession, error) {
			Expect(owner).To(Equal(int64(3)))
			sessionLimit = limit
			return []model.ChatSession{{ID: 1}}, nil
		}
		kits.listRecentFn = func(_ context.Context, _ int64, limit int32) ([]model.KitListItem, error) {
			kitLimit = limit
			return []model.KitListItem{{Kit: model.Kit{ID: 2}}}, nil
		}
		drafts.listRecentFn = func(_ context.Context, _ int64, limit int32) ([]model.EmailDraft, error) {
			draftLimit = limit
			return []model.EmailDraft{{ID: 3}}, nil
		}

		history, err := svc.Recent(ctx, 3)

		Expect(err).NotTo(HaveOccurred())
		Expect(history.Sessions).To(HaveLen(1))
		Expect(history.Kits).To(HaveLen(1))
		Expect(history.EmailDrafts).To(HaveLen(1))
		Expect(sessionLimit).To(Equal(int32(50)))
		Expect(kitLimit).To(Equal(sessionLimit))
		Expect(draftLimit).To(Equal(sessionLimit))
	})

	It("fails whole when any listing fails", func() {
		kits.listRecentFn = func(_ context.Context, _ int64, _ int32) ([]model.KitListItem, error) {
			return nil, errors.New("boom")
		}

		_, err := svc.Recent(ctx, 3)

		Expect(err).To(HaveOccurred())
	})
})
