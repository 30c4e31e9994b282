package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/core/config"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
	"coffeechat.app/api/internal/store"
)

var _ = Describe("AuthService", func() {
	var (
		svc      service.AuthService
		users    *mockUserStore
		sessions *mockAuthSessionStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = &mockUserStore{}
		sessions = &mockAuthSessionStore{}

		svc = service.NewAuthService(users, sessions, config.WorkOSConfig{
			APIKey:   "sk_test",
			ClientID: "client_test",
		})
	})

	Describe("ValidateSession", func() {
		It("returns the user behind a live session", func() {
			sessions.getValidFn = func(_ context.Context, id int64) (*model.AuthSession, error) {
				Expect(id).To(Equal(int64(55)))
				return &model.AuthSession{ID: 55, UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, id int64) (*model.User, error) {
				Expect(id).To(Equal(int64(42)))
				return &model.User{ID: 42, Email: "sam@example.com"}, nil
			}

			user, session, err := svc.ValidateSession(ctx, 55)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(42)))
			Expect(session.ID).To(Equal(int64(55)))
		})

		It("maps a missing or expired session to ErrSessionExpired", func() {
			sessions.getValidFn = func(_ context.Context, _ int64) (*model.AuthSession, error) {
				return nil, store.ErrNotFound
			}

			_, _, err := svc.ValidateSession(ctx, 55)

			Expect(errors.Is(err, service.ErrSessionExpired)).To(BeTrue())
		})

		It("maps a dangling user reference to ErrUserNotFound", func() {
			sessions.getValidFn = func(_ context.Context, _ int64) (*model.AuthSession, error) {
				return &model.AuthSession{ID: 55, UserID: 42}, nil
			}
			users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, _, err := svc.ValidateSession(ctx, 55)

			Expect(errors.Is(err, service.ErrUserNotFound)).To(BeTrue())
		})
	})

	Describe("Logout", func() {
		It("deletes the session", func() {
			var deleted int64
			sessions.deleteFn = func(_ context.Context, id int64) error {
				deleted = id
				return nil
			}

			Expect(svc.Logout(ctx, 55)).To(Succeed())
			Expect(deleted).To(Equal(int64(55)))
		})
	})
})
