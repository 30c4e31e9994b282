package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"coffeechat.app/api/common/id"
	"coffeechat.app/api/internal/model"
	"coffeechat.app/api/internal/service"
)

var _ = Describe("KitService", func() {
	var (
		svc     service.KitService
		coach   *mockCoach
		kits    *mockKitStore
		limiter *mockLimiter
		ctx     context.Context
	)

	userInfo := model.KitUserInfo{Name: "Sam", Role: "CS student"}
	targetInfo := model.KitTargetInfo{
		ProfileText: "Engineering manager at a fintech, previously founded a devtools startup.",
		ProfileURL:  "https://linkedin.com/in/jordan",
	}

	BeforeEach(func() {
		ctx = context.Background()
		coach = &mockCoach{}
		kits = &mockKitStore{}
		limiter = &mockLimiter{}

		Expect(id.Init(1)).To(Succeed())

		svc = service.NewKitService(coach, kits, limiter)
	})

	It("stores the contact and kit together and stamps the model version", func() {
		coach.generateKitFn = func(_ context.Context, user model.KitUserInfo, target model.KitTargetInfo) (model.KitContent, error) {
			Expect(user.Name).To(Equal("Sam"))
			Expect(target.ProfileText).To(Equal(targetInfo.ProfileText))
			return model.KitContent{
				SharedInterests: []string{"devtools"},
				Starters:        []string{"What pulled you from founding back into management?"},
				FollowUps:       []string{"What do you look for in early hires?"},
				OneLinePitch:    "I'm Sam, a CS student building developer tooling.",
			}, nil
		}

		var storedContact *model.Contact
		var storedKit *model.Kit
		kits.createWithContactFn = func(_ context.Context, contact *model.Contact, kit *model.Kit) error {
			storedContact = contact
			storedKit = kit
			return nil
		}

		kit, err := svc.Generate(ctx, 11, userInfo, targetInfo)

		Expect(err).NotTo(HaveOccurred())
		Expect(kit.ID).NotTo(BeZero())
		Expect(kit.ModelVersion).To(Equal("test-model"))
		Expect(storedContact.OwnerUserID).To(Equal(int64(11)))
		Expect(storedContact.RawProfileText).To(Equal(targetInfo.ProfileText))
		Expect(storedContact.ProfileURL).NotTo(BeNil())
		Expect(*storedContact.ProfileURL).To(Equal(targetInfo.ProfileURL))
		Expect(storedKit.Content.SharedInterests).To(ConsistOf("devtools"))
	})

	It("leaves the profile url nil when none was given", func() {
		var storedContact *model.Contact
		kits.createWithContactFn = func(_ context.Context, contact *model.Contact, _ *model.Kit) error {
			storedContact = contact
			return nil
		}

		_, err := svc.Generate(ctx, 11, userInfo, model.KitTargetInfo{ProfileText: "some profile"})

		Expect(err).NotTo(HaveOccurred())
		Expect(storedContact.ProfileURL).To(BeNil())
	})

	It("rejects before calling the coach when rate limited", func() {
		limiter.allowFn = func(_ context.Context, _ string) (bool, error) {
			return false, nil
		}
		coach.generateKitFn = func(_ context.Context, _ model.KitUserInfo, _ model.KitTargetInfo) (model.KitContent, error) {
			Fail("coach must not be called when rate limited")
			return model.KitContent{}, nil
		}

		_, err := svc.Generate(ctx, 11, userInfo, targetInfo)

		Expect(errors.Is(err, service.ErrRateLimited)).To(BeTrue())
	})

	It("does not store anything when generation fails", func() {
		coach.generateKitFn = func(_ context.Context, _ model.KitUserInfo, _ model.KitTargetInfo) (model.KitContent, error) {
			return model.KitContent{}, errors.New("upstream down")
		}
		kits.createWithContactFn = func(_ context.Context, _ *model.Contact, _ *model.Kit) error {
			Fail("nothing should be stored when generation fails")
			return nil
		}

		_, err := svc.Generate(ctx, 11, userInfo, targetInfo)

		Expect(err).To(HaveOccurred())
	})
})
