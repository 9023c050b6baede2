package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/events"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		codec    *JWTCodec
		bus      *events.EventBus
		ctx      context.Context
	)

	validDTO := func() RegisterDTO {
		return RegisterDTO{Name: "A", Email: "a@b.com", Password: "Abcdef12", Role: "employee"}
	}

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockUserRepository()
		codec = NewJWTCodec(testSecret, 0)
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		bus = events.NewEventBus(lg)
		service = NewService(mockRepo, codec, bus, 4, lg)
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("stores a bcrypt hash and never the plain password", func() {
			// When
			u, err := service.Register(ctx, validDTO())

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.ID).To(gomega.Equal(int64(1)))
			gomega.Expect(u.Role).To(gomega.Equal(RoleEmployee))
			gomega.Expect(u.PasswordHash).ToNot(gomega.Equal("Abcdef12"))
			gomega.Expect(VerifyPassword(u.PasswordHash, "Abcdef12")).To(gomega.BeTrue())
		})

		ginkgo.It("normalizes the email", func() {
			dto := validDTO()
			dto.Email = "  A@B.com "

			u, err := service.Register(ctx, dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.Email).To(gomega.Equal("a@b.com"))
		})

		ginkgo.It("rejects a duplicate email with a conflict", func() {
			_, err := service.Register(ctx, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Register(ctx, validDTO())
			gomega.Expect(err).To(gomega.MatchError(internal.ErrEmailTaken))
		})

		ginkgo.DescribeTable("rejects invalid input",
			func(mutate func(*RegisterDTO), message string) {
				dto := validDTO()
				mutate(&dto)

				_, err := service.Register(ctx, dto)

				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
				gomega.Expect(appErr.GetDetailedMessage()).To(gomega.ContainSubstring(message))
			},
			ginkgo.Entry("missing name", func(d *RegisterDTO) { d.Name = "" }, "name is required"),
			ginkgo.Entry("bad email", func(d *RegisterDTO) { d.Email = "not-an-email" }, "Invalid email format"),
			ginkgo.Entry("short password", func(d *RegisterDTO) { d.Password = "Ab1" }, "at least 8 characters"),
			ginkgo.Entry("weak password", func(d *RegisterDTO) { d.Password = "abcdefgh" }, "one uppercase letter"),
			ginkgo.Entry("unknown role", func(d *RegisterDTO) { d.Role = "root" }, "Invalid role"),
		)

		ginkgo.It("publishes a user.registered event", func() {
			var received []string
			bus.Subscribe(events.EventTypeUserRegistered, func(_ context.Context, ev events.Event) error {
				received = append(received, ev.EventType())
				return nil
			})

			_, err := service.Register(ctx, validDTO())
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(received).To(gomega.Equal([]string{events.EventTypeUserRegistered}))
		})

		ginkgo.It("propagates repository failures", func() {
			mockRepo.err = errors.New("connection refused")

			_, err := service.Register(ctx, validDTO())
			gomega.Expect(err).To(gomega.MatchError("connection refused"))
		})
	})

	ginkgo.Describe("Login", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.Register(ctx, RegisterDTO{Name: "M", Email: "m@b.com", Password: "Abcdef12", Role: "manager"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("issues a token that reproduces id, email and role", func() {
			// When
			resp, err := service.Login(ctx, LoginDTO{Email: "m@b.com", Password: "Abcdef12"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			claims, ok := codec.Verify(resp.Token)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(claims.UserID).To(gomega.Equal(resp.User.ID))
			gomega.Expect(claims.Email).To(gomega.Equal("m@b.com"))
			gomega.Expect(claims.Role).To(gomega.Equal(RoleManager))
		})

		ginkgo.It("rejects a wrong password", func() {
			_, err := service.Login(ctx, LoginDTO{Email: "m@b.com", Password: "Wrongpass1"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("does not reveal unknown emails", func() {
			_, err := service.Login(ctx, LoginDTO{Email: "nobody@b.com", Password: "Abcdef12"})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrInvalidCredentials))
		})

		ginkgo.It("requires both fields", func() {
			_, err := service.Login(ctx, LoginDTO{Email: "m@b.com"})
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
		})
	})

	ginkgo.Describe("Me", func() {
		ginkgo.It("returns not found for a deleted user", func() {
			_, err := service.Me(ctx, 99)
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})
	})
})
