package auth

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Gate", func() {
	var (
		codec *JWTCodec
		gate  *Gate
	)

	BeforeEach(func() {
		codec = NewJWTCodec(testSecret, 0)
		gate = NewGate(codec, "")
	})

	sign := func(id Identity) string {
		token, err := codec.Sign(id)
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	It("uses the auth-token cookie by default", func() {
		Expect(gate.CookieName()).To(Equal("auth-token"))
	})

	It("authenticates from the bearer header", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+sign(Identity{UserID: 7, Email: "e@x.com", Role: RoleEmployee}))

		id, ok := gate.Authenticate(req)
		Expect(ok).To(BeTrue())
		Expect(id.UserID).To(Equal(int64(7)))
	})

	It("prefers the cookie over the header", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.AddCookie(&http.Cookie{Name: "auth-token", Value: sign(Identity{UserID: 1, Email: "c@x.com", Role: RoleAdmin})})
		req.Header.Set("Authorization", "Bearer "+sign(Identity{UserID: 2, Email: "h@x.com", Role: RoleEmployee}))

		id, ok := gate.Authenticate(req)
		Expect(ok).To(BeTrue())
		Expect(id.UserID).To(Equal(int64(1)))
		Expect(id.Role).To(Equal(RoleAdmin))
	})

	It("does not fall back to the header when the cookie is invalid", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.AddCookie(&http.Cookie{Name: "auth-token", Value: "stale"})
		req.Header.Set("Authorization", "Bearer "+sign(Identity{UserID: 2, Email: "h@x.com", Role: RoleEmployee}))

		_, ok := gate.Authenticate(req)
		Expect(ok).To(BeFalse())
	})

	It("rejects requests without credentials", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")

		_, ok := gate.Authenticate(req)
		Expect(ok).To(BeFalse())
	})
})
