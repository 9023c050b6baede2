package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTCodec", func() {
	var codec *JWTCodec

	BeforeEach(func() {
		codec = NewJWTCodec(testSecret, 0)
	})

	It("defaults to a seven day validity window", func() {
		Expect(codec.TTL()).To(Equal(7 * 24 * time.Hour))
	})

	It("round trips the identity", func() {
		// Given
		id := Identity{UserID: 42, Email: "a@b.com", Role: RoleManager}

		// When
		token, err := codec.Sign(id)
		Expect(err).NotTo(HaveOccurred())
		claims, ok := codec.Verify(token)

		// Then
		Expect(ok).To(BeTrue())
		Expect(*claims.Identity()).To(Equal(id))
		Expect(claims.ExpiresAt.Time).To(BeTemporally("~", time.Now().Add(7*24*time.Hour), time.Minute))
	})

	It("fails closed on a token signed with another secret", func() {
		other := NewJWTCodec("another-secret-that-is-32-characters-long", 0)
		token, err := other.Sign(Identity{UserID: 1, Email: "a@b.com", Role: RoleAdmin})
		Expect(err).NotTo(HaveOccurred())

		claims, ok := codec.Verify(token)
		Expect(ok).To(BeFalse())
		Expect(claims).To(BeNil())
	})

	It("fails closed on a tampered payload", func() {
		employee, err := codec.Sign(Identity{UserID: 1, Email: "a@b.com", Role: RoleEmployee})
		Expect(err).NotTo(HaveOccurred())
		admin, err := codec.Sign(Identity{UserID: 1, Email: "a@b.com", Role: RoleAdmin})
		Expect(err).NotTo(HaveOccurred())

		// admin payload carrying the employee token's signature
		a := strings.Split(admin, ".")
		e := strings.Split(employee, ".")
		_, ok := codec.Verify(a[0] + "." + a[1] + "." + e[2])
		Expect(ok).To(BeFalse())
	})

	It("rejects the none algorithm", func() {
		claims := &Claims{
			UserID: 1,
			Email:  "a@b.com",
			Role:   RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, ok := codec.Verify(token)
		Expect(ok).To(BeFalse())
	})

	It("rejects expired tokens", func() {
		codec.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
		token, err := codec.Sign(Identity{UserID: 1, Email: "a@b.com", Role: RoleEmployee})
		Expect(err).NotTo(HaveOccurred())

		codec.now = time.Now
		_, ok := codec.Verify(token)
		Expect(ok).To(BeFalse())
	})

	It("rejects garbage and empty input without panicking", func() {
		for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
			_, ok := codec.Verify(token)
			Expect(ok).To(BeFalse())
		}
	})

	It("rejects tokens carrying an unknown role", func() {
		token, err := codec.Sign(Identity{UserID: 1, Email: "a@b.com", Role: Role("root")})
		Expect(err).NotTo(HaveOccurred())

		_, ok := codec.Verify(token)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Passwords", func() {
	It("verifies the original password only", func() {
		hash, err := HashPassword("Abcdef12", 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(hash).NotTo(Equal("Abcdef12"))

		Expect(VerifyPassword(hash, "Abcdef12")).To(BeTrue())
		Expect(VerifyPassword(hash, "abcdef12")).To(BeFalse())
		Expect(VerifyPassword("not-a-hash", "Abcdef12")).To(BeFalse())
	})
})
