package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		handler *Handler
		codec   *JWTCodec
	)

	BeforeEach(func() {
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		codec = NewJWTCodec(testSecret, 0)
		svc := NewService(newMockUserRepository(), codec, nil, 4, lg)
		handler = NewHandler(svc, NewGate(codec, ""), CookieOptions{})
		handler.Logger = lg
	})

	post := func(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder) map[string]interface{} {
		var body map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return body
	}

	const registerBody = `{"name":"A","email":"a@b.com","password":"Abcdef12","role":"employee"}`

	Describe("Register", func() {
		It("returns 201 without the password and 409 on repeat", func() {
			// Given / When
			rec := post(handler.Register, registerBody)

			// Then
			Expect(rec.Code).To(Equal(http.StatusCreated))
			body := decode(rec)
			Expect(body["success"]).To(BeTrue())
			data := body["data"].(map[string]interface{})
			Expect(data["email"]).To(Equal("a@b.com"))
			Expect(data["role"]).To(Equal("employee"))
			Expect(data).NotTo(HaveKey("password"))
			Expect(data).NotTo(HaveKey("PasswordHash"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("Abcdef12"))

			again := post(handler.Register, registerBody)
			Expect(again.Code).To(Equal(http.StatusConflict))
			Expect(decode(again)["error"]).To(Equal("User with this email already exists"))
		})

		It("returns 400 on malformed json", func() {
			rec := post(handler.Register, `{"name":`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decode(rec)["success"]).To(BeFalse())
		})

		It("returns 400 with field details on a weak password", func() {
			rec := post(handler.Register, `{"name":"A","email":"a@b.com","password":"abc","role":"employee"}`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			body := decode(rec)
			Expect(body["error"]).To(Equal("Password must be at least 8 characters long"))
			Expect(body["details"]).NotTo(BeNil())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			Expect(post(handler.Register, registerBody).Code).To(Equal(http.StatusCreated))
		})

		It("returns the token and sets an HttpOnly cookie", func() {
			rec := post(handler.Login, `{"email":"a@b.com","password":"Abcdef12"}`)
			Expect(rec.Code).To(Equal(http.StatusOK))

			data := decode(rec)["data"].(map[string]interface{})
			token := data["token"].(string)
			_, ok := codec.Verify(token)
			Expect(ok).To(BeTrue())

			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal("auth-token"))
			Expect(cookies[0].Value).To(Equal(token))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].SameSite).To(Equal(http.SameSiteLaxMode))
		})

		It("returns 401 for bad credentials", func() {
			rec := post(handler.Login, `{"email":"a@b.com","password":"Wrongpass1"}`)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(rec)["error"]).To(Equal("Invalid email or password"))
		})
	})

	Describe("Logout", func() {
		It("expires the cookie", func() {
			rec := post(handler.Logout, "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			cookies := rec.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
		})
	})

	Describe("AuthMiddleware and Me", func() {
		It("rejects anonymous requests with the envelope", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			rec := httptest.NewRecorder()
			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode(rec)).To(Equal(map[string]interface{}{"success": false, "error": "Unauthorized"}))
		})

		It("returns the current user for a valid bearer token", func() {
			Expect(post(handler.Register, registerBody).Code).To(Equal(http.StatusCreated))
			login := post(handler.Login, `{"email":"a@b.com","password":"Abcdef12"}`)
			token := decode(login)["data"].(map[string]interface{})["token"].(string)

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			handler.AuthMiddleware(http.HandlerFunc(handler.Me)).ServeHTTP(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			data := decode(rec)["data"].(map[string]interface{})
			Expect(data["email"]).To(Equal("a@b.com"))
		})
	})
})
