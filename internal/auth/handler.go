package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	Me(ctx context.Context, userID int64) (*User, error)
}

type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	gate    *Gate
	cookie  CookieOptions
}

func NewHandler(svc ServiceAPI, gate *Gate, cookie CookieOptions) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = DefaultTokenDuration
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		gate:        gate,
		cookie:      cookie,
	}
}

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}

	u, err := h.Service.Register(r.Context(), dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, u, "User registered successfully")
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.gate.CookieName(),
		Value:    resp.Token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteSuccess(w, http.StatusOK, resp, "Login successful")
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.gate.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteSuccess(w, http.StatusOK, nil, "Logged out successfully")
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	u, err := h.Service.Me(r.Context(), id.UserID)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, u, "")
}

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.gate.Authenticate(r)
		if !ok {
			logger.From(r.Context()).DebugContext(r.Context(), "auth middleware: no valid token", "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := ContextWithIdentity(r.Context(), id)
		ctx = logger.With(ctx, "userID", id.UserID, "role", id.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

