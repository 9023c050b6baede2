package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/pkg/logger"
	"github.com/go-chi/chi"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Response is the envelope every endpoint writes.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

func (h *BaseHandler) WriteSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	h.WriteJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// WriteError writes an error envelope with a bare message.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, Response{Success: false, Error: message})
}

// HandleError maps err onto the envelope. Anything that is not an AppError is
// logged and reported as a generic 500.
func (h *BaseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := internal.IsAppError(err)
	if !ok || appErr.StatusCode >= http.StatusInternalServerError || appErr.StatusCode == 0 {
		logger.From(r.Context()).ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.WriteJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Internal server error",
			Code:    string(internal.ErrCodeInternal),
		})
		return
	}

	if appErr.StatusCode == http.StatusForbidden {
		logger.From(r.Context()).WarnContext(r.Context(), "access denied",
			"path", r.URL.Path,
			"user_id", internal.UserIDFromContext(r.Context()),
			"code", appErr.Code,
		)
	}

	h.WriteJSON(w, appErr.StatusCode, Response{
		Success: false,
		Error:   appErr.GetDetailedMessage(),
		Code:    string(appErr.Code),
		Details: appErr.Details,
	})
}

// DecodeJSON decodes the request body into dst.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return internal.ErrInvalidBody
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return internal.ErrInvalidBody.WithCause(err)
	}
	return nil
}

// ParseIDParam reads a positive integer path parameter.
func (h *BaseHandler) ParseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, internal.ErrInvalidID
	}
	return id, nil
}

// ParseLimit reads ?limit, falling back to def and clamping to max.
func (h *BaseHandler) ParseLimit(r *http.Request, def, max int) int {
	limit := def
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}

func (h *BaseHandler) ParseOffset(r *http.Request) int {
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return 0
}

func BearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}
