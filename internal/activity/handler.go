package activity

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	Recent(ctx context.Context, caller *auth.Identity, limit int) ([]*Entry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     svc,
	}
}

// GetActivity handles GET /activity
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	entries, err := h.Service.Recent(r.Context(), caller, h.ParseLimit(r, DefaultLimit, MaxLimit))
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, entries, "")
}
