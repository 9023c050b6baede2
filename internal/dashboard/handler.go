package dashboard

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	Metrics(ctx context.Context, caller *auth.Identity) (*Metrics, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
	}
}

// GetMetrics handles GET /dashboard/metrics
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	m, err := h.Service.Metrics(r.Context(), caller)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, m, "")
}
