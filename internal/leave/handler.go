package leave

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *auth.Identity, f Filter) ([]*Leave, error)
	Get(ctx context.Context, caller *auth.Identity, id int64) (*Leave, error)
	Create(ctx context.Context, caller *auth.Identity, dto CreateLeaveDTO) (*Leave, error)
	Approve(ctx context.Context, caller *auth.Identity, id int64, dto ApprovalDTO) (*Leave, error)
	Delete(ctx context.Context, caller *auth.Identity, id int64) error
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

func (h *Handler) GetLeaves(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	leaves, err := h.Service.List(r.Context(), caller, Filter{
		Status: r.URL.Query().Get("status"),
		Limit:  h.ParseLimit(r, transport.MaxLimit, transport.MaxLimit),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, leaves, "")
}

func (h *Handler) GetLeave(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	l, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, l, "")
}

func (h *Handler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	var dto CreateLeaveDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}

	l, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusCreated, l, "Leave request created successfully")
}

// ApproveLeave handles PUT /leaves/{id}. The route is also guarded by RequireApproveLeave.
func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	var dto ApprovalDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}

	l, err := h.Service.Approve(r.Context(), caller, id, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, l, "Leave status updated successfully")
}

func (h *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	id, err := h.ParseIDParam(r, "id")
	if err != nil {
		h.HandleError(w, r, err)
		return
	}

	if err := h.Service.Delete(r.Context(), caller, id); err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, nil, "Leave deleted successfully")
}
