package requirement

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *auth.Identity, f Filter) ([]*Requirement, error)
	Get(ctx context.Context, caller *auth.Identity, id int64) (*Requirement, error)
	Create(ctx context.Context, caller *auth.Identity, dto CreateRequirementDTO) (*Requirement, error)
	Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateRequirementDTO) (*Requirement, error)
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

func (h *Handler) GetRequirements(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	q := r.URL.Query()
	reqs, err := h.Service.List(r.Context(), caller, Filter{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Limit:    h.ParseLimit(r, DefaultLimit, MaxLimit),
		Offset:   h.ParseOffset(r),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, reqs, "")
}

func (h *Handler) GetRequirement(w http.ResponseWriter, r *http.Request) {
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
	req, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, req, "")
}

func (h *Handler) CreateRequirement(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	var dto CreateRequirementDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	req, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusCreated, req, "Product requirement created successfully")
}

func (h *Handler) UpdateRequirement(w http.ResponseWriter, r *http.Request) {
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
	var dto UpdateRequirementDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	req, err := h.Service.Update(r.Context(), caller, id, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, req, "Product requirement updated successfully")
}

func (h *Handler) DeleteRequirement(w http.ResponseWriter, r *http.Request) {
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
	h.WriteSuccess(w, http.StatusOK, nil, "Product requirement deleted successfully")
}
