package milestone

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *auth.Identity) ([]*Milestone, error)
	Get(ctx context.Context, caller *auth.Identity, id int64) (*Milestone, error)
	Create(ctx context.Context, caller *auth.Identity, dto CreateMilestoneDTO) (*Milestone, error)
	Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateMilestoneDTO) (*Milestone, error)
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

func (h *Handler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	milestones, err := h.Service.List(r.Context(), caller)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, milestones, "")
}

func (h *Handler) GetMilestone(w http.ResponseWriter, r *http.Request) {
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
	m, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, m, "")
}

func (h *Handler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	var dto CreateMilestoneDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	m, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusCreated, m, "Milestone created successfully")
}

func (h *Handler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
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
	var dto UpdateMilestoneDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	m, err := h.Service.Update(r.Context(), caller, id, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, m, "Milestone updated successfully")
}

func (h *Handler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
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
	h.WriteSuccess(w, http.StatusOK, nil, "Milestone deleted successfully")
}
