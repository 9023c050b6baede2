package meeting

import (
	"context"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/transport"
	"github.com/frahmantamala/productivity-management/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context, caller *auth.Identity, page Page) ([]*Recording, error)
	Get(ctx context.Context, caller *auth.Identity, id int64) (*Recording, error)
	Create(ctx context.Context, caller *auth.Identity, dto CreateRecordingDTO) (*Recording, error)
	Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateRecordingDTO) (*Recording, error)
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

// GetRecordings handles GET /meeting-recordings?limit=&offset=
func (h *Handler) GetRecordings(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	recs, err := h.Service.List(r.Context(), caller, Page{
		Limit:  h.ParseLimit(r, DefaultLimit, MaxLimit),
		Offset: h.ParseOffset(r),
	})
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, recs, "")
}

func (h *Handler) GetRecording(w http.ResponseWriter, r *http.Request) {
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
	rec, err := h.Service.Get(r.Context(), caller, id)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, rec, "")
}

func (h *Handler) CreateRecording(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.Caller(r.Context())
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	var dto CreateRecordingDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	rec, err := h.Service.Create(r.Context(), caller, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusCreated, rec, "Meeting recording created successfully")
}

func (h *Handler) UpdateRecording(w http.ResponseWriter, r *http.Request) {
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
	var dto UpdateRecordingDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleError(w, r, err)
		return
	}
	rec, err := h.Service.Update(r.Context(), caller, id, dto)
	if err != nil {
		h.HandleError(w, r, err)
		return
	}
	h.WriteSuccess(w, http.StatusOK, rec, "Meeting recording updated successfully")
}

func (h *Handler) DeleteRecording(w http.ResponseWriter, r *http.Request) {
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
	h.WriteSuccess(w, http.StatusOK, nil, "Meeting recording deleted successfully")
}
