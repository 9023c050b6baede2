package milestone

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	admin    = &auth.Identity{UserID: 1, Role: auth.RoleAdmin}
	manager  = &auth.Identity{UserID: 2, Role: auth.RoleManager}
	employee = &auth.Identity{UserID: 3, Role: auth.RoleEmployee}
)

var _ = Describe("Service", func() {
	var (
		service *Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = NewService(newMemoryRepository(), discardLogger)
	})

	It("creates with a default status and orders by target date", func() {
		late, err := service.Create(ctx, manager, CreateMilestoneDTO{MilestoneName: "GA", TargetDate: date.MustParse("2024-12-01")})
		Expect(err).NotTo(HaveOccurred())
		Expect(late.Status).To(Equal(StatusNotStarted))
		Expect(*late.CreatedBy).To(Equal(manager.UserID))

		_, err = service.Create(ctx, admin, CreateMilestoneDTO{MilestoneName: "Beta", TargetDate: date.MustParse("2024-09-01"), Status: "in_progress"})
		Expect(err).NotTo(HaveOccurred())

		list, err := service.List(ctx, employee)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
		Expect(list[0].Name).To(Equal("Beta"))
	})

	It("requires a name and a target date", func() {
		_, err := service.Create(ctx, manager, CreateMilestoneDTO{})
		appErr, ok := internal.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.GetDetailedMessage()).To(Equal("milestone_name is required; target_date is required"))
	})

	It("keeps writes away from employees", func() {
		_, err := service.Create(ctx, employee, CreateMilestoneDTO{MilestoneName: "x", TargetDate: date.MustParse("2024-09-01")})
		Expect(err).To(MatchError(internal.ErrForbidden))

		m, err := service.Create(ctx, manager, CreateMilestoneDTO{MilestoneName: "x", TargetDate: date.MustParse("2024-09-01")})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Update(ctx, employee, m.ID, UpdateMilestoneDTO{Status: optional.Of("delayed")})
		Expect(err).To(MatchError(internal.ErrForbidden))
		Expect(service.Delete(ctx, employee, m.ID)).To(MatchError(internal.ErrForbidden))
	})

	It("updates only present fields and rejects clearing the target date", func() {
		m, err := service.Create(ctx, manager, CreateMilestoneDTO{MilestoneName: "Beta", TargetDate: date.MustParse("2024-09-01")})
		Expect(err).NotTo(HaveOccurred())

		updated, err := service.Update(ctx, manager, m.ID, UpdateMilestoneDTO{Status: optional.Of("delayed")})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(StatusDelayed))
		Expect(updated.Name).To(Equal("Beta"))

		_, err = service.Update(ctx, manager, m.ID, UpdateMilestoneDTO{TargetDate: optional.Null[date.Date]()})
		Expect(err).To(HaveOccurred())

		unchanged, err := service.Update(ctx, manager, m.ID, UpdateMilestoneDTO{})
		Expect(err).NotTo(HaveOccurred())
		Expect(unchanged.Status).To(Equal(StatusDelayed))
	})

	It("reports not found on a second delete", func() {
		m, err := service.Create(ctx, manager, CreateMilestoneDTO{MilestoneName: "x", TargetDate: date.MustParse("2024-09-01")})
		Expect(err).NotTo(HaveOccurred())
		Expect(service.Delete(ctx, admin, m.ID)).To(Succeed())
		Expect(service.Delete(ctx, admin, m.ID)).To(MatchError(internal.ErrMilestoneNotFound))
	})
})

var _ = Describe("Handler", func() {
	var router chi.Router

	BeforeEach(func() {
		h := NewHandler(NewService(newMemoryRepository(), discardLogger))
		h.Logger = discardLogger
		router = chi.NewRouter()
		router.Get("/milestones", h.GetMilestones)
		router.Post("/milestones", h.CreateMilestone)
		router.Get("/milestones/{id}", h.GetMilestone)
		router.Put("/milestones/{id}", h.UpdateMilestone)
		router.Delete("/milestones/{id}", h.DeleteMilestone)
	})

	do := func(caller *auth.Identity, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req = req.WithContext(auth.ContextWithIdentity(req.Context(), caller))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		var envelope map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(Succeed())
		return rec, envelope
	}

	It("runs the milestone lifecycle", func() {
		rec, body := do(manager, http.MethodPost, "/milestones", `{"milestone_name":"Beta","target_date":"2024-09-01"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(body["message"]).To(Equal("Milestone created successfully"))

		rec, body = do(employee, http.MethodGet, "/milestones/1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["data"].(map[string]interface{})["target_date"]).To(Equal("2024-09-01"))

		rec, _ = do(employee, http.MethodPut, "/milestones/1", `{"status":"completed"}`)
		Expect(rec.Code).To(Equal(http.StatusForbidden))

		rec, body = do(manager, http.MethodPut, "/milestones/1", `{"status":"completed"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["data"].(map[string]interface{})["status"]).To(Equal("completed"))

		rec, _ = do(manager, http.MethodDelete, "/milestones/1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec, body = do(manager, http.MethodGet, "/milestones/1", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(body["error"]).To(Equal("Milestone not found"))
	})
})
