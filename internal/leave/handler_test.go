package leave

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		router   chi.Router
		manager  = &auth.Identity{UserID: 2, Role: auth.RoleManager}
		employee = &auth.Identity{UserID: 3, Role: auth.RoleEmployee}
	)

	BeforeEach(func() {
		h := NewHandler(NewService(newMemoryRepository(), nil, discardLogger))
		h.Logger = discardLogger
		rbac := auth.NewRBACAuthorization(auth.NewPolicy(auth.NewPermissionChecker()), discardLogger)

		router = chi.NewRouter()
		router.Get("/leaves", h.GetLeaves)
		router.Post("/leaves", h.CreateLeave)
		router.Get("/leaves/{id}", h.GetLeave)
		router.With(rbac.RequireApproveLeave()).Put("/leaves/{id}", h.ApproveLeave)
		router.Delete("/leaves/{id}", h.DeleteLeave)
	})

	do := func(caller *auth.Identity, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		if caller != nil {
			req = req.WithContext(auth.ContextWithIdentity(req.Context(), caller))
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var envelope map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &envelope)).To(Succeed())
		return rec, envelope
	}

	const leaveBody = `{"leave_type":"Annual Leave","start_date":"2024-06-10","end_date":"2024-06-12","reason":"trip"}`

	It("creates a pending leave", func() {
		rec, body := do(employee, http.MethodPost, "/leaves", leaveBody)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(body["message"]).To(Equal("Leave request created successfully"))
		data := body["data"].(map[string]interface{})
		Expect(data["approval_status"]).To(Equal("pending"))
		Expect(data["start_date"]).To(Equal("2024-06-10"))
		Expect(data["employee_id"]).To(BeNumerically("==", 3))
	})

	It("rejects inverted date ranges with 400", func() {
		rec, body := do(employee, http.MethodPost, "/leaves",
			`{"leave_type":"Annual Leave","start_date":"2024-06-10","end_date":"2024-06-01"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(body["code"]).To(Equal("VALIDATION_FAILED"))
		Expect(body["error"]).To(Equal("end_date cannot be before start_date"))
	})

	It("rejects malformed dates as an invalid body", func() {
		rec, body := do(employee, http.MethodPost, "/leaves", `{"leave_type":"x","start_date":"June 10","end_date":"2024-06-01"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(body["code"]).To(Equal("INVALID_BODY"))
	})

	It("forbids employees from approving", func() {
		do(employee, http.MethodPost, "/leaves", leaveBody)

		rec, body := do(employee, http.MethodPut, "/leaves/1", `{"approval_status":"approved"}`)
		Expect(rec.Code).To(Equal(http.StatusForbidden))
		Expect(body["success"]).To(BeFalse())
	})

	It("approves once and rejects a second resolution", func() {
		do(employee, http.MethodPost, "/leaves", leaveBody)

		rec, body := do(manager, http.MethodPut, "/leaves/1", `{"approval_status":"approved","approval_notes":"ok"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["message"]).To(Equal("Leave status updated successfully"))
		Expect(body["data"].(map[string]interface{})["approved_by"]).To(BeNumerically("==", 2))

		rec, body = do(manager, http.MethodPut, "/leaves/1", `{"approval_status":"rejected"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(body["code"]).To(Equal("INVALID_LEAVE_STATUS"))
	})

	It("returns 404 when deleting twice", func() {
		do(employee, http.MethodPost, "/leaves", leaveBody)

		rec, _ := do(employee, http.MethodDelete, "/leaves/1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec, _ = do(employee, http.MethodDelete, "/leaves/1", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
