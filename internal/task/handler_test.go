package task

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/events"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		router   chi.Router
		repo     *memoryRepository
		manager  = &auth.Identity{UserID: 2, Email: "m@x.com", Role: auth.RoleManager}
		employee = &auth.Identity{UserID: 3, Email: "e@x.com", Role: auth.RoleEmployee}
	)

	BeforeEach(func() {
		repo = newMemoryRepository()
		h := NewHandler(NewService(repo, events.NewEventBus(discardLogger), discardLogger))
		h.Logger = discardLogger

		router = chi.NewRouter()
		router.Get("/tasks", h.GetTasks)
		router.Post("/tasks", h.CreateTask)
		router.Get("/tasks/{id}", h.GetTask)
		router.Put("/tasks/{id}", h.UpdateTask)
		router.Delete("/tasks/{id}", h.DeleteTask)
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

	It("creates a task with 201 and the stored row", func() {
		rec, body := do(manager, http.MethodPost, "/tasks",
			`{"task_description":"Draft plan","assigned_to":3,"priority":"high","due_date":"2024-05-01"}`)

		Expect(rec.Code).To(Equal(http.StatusCreated))
		Expect(body["success"]).To(BeTrue())
		Expect(body["message"]).To(Equal("Task created successfully"))
		data := body["data"].(map[string]interface{})
		Expect(data["task_description"]).To(Equal("Draft plan"))
		Expect(data["status"]).To(Equal("todo"))
		Expect(data["due_date"]).To(Equal("2024-05-01"))
		Expect(data["created_by"]).To(BeNumerically("==", 2))
	})

	It("rejects a missing description with 400", func() {
		rec, body := do(manager, http.MethodPost, "/tasks", `{"priority":"low"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(body["success"]).To(BeFalse())
		Expect(body["error"]).To(Equal("task_description is required"))
	})

	It("requires numeric ids as JSON numbers", func() {
		rec, body := do(manager, http.MethodPost, "/tasks", `{"task_description":"a","assigned_to":"3"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(body["error"]).To(Equal("Invalid request body"))
		Expect(repo.rows).To(BeEmpty())
	})

	It("returns 401 without an identity", func() {
		rec, body := do(nil, http.MethodGet, "/tasks", "")
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(body["error"]).To(Equal("Unauthorized"))
	})

	It("lists only the employee's tasks", func() {
		do(manager, http.MethodPost, "/tasks", `{"task_description":"a","assigned_to":3}`)
		do(manager, http.MethodPost, "/tasks", `{"task_description":"b","assigned_to":4}`)

		rec, body := do(employee, http.MethodGet, "/tasks?limit=500", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["data"]).To(HaveLen(1))
		Expect(repo.last.Limit).To(Equal(100))
	})

	It("rejects a non-numeric id with 400", func() {
		rec, _ := do(manager, http.MethodGet, "/tasks/abc", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 403 when an employee reads someone else's task and 404 when missing", func() {
		do(manager, http.MethodPost, "/tasks", `{"task_description":"b","assigned_to":4}`)

		rec, _ := do(employee, http.MethodGet, "/tasks/1", "")
		Expect(rec.Code).To(Equal(http.StatusForbidden))

		rec, _ = do(employee, http.MethodGet, "/tasks/99", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("updates status and stamps completion", func() {
		do(manager, http.MethodPost, "/tasks", `{"task_description":"a","assigned_to":3}`)

		rec, body := do(employee, http.MethodPut, "/tasks/1", `{"status":"completed"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		data := body["data"].(map[string]interface{})
		Expect(data["status"]).To(Equal("completed"))
		Expect(data["completion_date"]).NotTo(BeNil())
		Expect(data["task_description"]).To(Equal("a"))
	})

	It("ignores a client supplied completion_date", func() {
		do(manager, http.MethodPost, "/tasks", `{"task_description":"a","assigned_to":3}`)
		_, body := do(manager, http.MethodPut, "/tasks/1", `{"status":"completed"}`)
		stamp := body["data"].(map[string]interface{})["completion_date"]
		Expect(stamp).NotTo(BeNil())

		rec, body := do(manager, http.MethodPut, "/tasks/1", `{"completion_date":null,"task_details":"notes"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		data := body["data"].(map[string]interface{})
		Expect(data["completion_date"]).To(Equal(stamp))
		Expect(data["task_details"]).To(Equal("notes"))
	})

	It("only lets managers delete", func() {
		do(manager, http.MethodPost, "/tasks", `{"task_description":"a","assigned_to":3}`)

		rec, body := do(employee, http.MethodDelete, "/tasks/1", "")
		Expect(rec.Code).To(Equal(http.StatusForbidden))
		Expect(body["error"]).To(Equal("Forbidden: insufficient permissions"))

		rec, body = do(manager, http.MethodDelete, "/tasks/1", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["message"]).To(Equal("Task deleted successfully"))

		rec, _ = do(manager, http.MethodDelete, "/tasks/1", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
