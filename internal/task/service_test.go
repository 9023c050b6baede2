package task

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	"github.com/frahmantamala/productivity-management/internal/core/events"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		repo      *memoryRepository
		bus       *events.EventBus
		service   *Service
		ctx       context.Context
		admin     = &auth.Identity{UserID: 1, Email: "admin@x.com", Role: auth.RoleAdmin}
		manager   = &auth.Identity{UserID: 2, Email: "manager@x.com", Role: auth.RoleManager}
		employee  = &auth.Identity{UserID: 3, Email: "e3@x.com", Role: auth.RoleEmployee}
		colleague = &auth.Identity{UserID: 4, Email: "e4@x.com", Role: auth.RoleEmployee}
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMemoryRepository()
		bus = events.NewEventBus(discardLogger)
		service = NewService(repo, bus, discardLogger)
	})

	create := func(caller *auth.Identity, dto CreateTaskDTO) *Task {
		t, err := service.Create(ctx, caller, dto)
		Expect(err).NotTo(HaveOccurred())
		return t
	}

	Describe("Create", func() {
		It("applies defaults and records the creator", func() {
			t := create(manager, CreateTaskDTO{TaskDescription: "Write report", AssignedTo: int64Ptr(3)})

			Expect(t.Status).To(Equal(StatusTodo))
			Expect(t.Priority).To(Equal(PriorityMedium))
			Expect(*t.CreatedBy).To(Equal(int64(2)))
			Expect(*t.AssignedTo).To(Equal(int64(3)))
		})

		It("requires a description", func() {
			_, err := service.Create(ctx, manager, CreateTaskDTO{TaskDescription: "  "})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(Equal("task_description is required"))
		})

		It("rejects unknown status values", func() {
			_, err := service.Create(ctx, manager, CreateTaskDTO{TaskDescription: "x", Status: "done"})
			Expect(err).To(HaveOccurred())
			Expect(err.(*internal.AppError).StatusCode).To(Equal(400))
		})

		It("assigns an employee's unassigned task to the employee", func() {
			t := create(employee, CreateTaskDTO{TaskDescription: "Mine"})
			Expect(*t.AssignedTo).To(Equal(employee.UserID))
		})

		It("forbids employees assigning tasks to someone else", func() {
			_, err := service.Create(ctx, employee, CreateTaskDTO{TaskDescription: "Yours", AssignedTo: int64Ptr(4)})
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})

		It("treats a zero assignee as unassigned", func() {
			t := create(manager, CreateTaskDTO{TaskDescription: "Pool", AssignedTo: int64Ptr(0)})
			Expect(t.AssignedTo).To(BeNil())
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			create(manager, CreateTaskDTO{TaskDescription: "for 3", AssignedTo: int64Ptr(3), Priority: "high"})
			create(manager, CreateTaskDTO{TaskDescription: "for 4", AssignedTo: int64Ptr(4)})
			create(manager, CreateTaskDTO{TaskDescription: "unassigned"})
		})

		It("shows employees only their own tasks", func() {
			tasks, err := service.List(ctx, employee, Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(1))
			for _, t := range tasks {
				Expect(*t.AssignedTo).To(Equal(employee.UserID))
			}
		})

		It("shows managers everything", func() {
			tasks, err := service.List(ctx, manager, Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(3))
			Expect(repo.last.OwnerID).To(BeNil())
		})

		It("treats all as no filter", func() {
			_, err := service.List(ctx, admin, Filter{Status: "all", Priority: "all"})
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.last.Status).To(BeEmpty())
			Expect(repo.last.Priority).To(BeEmpty())

			tasks, err := service.List(ctx, admin, Filter{Priority: "high"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(1))
		})
	})

	Describe("Get", func() {
		It("returns 404 before checking ownership", func() {
			_, err := service.Get(ctx, employee, 99)
			Expect(err).To(MatchError(internal.ErrTaskNotFound))
		})

		It("forbids employees reading another employee's task", func() {
			t := create(manager, CreateTaskDTO{TaskDescription: "x", AssignedTo: int64Ptr(4)})
			_, err := service.Get(ctx, employee, t.ID)
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))

			got, err := service.Get(ctx, colleague, t.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(t.ID))
		})
	})

	Describe("Update", func() {
		var existing *Task

		BeforeEach(func() {
			existing = create(manager, CreateTaskDTO{TaskDescription: "Ship it", AssignedTo: int64Ptr(3)})
		})

		It("stamps completion when the task is completed", func() {
			var completed []events.Event
			bus.Subscribe(events.EventTypeTaskCompleted, func(_ context.Context, ev events.Event) error {
				completed = append(completed, ev)
				return nil
			})

			t, err := service.Update(ctx, employee, existing.ID, UpdateTaskDTO{Status: optional.Of("completed")})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Status).To(Equal(StatusCompleted))
			Expect(t.CompletionDate).NotTo(BeNil())
			Expect(t.CompletionDate.Before(t.CreationDate)).To(BeFalse())
			Expect(completed).To(HaveLen(1))
		})

		It("keeps the stamp when leaving completed", func() {
			done, err := service.Update(ctx, manager, existing.ID, UpdateTaskDTO{Status: optional.Of("completed")})
			Expect(err).NotTo(HaveOccurred())

			reopened, err := service.Update(ctx, manager, existing.ID, UpdateTaskDTO{Status: optional.Of("in_progress")})
			Expect(err).NotTo(HaveOccurred())
			Expect(reopened.CompletionDate).To(Equal(done.CompletionDate))
		})

		It("keeps absent fields and clears explicit nulls", func() {
			t, err := service.Update(ctx, manager, existing.ID, UpdateTaskDTO{
				Priority:   optional.Of("urgent"),
				AssignedTo: optional.Null[int64](),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Description).To(Equal("Ship it"))
			Expect(t.Priority).To(Equal(PriorityUrgent))
			Expect(t.AssignedTo).To(BeNil())
		})

		It("forbids employees editing tasks assigned to others", func() {
			_, err := service.Update(ctx, colleague, existing.ID, UpdateTaskDTO{Priority: optional.Of("low")})
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})

		It("forbids employees reassigning their own task", func() {
			_, err := service.Update(ctx, employee, existing.ID, UpdateTaskDTO{AssignedTo: optional.Of(int64(4))})
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))

			_, err = service.Update(ctx, employee, existing.ID, UpdateTaskDTO{AssignedTo: optional.Null[int64]()})
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))
		})

		It("returns 404 for missing tasks", func() {
			_, err := service.Update(ctx, manager, 99, UpdateTaskDTO{Priority: optional.Of("low")})
			Expect(err).To(MatchError(internal.ErrTaskNotFound))
		})
	})

	Describe("Delete", func() {
		It("requires the manage tasks capability before anything else", func() {
			t := create(employee, CreateTaskDTO{TaskDescription: "mine"})
			Expect(service.Delete(ctx, employee, t.ID)).To(MatchError(internal.ErrForbidden))
			Expect(service.Delete(ctx, employee, 99)).To(MatchError(internal.ErrForbidden))
		})

		It("deletes once and then reports not found", func() {
			t := create(manager, CreateTaskDTO{TaskDescription: "x"})
			Expect(service.Delete(ctx, manager, t.ID)).To(Succeed())
			Expect(service.Delete(ctx, manager, t.ID)).To(MatchError(internal.ErrTaskNotFound))
		})
	})
})
