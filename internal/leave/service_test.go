package leave

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
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
		manager   = &auth.Identity{UserID: 2, Role: auth.RoleManager}
		employee  = &auth.Identity{UserID: 3, Role: auth.RoleEmployee}
		colleague = &auth.Identity{UserID: 4, Role: auth.RoleEmployee}
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newMemoryRepository()
		bus = events.NewEventBus(discardLogger)
		service = NewService(repo, bus, discardLogger)
	})

	request := func(caller *auth.Identity) *Leave {
		l, err := service.Create(ctx, caller, CreateLeaveDTO{
			LeaveType: "Annual Leave",
			StartDate: date.MustParse("2024-06-10"),
			EndDate:   date.MustParse("2024-06-12"),
		})
		Expect(err).NotTo(HaveOccurred())
		return l
	}

	Describe("Create", func() {
		It("files a pending leave for the caller", func() {
			l := request(employee)
			Expect(l.ApprovalStatus).To(Equal(StatusPending))
			Expect(*l.EmployeeID).To(Equal(employee.UserID))
			Expect(l.Days()).To(Equal(3))
		})

		It("accepts a single-day leave", func() {
			_, err := service.Create(ctx, employee, CreateLeaveDTO{
				LeaveType: "Sick Leave",
				StartDate: date.MustParse("2024-06-10"),
				EndDate:   date.MustParse("2024-06-10"),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an end date before the start date", func() {
			_, err := service.Create(ctx, employee, CreateLeaveDTO{
				LeaveType: "Annual Leave",
				StartDate: date.MustParse("2024-06-10"),
				EndDate:   date.MustParse("2024-06-09"),
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
			Expect(appErr.GetDetailedMessage()).To(Equal("end_date cannot be before start_date"))
			Expect(repo.rows).To(BeEmpty())
		})

		It("requires type and both dates", func() {
			_, err := service.Create(ctx, employee, CreateLeaveDTO{})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.GetDetailedMessage()).To(Equal("leave_type is required; start_date is required; end_date is required"))
		})

		It("accepts free-form leave types", func() {
			_, err := service.Create(ctx, employee, CreateLeaveDTO{
				LeaveType: "Study Leave",
				StartDate: date.MustParse("2024-06-10"),
				EndDate:   date.MustParse("2024-06-11"),
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("List and Get", func() {
		It("scopes employees to their own leaves", func() {
			request(employee)
			request(colleague)

			mine, err := service.List(ctx, employee, Filter{Status: "all"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(repo.last.Status).To(BeEmpty())

			all, err := service.List(ctx, manager, Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})

		It("forbids reading another employee's leave", func() {
			l := request(colleague)
			_, err := service.Get(ctx, employee, l.ID)
			Expect(err).To(MatchError(internal.ErrUnauthorizedAccess))

			_, err = service.Get(ctx, manager, l.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Approve", func() {
		It("resolves a pending leave and publishes the decision", func() {
			var published []events.Event
			bus.Subscribe(events.EventTypeLeaveApproved, func(_ context.Context, ev events.Event) error {
				published = append(published, ev)
				return nil
			})
			l := request(employee)
			notes := "enjoy"

			resolved, err := service.Approve(ctx, manager, l.ID, ApprovalDTO{ApprovalStatus: "approved", ApprovalNotes: &notes})
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.ApprovalStatus).To(Equal(StatusApproved))
			Expect(*resolved.ApprovedBy).To(Equal(manager.UserID))
			Expect(*resolved.ApprovalNotes).To(Equal("enjoy"))
			Expect(published).To(HaveLen(1))
			Expect(published[0].(*events.LeaveResolvedEvent).EmployeeID).To(Equal(employee.UserID))
		})

		It("refuses to resolve a leave twice", func() {
			l := request(employee)
			_, err := service.Approve(ctx, manager, l.ID, ApprovalDTO{ApprovalStatus: "rejected"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Approve(ctx, manager, l.ID, ApprovalDTO{ApprovalStatus: "approved"})
			Expect(err).To(MatchError(internal.ErrInvalidLeaveStatus))
		})

		It("forbids employees", func() {
			l := request(employee)
			_, err := service.Approve(ctx, employee, l.ID, ApprovalDTO{ApprovalStatus: "approved"})
			Expect(err).To(MatchError(internal.ErrForbidden))
		})

		It("only accepts approved or rejected", func() {
			l := request(employee)
			_, err := service.Approve(ctx, manager, l.ID, ApprovalDTO{ApprovalStatus: "pending"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("returns 404 for a missing leave", func() {
			_, err := service.Approve(ctx, manager, 42, ApprovalDTO{ApprovalStatus: "approved"})
			Expect(err).To(MatchError(internal.ErrLeaveNotFound))
		})
	})

	Describe("Delete", func() {
		It("lets the owner and managers delete but not colleagues", func() {
			first := request(employee)
			second := request(employee)

			Expect(service.Delete(ctx, colleague, first.ID)).To(MatchError(internal.ErrUnauthorizedAccess))
			Expect(service.Delete(ctx, employee, first.ID)).To(Succeed())
			Expect(service.Delete(ctx, manager, second.ID)).To(Succeed())
			Expect(service.Delete(ctx, manager, second.ID)).To(MatchError(internal.ErrLeaveNotFound))
		})
	})
})
