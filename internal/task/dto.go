package task

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

const maxDescriptionLength = 500

type CreateTaskDTO struct {
	TaskDescription       string    `json:"task_description"`
	TaskDetails           *string   `json:"task_details"`
	AssignedTo            *int64    `json:"assigned_to"`
	Status                string    `json:"status"`
	Priority              string    `json:"priority"`
	DueDate               date.Date `json:"due_date"`
	AssociatedMilestoneID *int64    `json:"associated_milestone_id"`
}

func (d CreateTaskDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("task_description", d.TaskDescription).Required().MaxLength(maxDescriptionLength)
	v.Field("status", d.Status).OneOf(Statuses...)
	v.Field("priority", d.Priority).OneOf(Priorities...)
	return v.Validate()
}

// ToTask applies defaults: todo, medium, and zero ids treated as unset.
func (d CreateTaskDTO) ToTask() *Task {
	t := &Task{
		Description:           strings.TrimSpace(d.TaskDescription),
		Details:               d.TaskDetails,
		AssignedTo:            positive(d.AssignedTo),
		Status:                Status(d.Status),
		Priority:              Priority(d.Priority),
		DueDate:               d.DueDate,
		AssociatedMilestoneID: positive(d.AssociatedMilestoneID),
	}
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	return t
}

type UpdateTaskDTO struct {
	TaskDescription       optional.Field[string]    `json:"task_description"`
	TaskDetails           optional.Field[string]    `json:"task_details"`
	AssignedTo            optional.Field[int64]     `json:"assigned_to"`
	Status                optional.Field[string]    `json:"status"`
	Priority              optional.Field[string]    `json:"priority"`
	DueDate               optional.Field[date.Date] `json:"due_date"`
	AssociatedMilestoneID optional.Field[int64]     `json:"associated_milestone_id"`
}

func (d UpdateTaskDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.TaskDescription.Set {
		v.Field("task_description", d.TaskDescription.Value).Required().MaxLength(maxDescriptionLength)
	}
	if d.Status.Set {
		v.Field("status", d.Status.Value).Required().OneOf(Statuses...)
	}
	if d.Priority.Set {
		v.Field("priority", d.Priority.Value).Required().OneOf(Priorities...)
	}
	return v.Validate()
}

func (d UpdateTaskDTO) ToPatch() Patch {
	p := Patch{
		Details:     d.TaskDetails,
		AssignedTo:  d.AssignedTo.NullIf(isZeroID),
		DueDate:     d.DueDate.NullIf(func(v date.Date) bool { return v.IsZero() }),
		MilestoneID: d.AssociatedMilestoneID.NullIf(isZeroID),
	}
	if d.TaskDescription.HasValue() {
		p.Description = optional.Of(strings.TrimSpace(d.TaskDescription.Value))
	}
	if d.Status.HasValue() {
		p.Status = optional.Of(Status(d.Status.Value))
	}
	if d.Priority.HasValue() {
		p.Priority = optional.Of(Priority(d.Priority.Value))
	}
	return p
}

func isZeroID(v int64) bool { return v <= 0 }

func positive(v *int64) *int64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}
