package task

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/optional"
	taskDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/task"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
)

var Statuses = []string{string(StatusTodo), string(StatusInProgress), string(StatusCompleted), string(StatusBlocked)}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityUrgent)}

type Task struct {
	ID                    int64      `json:"task_id"`
	Description           string     `json:"task_description"`
	Details               *string    `json:"task_details"`
	AssignedTo            *int64     `json:"assigned_to"`
	CreatedBy             *int64     `json:"created_by"`
	Status                Status     `json:"status"`
	Priority              Priority   `json:"priority"`
	DueDate               date.Date  `json:"due_date"`
	AssociatedMilestoneID *int64     `json:"associated_milestone_id"`
	CreationDate          time.Time  `json:"creation_date"`
	LastUpdatedDate       time.Time  `json:"last_updated_date"`
	CompletionDate        *time.Time `json:"completion_date"`
	AssignedToName        *string    `json:"assigned_to_name"`
	MilestoneName         *string    `json:"milestone_name"`
}

// Filter narrows List. OwnerID is set for callers restricted to their own tasks.
type Filter struct {
	OwnerID  *int64
	Status   string
	Priority string
	Upcoming bool
	Limit    int
}

// Patch carries the fields present in an update request. A Null field clears
// the column.
type Patch struct {
	Description optional.Field[string]
	Details     optional.Field[string]
	AssignedTo  optional.Field[int64]
	Status      optional.Field[Status]
	Priority    optional.Field[Priority]
	DueDate     optional.Field[date.Date]
	MilestoneID optional.Field[int64]
}

func (p Patch) Empty() bool {
	return !p.Description.Set && !p.Details.Set && !p.AssignedTo.Set && !p.Status.Set &&
		!p.Priority.Set && !p.DueDate.Set && !p.MilestoneID.Set
}

func ToDataModel(t *Task) *taskDatamodel.Task {
	return &taskDatamodel.Task{
		TaskID:                t.ID,
		TaskDescription:       t.Description,
		TaskDetails:           t.Details,
		AssignedTo:            t.AssignedTo,
		CreatedBy:             t.CreatedBy,
		Status:                string(t.Status),
		Priority:              string(t.Priority),
		DueDate:               t.DueDate,
		AssociatedMilestoneID: t.AssociatedMilestoneID,
		CreationDate:          t.CreationDate,
		LastUpdatedDate:       t.LastUpdatedDate,
		CompletionDate:        t.CompletionDate,
	}
}

func FromDataModel(t *taskDatamodel.Task) *Task {
	return &Task{
		ID:                    t.TaskID,
		Description:           t.TaskDescription,
		Details:               t.TaskDetails,
		AssignedTo:            t.AssignedTo,
		CreatedBy:             t.CreatedBy,
		Status:                Status(t.Status),
		Priority:              Priority(t.Priority),
		DueDate:               t.DueDate,
		AssociatedMilestoneID: t.AssociatedMilestoneID,
		CreationDate:          t.CreationDate,
		LastUpdatedDate:       t.LastUpdatedDate,
		CompletionDate:        t.CompletionDate,
		AssignedToName:        t.AssignedToName,
		MilestoneName:         t.MilestoneName,
	}
}
