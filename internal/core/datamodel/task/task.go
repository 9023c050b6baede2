package task

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
)

// Task is a tasks row joined with the assignee and milestone names.
type Task struct {
	TaskID                int64      `db:"task_id"`
	TaskDescription       string     `db:"task_description"`
	TaskDetails           *string    `db:"task_details"`
	AssignedTo            *int64     `db:"assigned_to"`
	CreatedBy             *int64     `db:"created_by"`
	Status                string     `db:"status"`
	Priority              string     `db:"priority"`
	DueDate               date.Date  `db:"due_date"`
	AssociatedMilestoneID *int64     `db:"associated_milestone_id"`
	CreationDate          time.Time  `db:"creation_date"`
	LastUpdatedDate       time.Time  `db:"last_updated_date"`
	CompletionDate        *time.Time `db:"completion_date"`
	AssignedToName        *string    `db:"assigned_to_name"`
	MilestoneName         *string    `db:"milestone_name"`
}
