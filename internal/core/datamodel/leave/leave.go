package leave

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
)

// Leave is a leaves row joined with the employee's name.
type Leave struct {
	LeaveID        int64     `db:"leave_id"`
	EmployeeID     *int64    `db:"employee_id"`
	LeaveType      string    `db:"leave_type"`
	StartDate      date.Date `db:"start_date"`
	EndDate        date.Date `db:"end_date"`
	Reason         *string   `db:"reason"`
	ApprovalStatus string    `db:"approval_status"`
	ApprovedBy     *int64    `db:"approved_by"`
	ApprovalNotes  *string   `db:"approval_notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
	EmployeeName   *string   `db:"employee_name"`
}
