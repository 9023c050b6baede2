package leave

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

type CreateLeaveDTO struct {
	LeaveType string    `json:"leave_type"`
	StartDate date.Date `json:"start_date"`
	EndDate   date.Date `json:"end_date"`
	Reason    *string   `json:"reason"`
}

func (d CreateLeaveDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("leave_type", d.LeaveType).Required().MaxLength(50)
	v.Field("start_date", d.StartDate).Required()
	v.Field("end_date", d.EndDate).Required().DateNotBefore(d.StartDate, "start_date")
	return v.Validate()
}

func (d CreateLeaveDTO) ToLeave(employeeID int64) *Leave {
	return &Leave{
		EmployeeID:     &employeeID,
		LeaveType:      strings.TrimSpace(d.LeaveType),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Reason:         d.Reason,
		ApprovalStatus: StatusPending,
	}
}

// ApprovalDTO is the body of PUT /leaves/{id}.
type ApprovalDTO struct {
	ApprovalStatus string  `json:"approval_status"`
	ApprovalNotes  *string `json:"approval_notes"`
}

func (d ApprovalDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("approval_status", d.ApprovalStatus).Required().OneOf(string(StatusApproved), string(StatusRejected))
	return v.Validate()
}
