package leave

import (
	"time"

	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	leaveDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/leave"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Leave struct {
	ID             int64     `json:"leave_id"`
	EmployeeID     *int64    `json:"employee_id"`
	LeaveType      string    `json:"leave_type"`
	StartDate      date.Date `json:"start_date"`
	EndDate        date.Date `json:"end_date"`
	Reason         *string   `json:"reason"`
	ApprovalStatus Status    `json:"approval_status"`
	ApprovedBy     *int64    `json:"approved_by"`
	ApprovalNotes  *string   `json:"approval_notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	EmployeeName   *string   `json:"employee_name"`
}

// Days is the inclusive length of the leave in calendar days.
func (l *Leave) Days() int {
	if l.StartDate.IsZero() || l.EndDate.IsZero() {
		return 0
	}
	return int(l.EndDate.Sub(l.StartDate.Time).Hours()/24) + 1
}

type Filter struct {
	OwnerID *int64
	Status  string
	Limit   int
}

// Resolution is the terminal decision recorded on a pending leave.
type Resolution struct {
	Status     Status
	ApproverID int64
	Notes      *string
}

func ToDataModel(l *Leave) *leaveDatamodel.Leave {
	return &leaveDatamodel.Leave{
		LeaveID:        l.ID,
		EmployeeID:     l.EmployeeID,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		Reason:         l.Reason,
		ApprovalStatus: string(l.ApprovalStatus),
		ApprovedBy:     l.ApprovedBy,
		ApprovalNotes:  l.ApprovalNotes,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromDataModel(l *leaveDatamodel.Leave) *Leave {
	return &Leave{
		ID:             l.LeaveID,
		EmployeeID:     l.EmployeeID,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate,
		EndDate:        l.EndDate,
		Reason:         l.Reason,
		ApprovalStatus: Status(l.ApprovalStatus),
		ApprovedBy:     l.ApprovedBy,
		ApprovalNotes:  l.ApprovalNotes,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
		EmployeeName:   l.EmployeeName,
	}
}
