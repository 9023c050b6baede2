package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeLeaveApproved  = "leave.approved"
	EventTypeLeaveRejected  = "leave.rejected"
	EventTypeTaskCompleted  = "task.completed"
	EventTypeUserRegistered = "user.registered"
	EventTypeUserDeleted    = "user.deleted"
)

// AllTypes lists every event the service emits.
var AllTypes = []string{
	EventTypeLeaveApproved,
	EventTypeLeaveRejected,
	EventTypeTaskCompleted,
	EventTypeUserRegistered,
	EventTypeUserDeleted,
}

// Auditable events describe who did what to which row.
type Auditable interface {
	Event
	ActorID() int64
	Entity() string
	EntityID() int64
	Summary() string
}

func newBase(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

type LeaveResolvedEvent struct {
	BaseEvent
	LeaveID    int64  `json:"leave_id"`
	EmployeeID int64  `json:"employee_id"`
	ApproverID int64  `json:"approver_id"`
	Status     string `json:"status"`
}

// NewLeaveResolvedEvent picks leave.approved or leave.rejected from status.
func NewLeaveResolvedEvent(leaveID, employeeID, approverID int64, status string) *LeaveResolvedEvent {
	eventType := EventTypeLeaveRejected
	if status == "approved" {
		eventType = EventTypeLeaveApproved
	}
	return &LeaveResolvedEvent{
		BaseEvent: newBase(eventType, map[string]interface{}{
			"leave_id":    leaveID,
			"employee_id": employeeID,
			"approver_id": approverID,
			"status":      status,
		}),
		LeaveID:    leaveID,
		EmployeeID: employeeID,
		ApproverID: approverID,
		Status:     status,
	}
}

func (e *LeaveResolvedEvent) ActorID() int64  { return e.ApproverID }
func (e *LeaveResolvedEvent) Entity() string  { return "leave" }
func (e *LeaveResolvedEvent) EntityID() int64 { return e.LeaveID }
func (e *LeaveResolvedEvent) Summary() string {
	return fmt.Sprintf("leave %d of employee %d %s", e.LeaveID, e.EmployeeID, e.Status)
}

type TaskCompletedEvent struct {
	BaseEvent
	TaskID      int64 `json:"task_id"`
	CompletedBy int64 `json:"completed_by"`
}

func NewTaskCompletedEvent(taskID, completedBy int64) *TaskCompletedEvent {
	return &TaskCompletedEvent{
		BaseEvent: newBase(EventTypeTaskCompleted, map[string]interface{}{
			"task_id":      taskID,
			"completed_by": completedBy,
		}),
		TaskID:      taskID,
		CompletedBy: completedBy,
	}
}

func (e *TaskCompletedEvent) ActorID() int64  { return e.CompletedBy }
func (e *TaskCompletedEvent) Entity() string  { return "task" }
func (e *TaskCompletedEvent) EntityID() int64 { return e.TaskID }
func (e *TaskCompletedEvent) Summary() string {
	return fmt.Sprintf("task %d completed", e.TaskID)
}

type UserRegisteredEvent struct {
	BaseEvent
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func NewUserRegisteredEvent(userID int64, email, role string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: newBase(EventTypeUserRegistered, map[string]interface{}{
			"user_id": userID,
			"email":   email,
			"role":    role,
		}),
		UserID: userID,
		Email:  email,
		Role:   role,
	}
}

func (e *UserRegisteredEvent) ActorID() int64  { return e.UserID }
func (e *UserRegisteredEvent) Entity() string  { return "user" }
func (e *UserRegisteredEvent) EntityID() int64 { return e.UserID }
func (e *UserRegisteredEvent) Summary() string {
	return fmt.Sprintf("%s registered as %s", e.Email, e.Role)
}

type UserDeletedEvent struct {
	BaseEvent
	UserID    int64 `json:"user_id"`
	DeletedBy int64 `json:"deleted_by"`
}

func NewUserDeletedEvent(userID, deletedBy int64) *UserDeletedEvent {
	return &UserDeletedEvent{
		BaseEvent: newBase(EventTypeUserDeleted, map[string]interface{}{
			"user_id":    userID,
			"deleted_by": deletedBy,
		}),
		UserID:    userID,
		DeletedBy: deletedBy,
	}
}

func (e *UserDeletedEvent) ActorID() int64  { return e.DeletedBy }
func (e *UserDeletedEvent) Entity() string  { return "user" }
func (e *UserDeletedEvent) EntityID() int64 { return e.UserID }
func (e *UserDeletedEvent) Summary() string {
	return fmt.Sprintf("user %d deleted", e.UserID)
}
