package leave

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*Leave, error)
	GetByID(ctx context.Context, id int64) (*Leave, error)
	Create(ctx context.Context, l *Leave) (*Leave, error)
	// Resolve moves a pending leave to a terminal status atomically and
	// returns ErrInvalidLeaveStatus when it is no longer pending.
	Resolve(ctx context.Context, id int64, res Resolution) (*Leave, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, publisher: publisher, logger: logger}
}

func (s *Service) List(ctx context.Context, caller *auth.Identity, f Filter) ([]*Leave, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if f.Status == "all" {
		f.Status = ""
	}
	f.OwnerID = auth.OwnerScope(caller)
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, caller *auth.Identity, id int64) (*Leave, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessOwned(caller, l.EmployeeID); err != nil {
		s.logger.WarnContext(ctx, "unauthorized access to leave", "leave_id", id, "user_id", caller.UserID)
		return nil, err
	}
	return l, nil
}

// Create files a pending leave for the caller.
func (s *Service) Create(ctx context.Context, caller *auth.Identity, dto CreateLeaveDTO) (*Leave, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, dto.ToLeave(caller.UserID))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create leave", "error", err, "user_id", caller.UserID)
		return nil, err
	}
	s.logger.InfoContext(ctx, "leave requested", "leave_id", created.ID, "user_id", caller.UserID, "days", created.Days())
	return created, nil
}

// Approve records an approval or rejection. Only pending leaves can be resolved.
func (s *Service) Approve(ctx context.Context, caller *auth.Identity, id int64, dto ApprovalDTO) (*Leave, error) {
	if err := auth.Authorize(caller, auth.ActionApproveLeave).Err(); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	resolved, err := s.repo.Resolve(ctx, id, Resolution{
		Status:     Status(dto.ApprovalStatus),
		ApproverID: caller.UserID,
		Notes:      dto.ApprovalNotes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "leave resolved", "leave_id", id, "status", resolved.ApprovalStatus, "approver_id", caller.UserID)

	var employeeID int64
	if resolved.EmployeeID != nil {
		employeeID = *resolved.EmployeeID
	}
	if s.publisher != nil {
		ev := events.NewLeaveResolvedEvent(resolved.ID, employeeID, caller.UserID, string(resolved.ApprovalStatus))
		if err := s.publisher.PublishSync(ctx, ev); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish event", "event_type", ev.EventType(), "error", err)
		}
	}
	return resolved, nil
}

// Delete removes a leave. Employees may only delete their own.
func (s *Service) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	if caller == nil {
		return internal.ErrUnauthenticated
	}
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CanAccessOwned(caller, l.EmployeeID); err != nil {
		s.logger.WarnContext(ctx, "unauthorized leave delete", "leave_id", id, "user_id", caller.UserID)
		return err
	}
	return s.repo.Delete(ctx, id)
}
