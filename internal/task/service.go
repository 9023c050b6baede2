package task

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*Task, error)
	GetByID(ctx context.Context, id int64) (*Task, error)
	Create(ctx context.Context, t *Task) (*Task, error)
	Update(ctx context.Context, id int64, p Patch) (*Task, error)
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

// List returns tasks visible to the caller; employees only see tasks assigned to them.
func (s *Service) List(ctx context.Context, caller *auth.Identity, f Filter) ([]*Task, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if f.Status == "all" {
		f.Status = ""
	}
	if f.Priority == "all" {
		f.Priority = ""
	}
	f.OwnerID = auth.OwnerScope(caller)

	tasks, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", "error", err, "user_id", caller.UserID)
		return nil, err
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, caller *auth.Identity, id int64) (*Task, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessOwned(caller, t.AssignedTo); err != nil {
		s.logger.WarnContext(ctx, "unauthorized access to task", "task_id", id, "user_id", caller.UserID)
		return nil, err
	}
	return t, nil
}

// Create records the task with the caller as creator. Employees may only
// assign to themselves; leaving the assignee empty assigns it to them.
func (s *Service) Create(ctx context.Context, caller *auth.Identity, dto CreateTaskDTO) (*Task, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t := dto.ToTask()
	if scope := auth.OwnerScope(caller); scope != nil {
		if t.AssignedTo == nil {
			t.AssignedTo = scope
		} else if *t.AssignedTo != *scope {
			s.logger.WarnContext(ctx, "employee attempted to assign task to another user", "user_id", caller.UserID, "assigned_to", *t.AssignedTo)
			return nil, internal.ErrUnauthorizedAccess
		}
	}
	creator := caller.UserID
	t.CreatedBy = &creator

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create task", "error", err, "user_id", caller.UserID)
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created", "task_id", created.ID, "user_id", caller.UserID)
	if created.Status == StatusCompleted {
		s.publish(ctx, events.NewTaskCompletedEvent(created.ID, caller.UserID))
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateTaskDTO) (*Task, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanAccessOwned(caller, existing.AssignedTo); err != nil {
		s.logger.WarnContext(ctx, "unauthorized task update", "task_id", id, "user_id", caller.UserID)
		return nil, err
	}

	patch := dto.ToPatch()
	if scope := auth.OwnerScope(caller); scope != nil && patch.AssignedTo.Set {
		if !patch.AssignedTo.HasValue() || patch.AssignedTo.Value != *scope {
			s.logger.WarnContext(ctx, "employee attempted to reassign task", "task_id", id, "user_id", caller.UserID)
			return nil, internal.ErrUnauthorizedAccess
		}
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task", "error", err, "task_id", id)
		return nil, err
	}

	if existing.Status != StatusCompleted && updated.Status == StatusCompleted {
		s.publish(ctx, events.NewTaskCompletedEvent(updated.ID, caller.UserID))
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	if err := auth.Authorize(caller, auth.ActionManageTasks).Err(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "task deleted", "task_id", id, "user_id", caller.UserID)
	return nil
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSync(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event_type", ev.EventType(), "error", err)
	}
}
