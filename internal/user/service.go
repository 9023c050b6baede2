package user

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

type Repository interface {
	List(ctx context.Context, role string) ([]*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
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

func (s *Service) List(ctx context.Context, caller *auth.Identity, dto ListUsersDTO) ([]*User, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, dto.Role)
}

// Delete removes an account. Only admins may do it, and never on themselves.
func (s *Service) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	if err := auth.Authorize(caller, auth.ActionDeleteUser).Err(); err != nil {
		return err
	}
	if id == caller.UserID {
		return internal.ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", "user_id", id, "deleted_by", caller.UserID)

	if s.publisher != nil {
		if err := s.publisher.PublishSync(ctx, events.NewUserDeletedEvent(id, caller.UserID)); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish event", "event_type", events.EventTypeUserDeleted, "error", err)
		}
	}
	return nil
}
