package milestone

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
)

type Repository interface {
	List(ctx context.Context) ([]*Milestone, error)
	GetByID(ctx context.Context, id int64) (*Milestone, error)
	Create(ctx context.Context, m *Milestone) (*Milestone, error)
	Update(ctx context.Context, id int64, p Patch) (*Milestone, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes milestones to every authenticated user; writes need ManageMilestones.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context, caller *auth.Identity) ([]*Milestone, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, caller *auth.Identity, id int64) (*Milestone, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, caller *auth.Identity, dto CreateMilestoneDTO) (*Milestone, error) {
	if err := auth.Authorize(caller, auth.ActionManageMilestones).Err(); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.Create(ctx, dto.ToMilestone(caller.UserID))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create milestone", "error", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "milestone created", "milestone_id", m.ID, "user_id", caller.UserID)
	return m, nil
}

// Update applies the present fields. An empty body returns the row unchanged.
func (s *Service) Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateMilestoneDTO) (*Milestone, error) {
	if err := auth.Authorize(caller, auth.ActionManageMilestones).Err(); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	patch := dto.ToPatch()
	if patch.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	if err := auth.Authorize(caller, auth.ActionManageMilestones).Err(); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "milestone deleted", "milestone_id", id, "user_id", caller.UserID)
	return nil
}
