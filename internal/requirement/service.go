package requirement

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
)

type Repository interface {
	List(ctx context.Context, f Filter) ([]*Requirement, error)
	GetByID(ctx context.Context, id int64) (*Requirement, error)
	Create(ctx context.Context, r *Requirement) error
	Update(ctx context.Context, id int64, changes Changes) (*Requirement, error)
	Delete(ctx context.Context, id int64) error
}

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

func (s *Service) List(ctx context.Context, caller *auth.Identity, f Filter) ([]*Requirement, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if f.Status == "all" {
		f.Status = ""
	}
	if f.Priority == "all" {
		f.Priority = ""
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, caller *auth.Identity, id int64) (*Requirement, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, caller *auth.Identity, dto CreateRequirementDTO) (*Requirement, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	req := dto.ToRequirement()
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "product requirement created", "id", req.ID, "requirement_id", req.RequirementID, "user_id", caller.UserID)
	return req, nil
}

func (s *Service) Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateRequirementDTO) (*Requirement, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	changes := dto.ToChanges()
	if len(changes) == 0 {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, changes)
}

func (s *Service) Delete(ctx context.Context, caller *auth.Identity, id int64) error {
	if err := auth.Authorize(caller, auth.ActionManageRecords).Err(); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
