package meeting

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
)

type Repository interface {
	List(ctx context.Context, page Page) ([]*Recording, error)
	GetByID(ctx context.Context, id int64) (*Recording, error)
	Create(ctx context.Context, r *Recording) error
	Update(ctx context.Context, id int64, changes Changes) (*Recording, error)
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

func (s *Service) List(ctx context.Context, caller *auth.Identity, page Page) ([]*Recording, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if page.Limit <= 0 {
		page.Limit = DefaultLimit
	}
	if page.Limit > MaxLimit {
		page.Limit = MaxLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return s.repo.List(ctx, page)
}

func (s *Service) Get(ctx context.Context, caller *auth.Identity, id int64) (*Recording, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, caller *auth.Identity, dto CreateRecordingDTO) (*Recording, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rec := dto.ToRecording()
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "meeting recording created", "id", rec.ID, "recording_id", rec.RecordingID, "user_id", caller.UserID)
	return rec, nil
}

func (s *Service) Update(ctx context.Context, caller *auth.Identity, id int64, dto UpdateRecordingDTO) (*Recording, error) {
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
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "meeting recording deleted", "id", id, "user_id", caller.UserID)
	return nil
}
