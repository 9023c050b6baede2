package dashboard

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
)

const workloadLimit = 10

type Repository interface {
	TaskStatusCounts(ctx context.Context, ownerID *int64) ([]StatusCount, error)
	OverdueTasks(ctx context.Context, ownerID *int64) (int, error)
	LeaveStatusCounts(ctx context.Context, ownerID *int64) ([]StatusCount, error)
	Workload(ctx context.Context, limit int) ([]Workload, error)
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

// Metrics aggregates counts scoped to the caller. Employees see their own
// tasks and leaves and never the workload distribution.
func (s *Service) Metrics(ctx context.Context, caller *auth.Identity) (*Metrics, error) {
	if caller == nil {
		return nil, internal.ErrUnauthenticated
	}
	scope := auth.OwnerScope(caller)
	m := &Metrics{WorkloadDistribution: []Workload{}}

	tasks, err := s.repo.TaskStatusCounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	m.addTasks(tasks)

	if m.OverdueTasks, err = s.repo.OverdueTasks(ctx, scope); err != nil {
		return nil, err
	}

	leaves, err := s.repo.LeaveStatusCounts(ctx, scope)
	if err != nil {
		return nil, err
	}
	m.addLeaves(leaves)

	if scope == nil {
		workload, err := s.repo.Workload(ctx, workloadLimit)
		if err != nil {
			return nil, err
		}
		if workload != nil {
			m.WorkloadDistribution = workload
		}
	}
	return m, nil
}
