package postgres

import (
	"context"
	"fmt"

	"github.com/frahmantamala/productivity-management/internal/dashboard"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/jmoiron/sqlx"
)

type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) TaskStatusCounts(ctx context.Context, ownerID *int64) ([]dashboard.StatusCount, error) {
	var conds database.Conditions
	if ownerID != nil {
		conds.Add("assigned_to = ?", *ownerID)
	}
	query := "SELECT status, COUNT(*) AS total FROM tasks" + conds.Where() + " GROUP BY status"

	var counts []dashboard.StatusCount
	if err := r.db.SelectContext(ctx, &counts, r.db.Rebind(query), conds.Args()...); err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	return counts, nil
}

func (r *DashboardRepository) OverdueTasks(ctx context.Context, ownerID *int64) (int, error) {
	var conds database.Conditions
	conds.Add("due_date < CURRENT_DATE")
	conds.Add("status <> ?", "completed")
	if ownerID != nil {
		conds.Add("assigned_to = ?", *ownerID)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, r.db.Rebind("SELECT COUNT(*) FROM tasks"+conds.Where()), conds.Args()...); err != nil {
		return 0, fmt.Errorf("count overdue tasks: %w", err)
	}
	return n, nil
}

func (r *DashboardRepository) LeaveStatusCounts(ctx context.Context, ownerID *int64) ([]dashboard.StatusCount, error) {
	var conds database.Conditions
	if ownerID != nil {
		conds.Add("employee_id = ?", *ownerID)
	}
	query := "SELECT approval_status AS status, COUNT(*) AS total FROM leaves" + conds.Where() + " GROUP BY approval_status"

	var counts []dashboard.StatusCount
	if err := r.db.SelectContext(ctx, &counts, r.db.Rebind(query), conds.Args()...); err != nil {
		return nil, fmt.Errorf("count leaves: %w", err)
	}
	return counts, nil
}

func (r *DashboardRepository) Workload(ctx context.Context, limit int) ([]dashboard.Workload, error) {
	query := r.db.Rebind(`
SELECT u.id, u.name, COUNT(t.task_id) AS task_count
FROM users u
LEFT JOIN tasks t ON u.id = t.assigned_to AND t.status <> 'completed'
GROUP BY u.id, u.name
ORDER BY task_count DESC, u.name ASC
LIMIT ?`)

	var rows []dashboard.Workload
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("workload distribution: %w", err)
	}
	return rows, nil
}
