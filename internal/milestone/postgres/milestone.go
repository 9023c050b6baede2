package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/productivity-management/internal"
	milestoneDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/milestone"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/milestone"
	"github.com/jmoiron/sqlx"
)

const milestoneColumns = "milestone_id, milestone_name, description, target_date, status, created_by, created_at"

type MilestoneRepository struct {
	db *sqlx.DB
}

func NewMilestoneRepository(db *sqlx.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) List(ctx context.Context) ([]*milestone.Milestone, error) {
	var rows []milestoneDatamodel.Milestone
	query := "SELECT " + milestoneColumns + " FROM milestones ORDER BY target_date ASC"
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	out := make([]*milestone.Milestone, 0, len(rows))
	for i := range rows {
		out = append(out, milestone.FromDataModel(&rows[i]))
	}
	return out, nil
}

func (r *MilestoneRepository) GetByID(ctx context.Context, id int64) (*milestone.Milestone, error) {
	var row milestoneDatamodel.Milestone
	query := r.db.Rebind("SELECT " + milestoneColumns + " FROM milestones WHERE milestone_id = ?")
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	return milestone.FromDataModel(&row), nil
}

func (r *MilestoneRepository) Create(ctx context.Context, m *milestone.Milestone) (*milestone.Milestone, error) {
	row := milestone.ToDataModel(m)
	query := r.db.Rebind(`
INSERT INTO milestones (milestone_name, description, target_date, status, created_by, created_at)
VALUES (?, ?, ?, ?, ?, NOW())
RETURNING ` + milestoneColumns)

	var created milestoneDatamodel.Milestone
	err := r.db.GetContext(ctx, &created, query,
		row.MilestoneName, row.Description, row.TargetDate, row.Status, row.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("insert milestone: %w", err)
	}
	return milestone.FromDataModel(&created), nil
}

func (r *MilestoneRepository) Update(ctx context.Context, id int64, p milestone.Patch) (*milestone.Milestone, error) {
	var set database.Assignments
	if p.Name.Set {
		set.Set("milestone_name", p.Name.Value)
	}
	if p.Description.Set {
		set.Set("description", p.Description.Ptr())
	}
	if p.TargetDate.Set {
		set.Set("target_date", p.TargetDate.Value)
	}
	if p.Status.Set {
		set.Set("status", string(p.Status.Value))
	}
	if set.Len() == 0 {
		return r.GetByID(ctx, id)
	}

	query := r.db.Rebind("UPDATE milestones SET " + set.SQL() + " WHERE milestone_id = ? RETURNING " + milestoneColumns)
	var updated milestoneDatamodel.Milestone
	if err := r.db.GetContext(ctx, &updated, query, append(set.Args(), id)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrMilestoneNotFound
		}
		return nil, fmt.Errorf("update milestone: %w", err)
	}
	return milestone.FromDataModel(&updated), nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.GetContext(ctx, &deleted, r.db.Rebind("DELETE FROM milestones WHERE milestone_id = ? RETURNING milestone_id"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal.ErrMilestoneNotFound
		}
		return fmt.Errorf("delete milestone: %w", err)
	}
	return nil
}
