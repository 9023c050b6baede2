package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/productivity-management/internal"
	leaveDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/leave"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/leave"
	"github.com/jmoiron/sqlx"
)

const selectLeave = `
SELECT l.leave_id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
       l.approval_status, l.approved_by, l.approval_notes, l.created_at, l.updated_at,
       u.name AS employee_name
FROM leaves l
LEFT JOIN users u ON l.employee_id = u.id`

type LeaveRepository struct {
	db *sqlx.DB
}

func NewLeaveRepository(db *sqlx.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

func (r *LeaveRepository) List(ctx context.Context, f leave.Filter) ([]*leave.Leave, error) {
	var conds database.Conditions
	if f.OwnerID != nil {
		conds.Add("l.employee_id = ?", *f.OwnerID)
	}
	if f.Status != "" {
		conds.Add("l.approval_status = ?", f.Status)
	}

	query := selectLeave + conds.Where() + " ORDER BY l.created_at DESC"
	args := conds.Args()
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	var rows []leaveDatamodel.Leave
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}

	leaves := make([]*leave.Leave, 0, len(rows))
	for i := range rows {
		leaves = append(leaves, leave.FromDataModel(&rows[i]))
	}
	return leaves, nil
}

func (r *LeaveRepository) GetByID(ctx context.Context, id int64) (*leave.Leave, error) {
	var row leaveDatamodel.Leave
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(selectLeave+" WHERE l.leave_id = ?"), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("get leave: %w", err)
	}
	return leave.FromDataModel(&row), nil
}

func (r *LeaveRepository) Create(ctx context.Context, l *leave.Leave) (*leave.Leave, error) {
	row := leave.ToDataModel(l)
	query := `
INSERT INTO leaves (employee_id, leave_type, start_date, end_date, reason, approval_status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, 'pending', NOW(), NOW())
RETURNING leave_id`

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query),
		row.EmployeeID, row.LeaveType, row.StartDate, row.EndDate, row.Reason,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert leave: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Resolve locks the row, checks it is still pending and writes the decision
// in the same transaction.
func (r *LeaveRepository) Resolve(ctx context.Context, id int64, res leave.Resolution) (*leave.Leave, error) {
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var current string
		err := tx.GetContext(ctx, &current, tx.Rebind("SELECT approval_status FROM leaves WHERE leave_id = ? FOR UPDATE"), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal.ErrLeaveNotFound
			}
			return fmt.Errorf("lock leave: %w", err)
		}
		if leave.Status(current) != leave.StatusPending {
			return internal.ErrInvalidLeaveStatus
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`
UPDATE leaves
SET approval_status = ?, approved_by = ?, approval_notes = ?, updated_at = NOW()
WHERE leave_id = ?`), string(res.Status), res.ApproverID, res.Notes, id)
		if err != nil {
			return fmt.Errorf("resolve leave: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *LeaveRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM leaves WHERE leave_id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	if n == 0 {
		return internal.ErrLeaveNotFound
	}
	return nil
}
