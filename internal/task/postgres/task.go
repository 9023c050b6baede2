package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/frahmantamala/productivity-management/internal"
	taskDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/task"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/task"
	"github.com/jmoiron/sqlx"
)

const selectTask = `
SELECT t.task_id, t.task_description, t.task_details, t.assigned_to, t.created_by,
       t.status, t.priority, t.due_date, t.associated_milestone_id,
       t.creation_date, t.last_updated_date, t.completion_date,
       u.name AS assigned_to_name, m.milestone_name
FROM tasks t
LEFT JOIN users u ON t.assigned_to = u.id
LEFT JOIN milestones m ON t.associated_milestone_id = m.milestone_id`

// TaskRepository implements task.Repository on sqlx.
type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) List(ctx context.Context, f task.Filter) ([]*task.Task, error) {
	var conds database.Conditions
	if f.OwnerID != nil {
		conds.Add("t.assigned_to = ?", *f.OwnerID)
	}
	if f.Status != "" {
		conds.Add("t.status = ?", f.Status)
	}
	if f.Priority != "" {
		conds.Add("t.priority = ?", f.Priority)
	}
	if f.Upcoming {
		conds.Add("t.due_date IS NOT NULL AND t.due_date >= CURRENT_DATE AND t.status != 'completed'")
	}

	query := selectTask + conds.Where() + " ORDER BY t.creation_date DESC"
	args := conds.Args()
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	var rows []taskDatamodel.Task
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*task.Task, 0, len(rows))
	for i := range rows {
		tasks = append(tasks, task.FromDataModel(&rows[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*task.Task, error) {
	var row taskDatamodel.Task
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectTask+" WHERE t.task_id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task.FromDataModel(&row), nil
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	row := task.ToDataModel(t)
	query := `
INSERT INTO tasks (task_description, task_details, assigned_to, created_by, status, priority,
                   due_date, associated_milestone_id, creation_date, last_updated_date, completion_date)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW(), CASE WHEN ? = 'completed' THEN NOW() END)
RETURNING task_id`

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query),
		row.TaskDescription, row.TaskDetails, row.AssignedTo, row.CreatedBy, row.Status, row.Priority,
		row.DueDate, row.AssociatedMilestoneID, row.Status,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Update writes only the patched columns. completion_date is stamped when the
// status moves into completed and kept otherwise.
func (r *TaskRepository) Update(ctx context.Context, id int64, p task.Patch) (*task.Task, error) {
	var set database.Assignments
	if p.Description.Set {
		set.Set("task_description", p.Description.Value)
	}
	if p.Details.Set {
		set.Set("task_details", p.Details.Ptr())
	}
	if p.AssignedTo.Set {
		set.Set("assigned_to", p.AssignedTo.Ptr())
	}
	if p.Status.HasValue() {
		set.Set("status", string(p.Status.Value))
		if p.Status.Value == task.StatusCompleted {
			// right-hand side column references see the pre-update row
			set.SetRaw("completion_date = CASE WHEN status <> 'completed' OR completion_date IS NULL THEN NOW() ELSE completion_date END")
		}
	}
	if p.Priority.HasValue() {
		set.Set("priority", string(p.Priority.Value))
	}
	if p.DueDate.Set {
		set.Set("due_date", p.DueDate.Value)
	}
	if p.MilestoneID.Set {
		set.Set("associated_milestone_id", p.MilestoneID.Ptr())
	}
	set.SetRaw("last_updated_date = NOW()")

	query := "UPDATE tasks SET " + set.SQL() + " WHERE task_id = ? RETURNING task_id"
	args := append(set.Args(), id)

	var updatedID int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return r.GetByID(ctx, updatedID)
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE task_id = ?"), id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return internal.ErrTaskNotFound
	}
	return nil
}
