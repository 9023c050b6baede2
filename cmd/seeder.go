package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	authPostgres "github.com/frahmantamala/productivity-management/internal/auth/postgres"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

const demoPassword = "Password123"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with demo users, a milestone, tasks and a leave request. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := database.Open(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gdb, err := database.NewGorm(db, "error")
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if _, err := db.ExecContext(ctx, `TRUNCATE activity_logs, tasks, leaves, milestones,
				meeting_recordings, product_requirements, users RESTART IDENTITY CASCADE`); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		users := authPostgres.NewRepository(gdb)
		ids := map[auth.Role]int64{}
		for _, demo := range []struct {
			name  string
			email string
			role  auth.Role
		}{
			{"Admin User", "admin@example.com", auth.RoleAdmin},
			{"Manager User", "manager@example.com", auth.RoleManager},
			{"Employee User", "employee@example.com", auth.RoleEmployee},
		} {
			id, err := ensureUser(ctx, users, demo.name, demo.email, demo.role, cfg.Security.BCryptCost)
			if err != nil {
				log.Fatalf("failed to seed %s: %v", demo.email, err)
			}
			ids[demo.role] = id
		}

		if err := seedSamples(ctx, db, ids); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}

		fmt.Println("Seeding completed. Demo password:", demoPassword)
	},
}

func ensureUser(ctx context.Context, repo *authPostgres.Repository, name, email string, role auth.Role, cost int) (int64, error) {
	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		fmt.Println("user already exists:", email)
		return existing.ID, nil
	}
	if !errors.Is(err, internal.ErrUserNotFound) {
		return 0, err
	}

	hash, err := auth.HashPassword(demoPassword, cost)
	if err != nil {
		return 0, err
	}
	u := &auth.User{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := repo.Create(ctx, u); err != nil {
		return 0, err
	}
	fmt.Println("Seeded user:", email)
	return u.ID, nil
}

// seedSamples inserts each sample row only when a row with the same natural key is absent.
func seedSamples(ctx context.Context, db *sqlx.DB, ids map[auth.Role]int64) error {
	return database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		var milestoneID int64
		err := tx.GetContext(ctx, &milestoneID, tx.Rebind(`SELECT milestone_id FROM milestones WHERE milestone_name = ?`), "Q1 Release")
		if errors.Is(err, sql.ErrNoRows) {
			err = tx.GetContext(ctx, &milestoneID, tx.Rebind(`
				INSERT INTO milestones (milestone_name, description, target_date, status, created_by)
				VALUES (?, ?, CURRENT_DATE + 30, 'in_progress', ?)
				RETURNING milestone_id`), "Q1 Release", "First public release", ids[auth.RoleManager])
		}
		if err != nil {
			return fmt.Errorf("milestone: %w", err)
		}

		tasks := []struct {
			description string
			status      string
			priority    string
			assignee    int64
		}{
			{"Prepare release notes", "todo", "medium", ids[auth.RoleEmployee]},
			{"Fix login redirect", "in_progress", "high", ids[auth.RoleEmployee]},
			{"Review sprint backlog", "todo", "low", ids[auth.RoleManager]},
		}
		for _, t := range tasks {
			_, err := tx.ExecContext(ctx, tx.Rebind(`
				INSERT INTO tasks (task_description, assigned_to, created_by, status, priority, due_date, associated_milestone_id)
				SELECT ?::text, ?::bigint, ?::bigint, ?::text, ?::text, CURRENT_DATE + 7, ?::bigint
				WHERE NOT EXISTS (SELECT 1 FROM tasks WHERE task_description = ?)`),
				t.description, t.assignee, ids[auth.RoleManager], t.status, t.priority, milestoneID, t.description)
			if err != nil {
				return fmt.Errorf("task %q: %w", t.description, err)
			}
		}

		_, err = tx.ExecContext(ctx, tx.Rebind(`
			INSERT INTO leaves (employee_id, leave_type, start_date, end_date, reason)
			SELECT ?::bigint, 'annual', CURRENT_DATE + 14, CURRENT_DATE + 16, 'Family trip'
			WHERE NOT EXISTS (SELECT 1 FROM leaves WHERE employee_id = ?)`),
			ids[auth.RoleEmployee], ids[auth.RoleEmployee])
		if err != nil {
			return fmt.Errorf("leave: %w", err)
		}
		return nil
	})
}
