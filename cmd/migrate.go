package cmd

import (
	"context"
	"fmt"

	migrations "github.com/frahmantamala/productivity-management/db"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "apply the embedded SQL migrations",
	}
	migrateRollback bool
	migrateStatus   bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "roll back the latest migration")
	migrateCmd.Flags().BoolVarP(&migrateStatus, "status", "s", false, "print the applied state of every migration")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetTableName("schema_migrations")
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: %w", err)
	}

	switch {
	case migrateStatus:
		err = goose.StatusContext(ctx, db.DB, migrations.MigrationsDir)
	case migrateRollback:
		err = goose.DownContext(ctx, db.DB, migrations.MigrationsDir)
	default:
		err = goose.UpContext(ctx, db.DB, migrations.MigrationsDir)
	}
	if err != nil {
		return fmt.Errorf("goose: %w", err)
	}
	return nil
}
