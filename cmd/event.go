package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	activityPostgres "github.com/frahmantamala/productivity-management/internal/activity/postgres"
	"github.com/frahmantamala/productivity-management/internal/core/events"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Domain event commands",
	Long:  `Inspect the domain events the service emits and the activity log they are recorded in`,
}

var eventTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the domain event types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range events.AllTypes {
			fmt.Println(t)
		}
	},
}

var eventLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Print the most recent activity log entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printActivity(cmd.Context(), eventLogLimit)
	},
}

var eventLogLimit int

func printActivity(ctx context.Context, limit int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	lg := logger.LoggerWrapper()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	gdb, err := database.NewGorm(db, "error")
	if err != nil {
		return err
	}

	entries, err := activityPostgres.NewActivityRepository(gdb).Recent(ctx, limit)
	if err != nil {
		lg.Error("failed to read activity log", "error", err)
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tACTOR\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.CreatedAt.Format(time.RFC3339), e.EventType, e.ActorID, e.Summary)
	}
	return w.Flush()
}

func init() {
	eventLogCmd.Flags().IntVarP(&eventLogLimit, "limit", "n", 20, "number of entries to print")

	eventCmd.AddCommand(eventTypesCmd)
	eventCmd.AddCommand(eventLogCmd)

	rootCmd.AddCommand(eventCmd)
}
