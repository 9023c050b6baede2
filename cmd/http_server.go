package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/productivity-management/api"
	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/activity"
	activityPostgres "github.com/frahmantamala/productivity-management/internal/activity/postgres"
	"github.com/frahmantamala/productivity-management/internal/auth"
	authPostgres "github.com/frahmantamala/productivity-management/internal/auth/postgres"
	"github.com/frahmantamala/productivity-management/internal/core/events"
	"github.com/frahmantamala/productivity-management/internal/dashboard"
	dashboardPostgres "github.com/frahmantamala/productivity-management/internal/dashboard/postgres"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/leave"
	leavePostgres "github.com/frahmantamala/productivity-management/internal/leave/postgres"
	"github.com/frahmantamala/productivity-management/internal/meeting"
	meetingPostgres "github.com/frahmantamala/productivity-management/internal/meeting/postgres"
	"github.com/frahmantamala/productivity-management/internal/milestone"
	milestonePostgres "github.com/frahmantamala/productivity-management/internal/milestone/postgres"
	"github.com/frahmantamala/productivity-management/internal/requirement"
	requirementPostgres "github.com/frahmantamala/productivity-management/internal/requirement/postgres"
	"github.com/frahmantamala/productivity-management/internal/task"
	taskPostgres "github.com/frahmantamala/productivity-management/internal/task/postgres"
	"github.com/frahmantamala/productivity-management/internal/transport/middleware"
	"github.com/frahmantamala/productivity-management/internal/transport/rest"
	"github.com/frahmantamala/productivity-management/internal/user"
	userPostgres "github.com/frahmantamala/productivity-management/internal/user/postgres"
	"github.com/frahmantamala/productivity-management/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	Redis    *redis.Client
	Router   *chi.Mux
	EventBus *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}
	defer deps.Close()

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "env", deps.Config.Env)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			deps.Close()
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	cfg := deps.Config
	lg := deps.Logger

	codec := auth.NewJWTCodec(cfg.Security.JWTSecret, cfg.Security.TokenDuration)
	gate := auth.NewGate(codec, cfg.Security.CookieName)
	rbac := auth.NewRBACAuthorization(auth.NewPolicy(auth.NewPermissionChecker()), lg)

	activityService := activity.NewService(activityPostgres.NewActivityRepository(deps.Gorm), lg)
	activityService.Register(deps.EventBus)

	authService := auth.NewService(authPostgres.NewRepository(deps.Gorm), codec, deps.EventBus, cfg.Security.BCryptCost, lg)
	userService := user.NewService(userPostgres.NewUserRepository(deps.Gorm), deps.EventBus, lg)
	taskService := task.NewService(taskPostgres.NewTaskRepository(deps.DB), deps.EventBus, lg)
	leaveService := leave.NewService(leavePostgres.NewLeaveRepository(deps.DB), deps.EventBus, lg)
	milestoneService := milestone.NewService(milestonePostgres.NewMilestoneRepository(deps.DB), lg)
	meetingService := meeting.NewService(meetingPostgres.NewMeetingRepository(deps.Gorm), lg)
	requirementService := requirement.NewService(requirementPostgres.NewRequirementRepository(deps.Gorm), lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(deps.DB), lg)

	handlers := rest.Handlers{
		Auth: auth.NewHandler(authService, gate, auth.CookieOptions{
			Secure: cfg.Security.CookieSecure,
			MaxAge: cfg.Security.TokenDuration,
		}),
		User:        user.NewHandler(userService),
		Task:        task.NewHandler(taskService),
		Leave:       leave.NewHandler(leaveService),
		Milestone:   milestone.NewHandler(milestoneService),
		Meeting:     meeting.NewHandler(meetingService),
		Requirement: requirement.NewHandler(requirementService),
		Dashboard:   dashboard.NewHandler(dashboardService),
		Activity:    activity.NewHandler(activityService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB, handlers, rbac, rest.Options{
		AllowedOrigins: cfg.Server.Origins(),
		RequestTimeout: cfg.Database.QueryTimeout,
		AuthLimiter:    newAuthLimiter(deps),
	}, lg)
}

// newAuthLimiter prefers the shared Redis window when one is configured.
func newAuthLimiter(deps *Dependencies) middleware.Limiter {
	rl := deps.Config.RateLimit
	if !rl.Enabled {
		return nil
	}
	if deps.Redis != nil {
		return middleware.NewRedisLimiter(deps.Redis, rl.RequestsPerMinute, rl.Window)
	}
	return middleware.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.Setup(logger.Options{
		Env:        config.Env,
		Level:      config.Logging.Level,
		Format:     config.Logging.Format,
		File:       config.Logging.File,
		MaxSizeMB:  config.Logging.MaxSizeMB,
		MaxBackups: config.Logging.MaxBackups,
		MaxAgeDays: config.Logging.MaxAgeDays,
		Compress:   config.Logging.Compress,
	})

	if _, err := api.Load(ctx); err != nil {
		return nil, err
	}

	db, err := database.Open(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := database.NewGorm(db, config.Logging.Level)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	deps := &Dependencies{
		Config:   config,
		DB:       db,
		Gorm:     gdb,
		Router:   chi.NewRouter(),
		EventBus: events.NewEventBus(lg),
		Logger:   lg,
	}

	if config.RateLimit.Enabled && config.RateLimit.RedisAddr != "" {
		deps.Redis = redis.NewClient(&redis.Options{
			Addr:     config.RateLimit.RedisAddr,
			Password: config.RateLimit.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, config.Database.ConnectTimeout)
		defer cancel()
		if err := deps.Redis.Ping(pingCtx).Err(); err != nil {
			lg.Warn("redis unavailable, falling back to in-memory rate limiting", "addr", config.RateLimit.RedisAddr, "error", err)
			_ = deps.Redis.Close()
			deps.Redis = nil
		}
	}

	return deps, nil
}

// Close releases the pool and the optional redis client.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error("Redis close error", "error", err)
		}
		d.Redis = nil
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			d.Logger.Error("Database close error", "error", err)
		}
		d.DB = nil
	}
}
