package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/frahmantamala/productivity-management/api"
	"github.com/frahmantamala/productivity-management/internal/activity"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/dashboard"
	"github.com/frahmantamala/productivity-management/internal/leave"
	"github.com/frahmantamala/productivity-management/internal/meeting"
	"github.com/frahmantamala/productivity-management/internal/milestone"
	"github.com/frahmantamala/productivity-management/internal/requirement"
	"github.com/frahmantamala/productivity-management/internal/task"
	"github.com/frahmantamala/productivity-management/internal/transport/middleware"
	"github.com/frahmantamala/productivity-management/internal/transport/swagger"
	"github.com/frahmantamala/productivity-management/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers groups the resource handlers; a nil handler leaves its routes unmounted.
type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Task        *task.Handler
	Leave       *leave.Handler
	Milestone   *milestone.Handler
	Meeting     *meeting.Handler
	Requirement *requirement.Handler
	Dashboard   *dashboard.Handler
	Activity    *activity.Handler
}

type Options struct {
	AllowedOrigins []string
	// RequestTimeout bounds the context every handler and query runs under.
	RequestTimeout time.Duration
	// AuthLimiter throttles /api/auth/*; nil disables it.
	AuthLimiter middleware.Limiter
}

func RegisterAllRoutes(router *chi.Mux, db Pinger, h Handlers, rbac *auth.RBACAuthorization, opts Options, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	if rbac == nil {
		rbac = auth.NewRBACAuthorization(nil, logger)
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 5 * time.Second
	}

	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(chiMiddleware.Timeout(opts.RequestTimeout))

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Get(swagger.DocURL, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.Spec)
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		if h.Auth == nil {
			return
		}

		r.Route("/auth", func(ar chi.Router) {
			if opts.AuthLimiter != nil {
				ar.Use(middleware.RateLimit(opts.AuthLimiter, logger))
			}
			ar.Post("/register", h.Auth.Register)
			ar.Post("/login", h.Auth.Login)
			ar.Post("/logout", h.Auth.Logout)
			ar.With(h.Auth.AuthMiddleware).Get("/me", h.Auth.Me)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			if h.User != nil {
				pr.Get("/users", h.User.GetUsers)
				pr.With(rbac.RequireDeleteUser()).Delete("/users/{id}", h.User.DeleteUser)
			}

			if h.Task != nil {
				pr.Route("/tasks", func(tr chi.Router) {
					tr.Get("/", h.Task.GetTasks)
					tr.Post("/", h.Task.CreateTask)
					tr.Get("/{id}", h.Task.GetTask)
					tr.Put("/{id}", h.Task.UpdateTask)
					tr.Delete("/{id}", h.Task.DeleteTask)
				})
			}

			if h.Leave != nil {
				pr.Route("/leaves", func(lr chi.Router) {
					lr.Get("/", h.Leave.GetLeaves)
					lr.Post("/", h.Leave.CreateLeave)
					lr.Get("/{id}", h.Leave.GetLeave)
					lr.With(rbac.RequireApproveLeave()).Put("/{id}", h.Leave.ApproveLeave)
					lr.Delete("/{id}", h.Leave.DeleteLeave)
				})
			}

			if h.Milestone != nil {
				pr.Route("/milestones", func(mr chi.Router) {
					mr.Get("/", h.Milestone.GetMilestones)
					mr.Post("/", h.Milestone.CreateMilestone)
					mr.Get("/{id}", h.Milestone.GetMilestone)
					mr.Put("/{id}", h.Milestone.UpdateMilestone)
					mr.Delete("/{id}", h.Milestone.DeleteMilestone)
				})
			}

			if h.Meeting != nil {
				pr.Route("/meeting-recordings", func(mr chi.Router) {
					mr.Get("/", h.Meeting.GetRecordings)
					mr.Post("/", h.Meeting.CreateRecording)
					mr.Get("/{id}", h.Meeting.GetRecording)
					mr.Put("/{id}", h.Meeting.UpdateRecording)
					mr.Delete("/{id}", h.Meeting.DeleteRecording)
				})
			}

			if h.Requirement != nil {
				pr.Route("/product-requirements", func(rr chi.Router) {
					rr.Get("/", h.Requirement.GetRequirements)
					rr.Post("/", h.Requirement.CreateRequirement)
					rr.Get("/{id}", h.Requirement.GetRequirement)
					rr.Put("/{id}", h.Requirement.UpdateRequirement)
					rr.Delete("/{id}", h.Requirement.DeleteRequirement)
				})
			}

			if h.Dashboard != nil {
				pr.Get("/dashboard/metrics", h.Dashboard.GetMetrics)
			}

			if h.Activity != nil {
				pr.With(rbac.RequireViewAllData()).Get("/activity", h.Activity.GetActivity)
			}
		})
	})
}
