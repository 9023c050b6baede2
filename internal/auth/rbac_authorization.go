package auth

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/productivity-management/internal/transport"
)

// RBACAuthorization turns policy decisions into route middleware.
type RBACAuthorization struct {
	*transport.BaseHandler
	policy *Policy
	logger *slog.Logger
}

func NewRBACAuthorization(policy *Policy, logger *slog.Logger) *RBACAuthorization {
	if policy == nil {
		policy = defaultPolicy
	}
	base := transport.NewBaseHandler(logger)
	return &RBACAuthorization{
		BaseHandler: base,
		policy:      policy,
		logger:      base.Logger,
	}
}

func (ra *RBACAuthorization) Check(next http.HandlerFunc, action Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFromContext(r.Context())

		switch ra.policy.Authorize(id, action) {
		case Allowed:
			next.ServeHTTP(w, r)
		case Forbidden:
			ra.logger.WarnContext(r.Context(), "access denied: insufficient role",
				"user_id", id.UserID,
				"role", id.Role,
				"required_action", action)
			ra.WriteError(w, http.StatusForbidden, "Forbidden: insufficient permissions")
		default:
			ra.logger.WarnContext(r.Context(), "authorization check failed: identity not found in context")
			ra.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		}
	}
}

func (ra *RBACAuthorization) Require(action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ra.Check(next.ServeHTTP, action)
	}
}

func (ra *RBACAuthorization) RequireApproveLeave() func(http.Handler) http.Handler {
	return ra.Require(ActionApproveLeave)
}

func (ra *RBACAuthorization) RequireViewAllData() func(http.Handler) http.Handler {
	return ra.Require(ActionViewAllData)
}

func (ra *RBACAuthorization) RequireDeleteUser() func(http.Handler) http.Handler {
	return ra.Require(ActionDeleteUser)
}
