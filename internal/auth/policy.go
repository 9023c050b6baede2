package auth

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal"
)

type Decision int

const (
	Unauthenticated Decision = iota
	Forbidden
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Forbidden:
		return "forbidden"
	default:
		return "unauthenticated"
	}
}

// Err converts a negative decision into the matching AppError.
func (d Decision) Err() error {
	switch d {
	case Allowed:
		return nil
	case Forbidden:
		return internal.ErrForbidden
	default:
		return internal.ErrUnauthenticated
	}
}

type Policy struct {
	checker PermissionChecker
}

func NewPolicy(checker PermissionChecker) *Policy {
	if checker == nil {
		checker = NewPermissionChecker()
	}
	return &Policy{checker: checker}
}

var defaultPolicy = NewPolicy(nil)

func (p *Policy) Authorize(id *Identity, action Action) Decision {
	if id == nil {
		return Unauthenticated
	}
	if !p.checker.Can(id.Role, action) {
		return Forbidden
	}
	return Allowed
}

// Authorize evaluates action against the static role table.
func Authorize(id *Identity, action Action) Decision {
	return defaultPolicy.Authorize(id, action)
}

// Require authorizes the caller stored in ctx.
func Require(ctx context.Context, action Action) error {
	id, _ := IdentityFromContext(ctx)
	return Authorize(id, action).Err()
}
