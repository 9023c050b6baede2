package auth

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Roles lists every assignable role, highest first.
var Roles = []string{string(RoleAdmin), string(RoleManager), string(RoleEmployee)}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

type ctxKey string

const ContextIdentityKey ctxKey = "identity"

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	ctx = context.WithValue(ctx, ContextIdentityKey, id)
	return internal.ContextWithUserID(ctx, id.UserID)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	if ctx == nil {
		return nil, false
	}
	id, ok := ctx.Value(ContextIdentityKey).(*Identity)
	return id, ok && id != nil
}
