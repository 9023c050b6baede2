package auth

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal"
)

// OwnerScope returns the id every list query must be filtered by, or nil when
// the caller may see all rows.
func OwnerScope(id *Identity) *int64 {
	if id == nil || Authorize(id, ActionViewAllData) == Allowed {
		return nil
	}
	uid := id.UserID
	return &uid
}

// CanAccessOwned checks a single row against the caller's scope. A nil owner
// never matches a scoped caller.
func CanAccessOwned(id *Identity, ownerID *int64) error {
	if id == nil {
		return internal.ErrUnauthenticated
	}
	scope := OwnerScope(id)
	if scope == nil {
		return nil
	}
	if ownerID == nil || *ownerID != *scope {
		return internal.ErrUnauthorizedAccess
	}
	return nil
}

// Caller returns the identity in ctx or ErrUnauthenticated.
func Caller(ctx context.Context) (*Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, internal.ErrUnauthenticated
	}
	return id, nil
}
