package user

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

// ListUsersDTO carries the optional ?role filter; "all" or empty lists everyone.
type ListUsersDTO struct {
	Role string
}

func (d *ListUsersDTO) Normalize() {
	d.Role = strings.ToLower(strings.TrimSpace(d.Role))
	if d.Role == "all" {
		d.Role = ""
	}
}

func (d ListUsersDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("role", d.Role).OneOf(auth.Roles...)
	return v.Validate()
}
