package auth

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (d *RegisterDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Role = strings.TrimSpace(d.Role)
}

func (d RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(255)
	v.Field("email", d.Email).Required().MaxLength(255).Email()
	v.Field("password", d.Password).Required().Password()
	v.Field("role", d.Role).Required().Custom(func(value interface{}) *errors.AppError {
		if s, _ := value.(string); s != "" && !Role(s).Valid() {
			return errors.NewValidationFieldError("role", "Invalid role. Must be admin, manager, or employee", errors.ErrCodeInvalidRole)
		}
		return nil
	})
	return v.Validate()
}

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required()
	v.Field("password", d.Password).Required()
	return v.Validate()
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
