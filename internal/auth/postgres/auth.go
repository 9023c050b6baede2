package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/auth"
	userDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/user"
	"github.com/frahmantamala/productivity-management/internal/database"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, u *auth.User) error {
	row := auth.ToDataModel(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return internal.ErrEmailTaken.WithCause(err)
		}
		return err
	}
	u.ID = row.ID
	u.CreatedAt = row.CreatedAt
	return nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*auth.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) first(ctx context.Context, cond string, arg interface{}) (*auth.User, error) {
	var row userDatamodel.User
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return auth.FromDataModel(&row), nil
}
