package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/productivity-management/internal"
	userDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/user"
	"github.com/frahmantamala/productivity-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context, role string) ([]*user.User, error) {
	var rows []userDatamodel.User
	q := r.db.WithContext(ctx).Select("id", "name", "email", "role", "created_at")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		users = append(users, user.FromDataModel(&rows[i]))
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var row userDatamodel.User
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&row), nil
}

// Delete removes the account. Foreign keys null out task assignments and leave
// ownership; nothing referencing the user is deleted with it.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&userDatamodel.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrUserNotFound
	}
	return nil
}
