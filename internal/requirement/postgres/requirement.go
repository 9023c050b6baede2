package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/productivity-management/internal"
	requirementDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/requirement"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/requirement"
	"gorm.io/gorm"
)

type RequirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

func (r *RequirementRepository) List(ctx context.Context, f requirement.Filter) ([]*requirement.Requirement, error) {
	q := r.db.WithContext(ctx).Model(&requirementDatamodel.ProductRequirement{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Priority != "" {
		q = q.Where("priority = ?", f.Priority)
	}

	var rows []requirementDatamodel.ProductRequirement
	if err := q.Order("requirement_date DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*requirement.Requirement, 0, len(rows))
	for i := range rows {
		out = append(out, requirement.FromDataModel(&rows[i]))
	}
	return out, nil
}

func (r *RequirementRepository) GetByID(ctx context.Context, id int64) (*requirement.Requirement, error) {
	var row requirementDatamodel.ProductRequirement
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrRequirementNotFound
		}
		return nil, err
	}
	return requirement.FromDataModel(&row), nil
}

func (r *RequirementRepository) Create(ctx context.Context, req *requirement.Requirement) error {
	row := requirement.ToDataModel(req)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return internal.ErrDuplicateRecord.WithCause(err)
		}
		return err
	}
	*req = *requirement.FromDataModel(row)
	return nil
}

func (r *RequirementRepository) Update(ctx context.Context, id int64, changes requirement.Changes) (*requirement.Requirement, error) {
	res := r.db.WithContext(ctx).
		Model(&requirementDatamodel.ProductRequirement{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(changes))
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return nil, internal.ErrDuplicateRecord.WithCause(res.Error)
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, internal.ErrRequirementNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *RequirementRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&requirementDatamodel.ProductRequirement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrRequirementNotFound
	}
	return nil
}
