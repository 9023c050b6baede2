package postgres

import (
	"context"

	"github.com/frahmantamala/productivity-management/internal/activity"
	activityDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/activity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append is idempotent on event_id so a replayed event is stored once.
func (r *ActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	row := activity.ToDataModel(e)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).
		Create(row)
	if res.Error != nil {
		return res.Error
	}
	e.ID = row.ID
	return nil
}

func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]*activity.Entry, error) {
	var rows []activityDatamodel.Log
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*activity.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, activity.FromDataModel(&rows[i]))
	}
	return entries, nil
}
