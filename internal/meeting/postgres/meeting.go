package postgres

import (
	"context"
	"errors"

	"github.com/frahmantamala/productivity-management/internal"
	meetingDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/meeting"
	"github.com/frahmantamala/productivity-management/internal/database"
	"github.com/frahmantamala/productivity-management/internal/meeting"
	"gorm.io/gorm"
)

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) List(ctx context.Context, page meeting.Page) ([]*meeting.Recording, error) {
	var rows []meetingDatamodel.MeetingRecording
	err := r.db.WithContext(ctx).
		Order("meeting_date DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*meeting.Recording, 0, len(rows))
	for i := range rows {
		out = append(out, meeting.FromDataModel(&rows[i]))
	}
	return out, nil
}

func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*meeting.Recording, error) {
	var row meetingDatamodel.MeetingRecording
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrRecordingNotFound
		}
		return nil, err
	}
	return meeting.FromDataModel(&row), nil
}

func (r *MeetingRepository) Create(ctx context.Context, rec *meeting.Recording) error {
	row := meeting.ToDataModel(rec)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return internal.ErrDuplicateRecord.WithCause(err)
		}
		return err
	}
	*rec = *meeting.FromDataModel(row)
	return nil
}

func (r *MeetingRepository) Update(ctx context.Context, id int64, changes meeting.Changes) (*meeting.Recording, error) {
	res := r.db.WithContext(ctx).
		Model(&meetingDatamodel.MeetingRecording{}).
		Where("id = ?", id).
		Updates(map[string]interface{}(changes))
	if res.Error != nil {
		if database.IsUniqueViolation(res.Error) {
			return nil, internal.ErrDuplicateRecord.WithCause(res.Error)
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, internal.ErrRecordingNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MeetingRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&meetingDatamodel.MeetingRecording{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrRecordingNotFound
	}
	return nil
}
