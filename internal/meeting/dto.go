package meeting

import (
	"strings"

	errors "github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/common/date"
	"github.com/frahmantamala/productivity-management/internal/core/common/validation"
)

type CreateRecordingDTO struct {
	RecordingID   string         `json:"recording_id"`
	MeetingTitle  string         `json:"meeting_title"`
	Participants  *string        `json:"participants"`
	RecordingLink string         `json:"recording_link"`
	MeetingDate   date.Timestamp `json:"meeting_date"`
	Duration      *int           `json:"duration"`
}

func (d CreateRecordingDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("recording_id", d.RecordingID).Required().MaxLength(100)
	v.Field("meeting_title", d.MeetingTitle).Required().MaxLength(255)
	v.Field("recording_link", d.RecordingLink).Required()
	v.Field("meeting_date", d.MeetingDate).Required()
	v.Field("duration", d.Duration).NonNegative()
	return v.Validate()
}

func (d CreateRecordingDTO) ToRecording() *Recording {
	return &Recording{
		RecordingID:   strings.TrimSpace(d.RecordingID),
		MeetingTitle:  strings.TrimSpace(d.MeetingTitle),
		Participants:  d.Participants,
		RecordingLink: strings.TrimSpace(d.RecordingLink),
		MeetingDate:   d.MeetingDate.Time,
		Duration:      d.Duration,
	}
}

// UpdateRecordingDTO follows COALESCE semantics: absent and null fields are kept.
type UpdateRecordingDTO struct {
	RecordingID   *string         `json:"recording_id"`
	MeetingTitle  *string         `json:"meeting_title"`
	Participants  *string         `json:"participants"`
	RecordingLink *string         `json:"recording_link"`
	MeetingDate   *date.Timestamp `json:"meeting_date"`
	Duration      *int            `json:"duration"`
}

func (d UpdateRecordingDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.RecordingID != nil {
		v.Field("recording_id", d.RecordingID).Required().MaxLength(100)
	}
	if d.MeetingTitle != nil {
		v.Field("meeting_title", d.MeetingTitle).Required().MaxLength(255)
	}
	if d.RecordingLink != nil {
		v.Field("recording_link", d.RecordingLink).Required()
	}
	v.Field("duration", d.Duration).NonNegative()
	return v.Validate()
}

func (d UpdateRecordingDTO) ToChanges() Changes {
	c := Changes{}
	if d.RecordingID != nil {
		c["recording_id"] = strings.TrimSpace(*d.RecordingID)
	}
	if d.MeetingTitle != nil {
		c["meeting_title"] = strings.TrimSpace(*d.MeetingTitle)
	}
	if d.Participants != nil {
		c["participants"] = *d.Participants
	}
	if d.RecordingLink != nil {
		c["recording_link"] = strings.TrimSpace(*d.RecordingLink)
	}
	if d.MeetingDate != nil && !d.MeetingDate.IsZero() {
		c["meeting_date"] = d.MeetingDate.Time
	}
	if d.Duration != nil {
		c["duration"] = *d.Duration
	}
	return c
}
