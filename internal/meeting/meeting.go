package meeting

import (
	"time"

	meetingDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/meeting"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

type Recording struct {
	ID            int64     `json:"id"`
	RecordingID   string    `json:"recording_id"`
	MeetingTitle  string    `json:"meeting_title"`
	Participants  *string   `json:"participants"`
	RecordingLink string    `json:"recording_link"`
	MeetingDate   time.Time `json:"meeting_date"`
	Duration      *int      `json:"duration"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Page struct {
	Limit  int
	Offset int
}

// Changes maps column names to new values. Absent columns keep their value.
type Changes map[string]interface{}

func ToDataModel(r *Recording) *meetingDatamodel.MeetingRecording {
	return &meetingDatamodel.MeetingRecording{
		ID:            r.ID,
		RecordingID:   r.RecordingID,
		MeetingTitle:  r.MeetingTitle,
		Participants:  r.Participants,
		RecordingLink: r.RecordingLink,
		MeetingDate:   r.MeetingDate,
		Duration:      r.Duration,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromDataModel(r *meetingDatamodel.MeetingRecording) *Recording {
	return &Recording{
		ID:            r.ID,
		RecordingID:   r.RecordingID,
		MeetingTitle:  r.MeetingTitle,
		Participants:  r.Participants,
		RecordingLink: r.RecordingLink,
		MeetingDate:   r.MeetingDate,
		Duration:      r.Duration,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
