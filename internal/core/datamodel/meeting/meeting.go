package meeting

import "time"

type MeetingRecording struct {
	ID            int64     `gorm:"primaryKey"`
	RecordingID   string    `gorm:"column:recording_id;uniqueIndex;not null"`
	MeetingTitle  string    `gorm:"column:meeting_title;not null"`
	Participants  *string   `gorm:"column:participants"`
	RecordingLink string    `gorm:"column:recording_link;not null"`
	MeetingDate   time.Time `gorm:"column:meeting_date;not null"`
	Duration      *int      `gorm:"column:duration"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (MeetingRecording) TableName() string {
	return "meeting_recordings"
}
