package activity

import "time"

type Log struct {
	ID        int64     `gorm:"primaryKey"`
	EventID   string    `gorm:"column:event_id;type:varchar(36);uniqueIndex;not null"`
	EventType string    `gorm:"column:event_type;type:varchar(50);index;not null"`
	ActorID   int64     `gorm:"column:actor_id;not null"`
	Entity    string    `gorm:"column:entity;type:varchar(50);not null"`
	EntityID  int64     `gorm:"column:entity_id;not null"`
	Summary   string    `gorm:"column:summary;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (Log) TableName() string {
	return "activity_logs"
}
