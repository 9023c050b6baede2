package activity

import (
	"time"

	activityDatamodel "github.com/frahmantamala/productivity-management/internal/core/datamodel/activity"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Entry is one persisted domain event.
type Entry struct {
	ID        int64     `json:"id"`
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ActorID   int64     `json:"actor_id"`
	Entity    string    `json:"entity"`
	EntityID  int64     `json:"entity_id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// FromEvent copies the audit fields of ev; the event timestamp becomes CreatedAt.
func FromEvent(ev events.Auditable) *Entry {
	return &Entry{
		EventID:   ev.EventID(),
		EventType: ev.EventType(),
		ActorID:   ev.ActorID(),
		Entity:    ev.Entity(),
		EntityID:  ev.EntityID(),
		Summary:   ev.Summary(),
		CreatedAt: ev.OccurredAt(),
	}
}

func ToDataModel(e *Entry) *activityDatamodel.Log {
	return &activityDatamodel.Log{
		ID:        e.ID,
		EventID:   e.EventID,
		EventType: e.EventType,
		ActorID:   e.ActorID,
		Entity:    e.Entity,
		EntityID:  e.EntityID,
		Summary:   e.Summary,
		CreatedAt: e.CreatedAt,
	}
}

func FromDataModel(l *activityDatamodel.Log) *Entry {
	return &Entry{
		ID:        l.ID,
		EventID:   l.EventID,
		EventType: l.EventType,
		ActorID:   l.ActorID,
		Entity:    l.Entity,
		EntityID:  l.EntityID,
		Summary:   l.Summary,
		CreatedAt: l.CreatedAt,
	}
}
