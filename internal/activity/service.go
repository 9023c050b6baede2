package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/productivity-management/internal/auth"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
}

// Subscriber is the part of the event bus the recorder attaches to.
type Subscriber interface {
	Subscribe(eventType string, handler events.Handler)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Register subscribes the recorder to every domain event type.
func (s *Service) Register(bus Subscriber) {
	for _, t := range events.AllTypes {
		bus.Subscribe(t, s.Record)
	}
}

// Record persists ev when it carries audit fields; anything else is skipped.
func (s *Service) Record(ctx context.Context, ev events.Event) error {
	auditable, ok := ev.(events.Auditable)
	if !ok {
		s.logger.DebugContext(ctx, "event is not auditable", "event_type", ev.EventType())
		return nil
	}
	if err := s.repo.Append(ctx, FromEvent(auditable)); err != nil {
		return fmt.Errorf("record %s: %w", ev.EventType(), err)
	}
	return nil
}

func (s *Service) Recent(ctx context.Context, caller *auth.Identity, limit int) ([]*Entry, error) {
	if err := auth.Authorize(caller, auth.ActionViewAllData).Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return s.repo.Recent(ctx, limit)
}
