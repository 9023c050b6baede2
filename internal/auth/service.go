package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/frahmantamala/productivity-management/internal"
	"github.com/frahmantamala/productivity-management/internal/core/events"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Service handles registration, login and current-user lookups.
type Service struct {
	repo       Repository
	codec      TokenCodec
	publisher  events.Publisher
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, codec TokenCodec, publisher events.Publisher, bcryptCost int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if bcryptCost <= 0 {
		bcryptCost = DefaultBCryptCost
	}
	return &Service{
		repo:       repo,
		codec:      codec,
		publisher:  publisher,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, dto.Email); err == nil {
		return nil, internal.ErrEmailTaken
	} else if !errors.Is(err, internal.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Email:        dto.Email,
		Name:         dto.Name,
		PasswordHash: hash,
		Role:         Role(dto.Role),
	}
	// the unique index still decides races between concurrent registrations
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", u.ID, "role", u.Role)
	s.publish(ctx, events.NewUserRegisteredEvent(u.ID, u.Email, string(u.Role)))

	return u, nil
}

func (s *Service) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(u.PasswordHash, dto.Password) {
		s.logger.WarnContext(ctx, "login rejected: password mismatch", "user_id", u.ID)
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(u.Identity())
	if err != nil {
		return nil, internal.NewInternalError("failed to sign token", err)
	}

	return &LoginResponse{Token: token, User: u}, nil
}

func (s *Service) Me(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSync(ctx, ev); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event", "event_type", ev.EventType(), "error", err)
	}
}
