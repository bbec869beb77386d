// Package profile manages the per-user profile and preferences.
package profile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type profileRepo interface {
	Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

// Service implements profile read and update operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	profiles   profileRepo
	photoQuota int
	loc        *time.Location
	now        func() time.Time
}

// NewService creates a profile service. users may be nil for stores without
// accounts, such as the offline snapshot store.
func NewService(logger *slog.Logger, users userRepo, profiles profileRepo, photoQuota int, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:        logger.With("service", "profile"),
		users:      users,
		profiles:   profiles,
		photoQuota: photoQuota,
		loc:        loc,
		now:        time.Now,
	}
}
