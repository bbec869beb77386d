// Package stats aggregates nutrition entries into daily, periodic and
// per-category statistics. Every call reads one snapshot of the owner's
// entries; nothing is cached.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	maxWindowDays        = 31
	defaultFrequentLimit = 10
	maxFrequentLimit     = 100
)

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error)
}

type profileRepo interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)
}

// Service computes statistics for the owner found in the context.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	profiles profileRepo
	cfg      config.StatsConfig
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a stats service.
func NewService(logger *slog.Logger, entries entryRepo, profiles profileRepo, cfg config.StatsConfig) *Service {
	return &Service{
		log:      logger.With("service", "stats"),
		entries:  entries,
		profiles: profiles,
		cfg:      cfg,
		loc:      cfg.Location(),
		now:      time.Now,
	}
}

// Location returns the reference timezone of calendar days.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Today returns midnight of the current day in the reference timezone.
func (s *Service) Today() time.Time {
	return domain.DayStart(s.now(), s.loc)
}
