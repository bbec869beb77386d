// Package transfer moves an owner's data in and out of the service: CSV and
// JSON exports, JSON snapshot imports and the plain-text statistics report.
package transfer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

type entryRepo interface {
	List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error)
	ReplaceAll(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error
}

type profileRepo interface {
	Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options configures limits and calendar handling.
type Options struct {
	Export     config.ExportConfig
	Stats      config.StatsConfig
	PhotoQuota int
}

// Service implements export, import and reporting.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	profiles profileRepo
	tx       txManager
	opts     Options
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a transfer service.
func NewService(logger *slog.Logger, entries entryRepo, profiles profileRepo, tx txManager, opts Options) *Service {
	return &Service{
		log:      logger.With("service", "transfer"),
		entries:  entries,
		profiles: profiles,
		tx:       tx,
		opts:     opts,
		loc:      opts.Stats.Location(),
		now:      time.Now,
	}
}
