// Package entry implements the owner-scoped nutrition entry operations.
package entry

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.NutritionEntry, error)
	List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error)
	Update(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	Clear(ctx context.Context, f domain.EntryFilter) (int, error)
}

// Service implements entry CRUD on behalf of the owner found in the context.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	loc     *time.Location
	now     func() time.Time
}

// NewService creates an entry service. loc defines calendar days for
// date-based clears.
func NewService(logger *slog.Logger, entries entryRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "entry"),
		entries: entries,
		loc:     loc,
		now:     time.Now,
	}
}
