// Package lookup resolves barcodes, text queries and food photos into
// nutrition candidates through the external providers.
package lookup

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

type barcodeProvider interface {
	LookupBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error)
}

type foodProvider interface {
	SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error)
}

type photoRecognizer interface {
	Recognize(ctx context.Context, imageBase64 string) ([]domain.RecognizedLabel, error)
}

type lookupCache interface {
	GetBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error)
	SetBarcode(ctx context.Context, code string, cand *domain.FoodCandidate) error
	GetSearch(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error)
	SetSearch(ctx context.Context, query string, limit int, cands []domain.FoodCandidate) error
}

type profileRepo interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error)
	ConsumePhotoLookup(ctx context.Context, ownerID uuid.UUID, month string, limit int) (int, error)
}

// Deps groups the collaborators of the lookup service. Foods and Photos are
// nil when their API keys are not configured; Cache is nil when disabled.
type Deps struct {
	Barcodes barcodeProvider
	Foods    foodProvider
	Photos   photoRecognizer
	Cache    lookupCache
	Profiles profileRepo
}

// Service implements the lookup flows.
type Service struct {
	log      *slog.Logger
	barcodes barcodeProvider
	foods    foodProvider
	photos   photoRecognizer
	cache    lookupCache
	profiles profileRepo
	cfg      config.LookupConfig
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a lookup service. loc decides which month a photo
// lookup is counted against.
func NewService(logger *slog.Logger, deps Deps, cfg config.LookupConfig, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      logger.With("service", "lookup"),
		barcodes: deps.Barcodes,
		foods:    deps.Foods,
		photos:   deps.Photos,
		cache:    deps.Cache,
		profiles: deps.Profiles,
		cfg:      cfg,
		loc:      loc,
		now:      time.Now,
	}
}
