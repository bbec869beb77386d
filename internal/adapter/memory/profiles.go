package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Profiles is an in-memory user profile store.
type Profiles struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]domain.UserProfile
	now      func() time.Time
}

// NewProfiles creates an empty profile store.
func NewProfiles() *Profiles {
	return &Profiles{profiles: make(map[uuid.UUID]domain.UserProfile), now: time.Now}
}

// Create stores p. An owner with a profile already gets ErrAlreadyExists.
func (s *Profiles) Create(_ context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.OwnerID]; ok {
		return nil, fmt.Errorf("user_profile %s: %w", p.OwnerID, domain.ErrAlreadyExists)
	}
	stored := *p
	now := s.now().UTC()
	stored.CreatedAt, stored.UpdatedAt = now, now
	s.profiles[p.OwnerID] = stored
	return &stored, nil
}

// GetByOwner returns the owner's profile or ErrNotFound.
func (s *Profiles) GetByOwner(_ context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[ownerID]
	if !ok {
		return nil, fmt.Errorf("user_profile %s: %w", ownerID, domain.ErrNotFound)
	}
	return &p, nil
}

// Update overwrites editable fields; quota counters and CreatedAt are kept.
func (s *Profiles) Update(_ context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.profiles[p.OwnerID]
	if !ok {
		return nil, fmt.Errorf("user_profile %s: %w", p.OwnerID, domain.ErrNotFound)
	}
	updated := *p
	updated.PhotoLookupsUsed = cur.PhotoLookupsUsed
	updated.PhotoLookupsMonth = cur.PhotoLookupsMonth
	updated.CreatedAt = cur.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	s.profiles[p.OwnerID] = updated
	return &updated, nil
}

// ConsumePhotoLookup counts one photo lookup against month and returns the
// new count. ErrQuotaExceeded when limit is already reached.
func (s *Profiles) ConsumePhotoLookup(_ context.Context, ownerID uuid.UUID, month string, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[ownerID]
	if !ok {
		return 0, fmt.Errorf("user_profile %s: %w", ownerID, domain.ErrNotFound)
	}
	used := p.PhotoUsage(month)
	if limit > 0 && used >= limit {
		return 0, domain.ErrQuotaExceeded
	}
	p.PhotoLookupsUsed = used + 1
	p.PhotoLookupsMonth = month
	s.profiles[ownerID] = p
	return p.PhotoLookupsUsed, nil
}

// TxManager runs callbacks directly. Each store call is atomic on its own,
// but writes made before a failing step of fn are not undone.
type TxManager struct{}

// RunInTx calls fn with ctx.
func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
