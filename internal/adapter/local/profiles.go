package local

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Profiles stores the single local profile under the "settings" key.
type Profiles struct {
	s *Store
}

func (r *Profiles) current(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	var rec settingsRecord
	found, err := r.s.load(ctx, keySettings, &rec)
	if err != nil {
		return nil, err
	}
	if !found || rec.OwnerID != ownerID {
		return nil, fmt.Errorf("user_profile %s: %w", ownerID, domain.ErrNotFound)
	}
	p := rec.toDomain()
	return &p, nil
}

// Create stores p, replacing settings left by a different owner.
func (r *Profiles) Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, err := r.current(ctx, p.OwnerID); err == nil {
		return nil, fmt.Errorf("user_profile %s: %w", p.OwnerID, domain.ErrAlreadyExists)
	}

	stored := *p
	now := time.Now().UTC()
	stored.CreatedAt, stored.UpdatedAt = now, now
	if err := r.s.save(ctx, keySettings, toSettings(stored)); err != nil {
		return nil, fmt.Errorf("local.Profiles.Create: %w", err)
	}
	return &stored, nil
}

// GetByOwner returns the stored settings when they belong to ownerID.
func (r *Profiles) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, err := r.current(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("local.Profiles.GetByOwner: %w", err)
	}
	return p, nil
}

// Update overwrites editable fields; quota counters and CreatedAt are kept.
func (r *Profiles) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, err := r.current(ctx, p.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("local.Profiles.Update: %w", err)
	}

	updated := *p
	updated.PhotoLookupsUsed = cur.PhotoLookupsUsed
	updated.PhotoLookupsMonth = cur.PhotoLookupsMonth
	updated.CreatedAt = cur.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	if err := r.s.save(ctx, keySettings, toSettings(updated)); err != nil {
		return nil, fmt.Errorf("local.Profiles.Update: %w", err)
	}
	return &updated, nil
}

// ConsumePhotoLookup counts one photo lookup against month and returns the
// new count. ErrQuotaExceeded when limit is already reached.
func (r *Profiles) ConsumePhotoLookup(ctx context.Context, ownerID uuid.UUID, month string, limit int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, err := r.current(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("local.Profiles.ConsumePhotoLookup: %w", err)
	}
	used := p.PhotoUsage(month)
	if limit > 0 && used >= limit {
		return 0, domain.ErrQuotaExceeded
	}
	p.PhotoLookupsUsed = used + 1
	p.PhotoLookupsMonth = month
	if err := r.s.save(ctx, keySettings, toSettings(*p)); err != nil {
		return 0, fmt.Errorf("local.Profiles.ConsumePhotoLookup: %w", err)
	}
	return p.PhotoLookupsUsed, nil
}
