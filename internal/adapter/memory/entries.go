// Package memory provides mutex-guarded in-memory stores with the same
// contracts as the PostgreSQL repositories.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Entries is an in-memory nutrition entry store.
type Entries struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]domain.NutritionEntry
}

// NewEntries creates an empty entry store.
func NewEntries() *Entries {
	return &Entries{entries: make(map[uuid.UUID]domain.NutritionEntry)}
}

// Create stores e. A duplicate ID is ErrAlreadyExists.
func (s *Entries) Create(_ context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[e.ID]; ok {
		return nil, fmt.Errorf("nutrition_entry %s: %w", e.ID, domain.ErrAlreadyExists)
	}
	s.entries[e.ID] = *e
	out := *e
	return &out, nil
}

// GetByID returns the entry with id when ownerID owns it, otherwise ErrNotFound.
func (s *Entries) GetByID(_ context.Context, ownerID, id uuid.UUID) (*domain.NutritionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || e.OwnerID != ownerID {
		return nil, fmt.Errorf("nutrition_entry %s: %w", id, domain.ErrNotFound)
	}
	return &e, nil
}

// List returns the page selected by f and the total number of matches.
func (s *Entries) List(_ context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error) {
	s.mu.RLock()
	all := make([]domain.NutritionEntry, 0, len(s.entries))
	for _, e := range s.entries {
		all = append(all, e)
	}
	s.mu.RUnlock()

	page, total := f.Apply(all)
	return page, total, nil
}

// Update replaces an owned entry, keeping its CreatedAt.
func (s *Entries) Update(_ context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.entries[e.ID]
	if !ok || cur.OwnerID != e.OwnerID {
		return nil, fmt.Errorf("nutrition_entry %s: %w", e.ID, domain.ErrNotFound)
	}
	updated := *e
	updated.CreatedAt = cur.CreatedAt
	s.entries[e.ID] = updated
	return &updated, nil
}

// Delete removes an owned entry and reports whether one was removed.
func (s *Entries) Delete(_ context.Context, ownerID, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || e.OwnerID != ownerID {
		return false, nil
	}
	delete(s.entries, id)
	return true, nil
}

// Clear removes every entry matching f and returns how many went.
func (s *Entries) Clear(_ context.Context, f domain.EntryFilter) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, e := range s.entries {
		if f.Matches(&e) {
			delete(s.entries, id)
			n++
		}
	}
	return n, nil
}

// ReplaceAll swaps every entry of ownerID for entries. An ID held by another
// owner is refused with ErrAlreadyExists and nothing is changed.
func (s *Entries) ReplaceAll(_ context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range entries {
		if cur, ok := s.entries[entries[i].ID]; ok && cur.OwnerID != ownerID {
			return fmt.Errorf("nutrition_entry %s: %w", entries[i].ID, domain.ErrAlreadyExists)
		}
	}
	for id, e := range s.entries {
		if e.OwnerID == ownerID {
			delete(s.entries, id)
		}
	}
	for _, e := range entries {
		e.OwnerID = ownerID
		s.entries[e.ID] = e
	}
	return nil
}
