package local

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// Entries stores nutrition entries as one JSON array under the "meals" key.
type Entries struct {
	s *Store
}

func (r *Entries) all(ctx context.Context) ([]domain.NutritionEntry, error) {
	var records []entryRecord
	if _, err := r.s.load(ctx, keyMeals, &records); err != nil {
		return nil, err
	}
	out := make([]domain.NutritionEntry, len(records))
	for i, rec := range records {
		out[i] = rec.toDomain()
	}
	return out, nil
}

func (r *Entries) write(ctx context.Context, entries []domain.NutritionEntry) error {
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		records[i] = toRecord(e)
	}
	return r.s.save(ctx, keyMeals, records)
}

// Create validates and appends e. A duplicate ID is ErrAlreadyExists.
func (r *Entries) Create(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("local.Entries.Create: %w", err)
	}
	if slices.ContainsFunc(entries, func(x domain.NutritionEntry) bool { return x.ID == e.ID }) {
		return nil, fmt.Errorf("nutrition_entry %s: %w", e.ID, domain.ErrAlreadyExists)
	}

	entries = append(entries, *e)
	if err := r.write(ctx, entries); err != nil {
		return nil, fmt.Errorf("local.Entries.Create: %w", err)
	}
	out := *e
	return &out, nil
}

// GetByID returns the entry with id when ownerID owns it, otherwise ErrNotFound.
func (r *Entries) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.NutritionEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("local.Entries.GetByID: %w", err)
	}
	for _, e := range entries {
		if e.ID == id && e.OwnerID == ownerID {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("nutrition_entry %s: %w", id, domain.ErrNotFound)
}

// List returns the page selected by f and the total number of matches.
func (r *Entries) List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error) {
	r.s.mu.Lock()
	entries, err := r.all(ctx)
	r.s.mu.Unlock()
	if err != nil {
		return nil, 0, fmt.Errorf("local.Entries.List: %w", err)
	}

	page, total := f.Apply(entries)
	return page, total, nil
}

// Update validates and replaces an owned entry, keeping its CreatedAt.
func (r *Entries) Update(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("local.Entries.Update: %w", err)
	}
	idx := slices.IndexFunc(entries, func(x domain.NutritionEntry) bool {
		return x.ID == e.ID && x.OwnerID == e.OwnerID
	})
	if idx < 0 {
		return nil, fmt.Errorf("nutrition_entry %s: %w", e.ID, domain.ErrNotFound)
	}

	updated := *e
	updated.CreatedAt = entries[idx].CreatedAt
	entries[idx] = updated
	if err := r.write(ctx, entries); err != nil {
		return nil, fmt.Errorf("local.Entries.Update: %w", err)
	}
	return &updated, nil
}

// Delete removes an owned entry and reports whether one was removed.
func (r *Entries) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.all(ctx)
	if err != nil {
		return false, fmt.Errorf("local.Entries.Delete: %w", err)
	}
	kept := slices.DeleteFunc(entries, func(x domain.NutritionEntry) bool {
		return x.ID == id && x.OwnerID == ownerID
	})
	if len(kept) == len(entries) {
		return false, nil
	}
	if err := r.write(ctx, kept); err != nil {
		return false, fmt.Errorf("local.Entries.Delete: %w", err)
	}
	return true, nil
}

// Clear removes every entry matching f and returns how many went.
func (r *Entries) Clear(ctx context.Context, f domain.EntryFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entries, err := r.all(ctx)
	if err != nil {
		return 0, fmt.Errorf("local.Entries.Clear: %w", err)
	}
	before := len(entries)
	kept := slices.DeleteFunc(entries, func(x domain.NutritionEntry) bool { return f.Matches(&x) })
	removed := before - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.write(ctx, kept); err != nil {
		return 0, fmt.Errorf("local.Entries.Clear: %w", err)
	}
	return removed, nil
}

// ReplaceAll swaps every entry of ownerID for entries in a single write.
func (r *Entries) ReplaceAll(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error {
	for i := range entries {
		entries[i].OwnerID = ownerID
		if err := entries[i].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, err := r.all(ctx)
	if err != nil {
		return fmt.Errorf("local.Entries.ReplaceAll: %w", err)
	}
	kept := slices.DeleteFunc(current, func(x domain.NutritionEntry) bool { return x.OwnerID == ownerID })
	kept = append(kept, entries...)
	if err := r.write(ctx, kept); err != nil {
		return fmt.Errorf("local.Entries.ReplaceAll: %w", err)
	}
	return nil
}
