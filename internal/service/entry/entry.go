package entry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// Create stores a new entry for the current owner.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.NutritionEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	e := domain.NutritionEntry{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(in.Name),
		Nutrients:   in.Nutrients,
		ServingSize: in.ServingSize,
		ServingUnit: strings.TrimSpace(in.ServingUnit),
		MealType:    in.MealType,
		Source:      in.Source,
		Barcode:     in.Barcode,
		PhotoRef:    in.PhotoRef,
		Confidence:  in.Confidence,
		ConsumedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if e.ServingSize == 0 {
		e.ServingSize = domain.DefaultServingSize
	}
	if e.ServingUnit == "" {
		e.ServingUnit = domain.DefaultServingUnit
	}
	if e.Source == "" {
		e.Source = domain.SourceManual
	}
	if in.ConsumedAt != nil {
		e.ConsumedAt = in.ConsumedAt.UTC()
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	created, err := s.entries.Create(ctx, &e)
	if err != nil {
		return nil, fmt.Errorf("entry.Create: %w", err)
	}

	s.log.DebugContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("source", string(created.Source)),
	)
	return created, nil
}

// Get returns one entry of the current owner.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.NutritionEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	e, err := s.entries.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("entry.Get: %w", err)
	}
	return e, nil
}

// List returns a page of the current owner's entries, newest first by default.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	page := max(in.Page, 1)
	perPage := in.PerPage
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	f := s.filter(ownerID, in.StartDate, in.EndDate)
	f.MealType = in.MealType
	f.MealTypeNone = in.MealTypeNone
	f.Source = in.Source
	f.SortOrder = in.SortOrder
	f.Limit = perPage
	f.Offset = (page - 1) * perPage

	entries, total, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("entry.List: %w", err)
	}

	return &ListResult{Entries: entries, Total: total, Page: page, PerPage: perPage}, nil
}

// Update applies patch to an entry of the current owner and re-validates it.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.NutritionEntry, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.entries.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("entry.Update: %w", err)
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}
	updated := patch.Apply(*current)
	updated.ConsumedAt = updated.ConsumedAt.UTC()
	updated.UpdatedAt = s.now().UTC()

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.entries.Update(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("entry.Update: %w", err)
	}
	return stored, nil
}

// Delete removes an entry of the current owner and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	deleted, err := s.entries.Delete(ctx, ownerID, id)
	if err != nil {
		return false, fmt.Errorf("entry.Delete: %w", err)
	}
	return deleted, nil
}

// Clear bulk-deletes the current owner's entries, for one calendar day when
// in.Date is set. Returns the number removed.
func (s *Service) Clear(ctx context.Context, in ClearInput) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	f := s.filter(ownerID, in.Date, in.Date)
	n, err := s.entries.Clear(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("entry.Clear: %w", err)
	}

	s.log.InfoContext(ctx, "entries cleared",
		slog.String("user_id", ownerID.String()),
		slog.Int("count", n),
		slog.Bool("single_day", in.Date != nil),
	)
	return n, nil
}

// filter builds an owner filter spanning the calendar days of start and end.
func (s *Service) filter(ownerID uuid.UUID, start, end *time.Time) domain.EntryFilter {
	f := domain.EntryFilter{OwnerID: ownerID}
	if start != nil {
		from, _ := domain.DayBounds(*start, s.loc)
		f.From = &from
	}
	if end != nil {
		_, to := domain.DayBounds(*end, s.loc)
		f.To = &to
	}
	return f
}
