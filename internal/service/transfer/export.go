package transfer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

var csvHeader = []string{
	"Date", "Time", "Food", "Calories", "Proteins", "Carbs", "Fats", "Fiber",
	"Meal", "Source", "Barcode", "ServingSize", "ServingUnit",
}

// ExportInput restricts a CSV export to an inclusive range of calendar days.
type ExportInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// WriteCSV writes the owner's entries, newest first, as CSV.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, in ExportInput) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return 0, domain.NewValidationError("end_date", "must not be before start_date")
	}

	f := domain.EntryFilter{OwnerID: ownerID}
	if in.StartDate != nil {
		from, _ := domain.DayBounds(*in.StartDate, s.loc)
		f.From = &from
	}
	if in.EndDate != nil {
		_, to := domain.DayBounds(*in.EndDate, s.loc)
		f.To = &to
	}

	entries, err := s.listAll(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("transfer.WriteCSV: %w", err)
	}

	if err := EncodeCSV(w, entries, s.loc); err != nil {
		return 0, fmt.Errorf("transfer.WriteCSV: %w", err)
	}

	s.log.InfoContext(ctx, "csv exported",
		slog.String("user_id", ownerID.String()),
		slog.Int("entries", len(entries)),
	)
	return len(entries), nil
}

// EncodeCSV writes entries with the export header. Times are rendered in loc.
func EncodeCSV(w io.Writer, entries []domain.NutritionEntry, loc *time.Location) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range entries {
		e := &entries[i]
		local := e.ConsumedAt.In(loc)
		meal := "N/A"
		if e.MealType != nil {
			meal = string(*e.MealType)
		}
		barcode := ""
		if e.Barcode != nil {
			barcode = *e.Barcode
		}

		record := []string{
			local.Format(domain.DateLayout),
			local.Format("15:04"),
			e.Name,
			decimal(e.Nutrients.Calories),
			decimal(e.Nutrients.Proteins),
			decimal(e.Nutrients.Carbs),
			decimal(e.Nutrients.Fats),
			decimal(e.Nutrients.Fiber),
			meal,
			string(e.Source),
			barcode,
			decimal(e.ServingSize),
			e.ServingUnit,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Snapshot returns all entries and the profile of the current owner.
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.listAll(ctx, domain.EntryFilter{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("transfer.Snapshot: %w", err)
	}

	profile, err := s.profile(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("transfer.Snapshot: %w", err)
	}

	return &domain.Snapshot{
		Entries:    entries,
		Profile:    profile,
		ExportedAt: s.now().UTC(),
		Version:    domain.SnapshotVersion,
	}, nil
}

// WriteJSON writes the current owner's snapshot as indented JSON.
func (s *Service) WriteJSON(ctx context.Context, w io.Writer) (int, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	if err := EncodeSnapshot(w, snap, s.loc); err != nil {
		return 0, fmt.Errorf("transfer.WriteJSON: %w", err)
	}
	return len(snap.Entries), nil
}

// EncodeSnapshot writes snap in the JSON export layout.
func EncodeSnapshot(w io.Writer, snap *domain.Snapshot, loc *time.Location) error {
	doc := snapshotDoc{
		Entries:    make([]entryDoc, 0, len(snap.Entries)),
		ExportDate: snap.ExportedAt,
		Version:    snap.Version,
	}
	for i := range snap.Entries {
		doc.Entries = append(doc.Entries, toEntryDoc(&snap.Entries[i], loc))
	}
	if snap.Profile != nil {
		doc.Settings = toSettingsDoc(snap.Profile)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// listAll returns every entry matching f, or a validation error when the
// matches exceed the export cap.
func (s *Service) listAll(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, error) {
	limit := s.opts.Export.MaxEntries
	f.Limit = limit
	entries, total, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if limit > 0 && total > limit {
		return nil, domain.NewValidationError("entries",
			fmt.Sprintf("%d entries exceed the export limit of %d; narrow the date range", total, limit))
	}
	return entries, nil
}

// profile returns the owner's profile, or nil when none exists.
func (s *Service) profile(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	p, err := s.profiles.GetByOwner(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return p, err
}
