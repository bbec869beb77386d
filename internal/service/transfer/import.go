package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	profilesvc "github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// ImportResult summarizes a completed import.
type ImportResult struct {
	Entries          int
	SettingsRestored bool
}

// decoded is a parsed snapshot ready to be stored.
type decoded struct {
	entries  []entryDoc
	settings *settingsDoc
	legacy   bool
}

// decodeSnapshot parses an export. The payload must carry an "entries" or
// legacy "meals" array.
func decodeSnapshot(r io.Reader) (*decoded, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &domain.FormatError{Reason: "payload is not a JSON object"}
	}

	out := &decoded{}
	list, ok := raw["entries"]
	if !ok {
		list, ok = raw["meals"]
		out.legacy = true
	}
	if !ok || !isArray(list) {
		return nil, &domain.FormatError{Reason: `missing "entries" array`}
	}
	if err := json.Unmarshal(list, &out.entries); err != nil {
		return nil, &domain.FormatError{Reason: "entries: " + err.Error()}
	}

	if s, ok := raw["settings"]; ok && !bytes.Equal(bytes.TrimSpace(s), []byte("null")) {
		out.settings = &settingsDoc{}
		if err := json.Unmarshal(s, out.settings); err != nil {
			return nil, &domain.FormatError{Reason: "settings: " + err.Error()}
		}
	}
	return out, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// Import replaces the current owner's entries with the snapshot read from r,
// and restores its settings when present. Every entry is validated first;
// nothing is written when any entry is invalid.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	doc, err := decodeSnapshot(r)
	if err != nil {
		return nil, err
	}
	if limit := s.opts.Export.MaxEntries; limit > 0 && len(doc.entries) > limit {
		return nil, domain.NewValidationError("entries", fmt.Sprintf("must contain at most %d entries", limit))
	}

	now := s.now().UTC()
	entries := make([]domain.NutritionEntry, 0, len(doc.entries))
	seen := make(map[uuid.UUID]struct{}, len(doc.entries))
	var fieldErrs []domain.FieldError
	for i, d := range doc.entries {
		e := d.toEntry(ownerID, now, s.loc, doc.legacy)
		if _, dup := seen[e.ID]; dup {
			e.ID = uuid.New()
		}
		seen[e.ID] = struct{}{}

		if err := e.Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					fieldErrs = append(fieldErrs, domain.FieldError{
						Field:   fmt.Sprintf("entries[%d].%s", i, fe.Field),
						Message: fe.Message,
					})
				}
			}
			continue
		}
		entries = append(entries, e)
	}

	var patch *domain.ProfilePatch
	if doc.settings != nil {
		p := doc.settings.patch()
		if err := (profilesvc.UpdateInput{ProfilePatch: p}).Validate(); err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				for _, fe := range ve.Errors {
					fieldErrs = append(fieldErrs, domain.FieldError{Field: "settings." + fe.Field, Message: fe.Message})
				}
			}
		}
		patch = &p
	}

	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.claimIDs(ctx, ownerID, entries); err != nil {
			return err
		}
		if err := s.entries.ReplaceAll(ctx, ownerID, entries); err != nil {
			return fmt.Errorf("replace entries: %w", err)
		}
		if patch != nil {
			if err := s.restoreSettings(ctx, ownerID, *patch, now); err != nil {
				return fmt.Errorf("restore settings: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transfer.Import: %w", err)
	}

	s.log.InfoContext(ctx, "snapshot imported",
		slog.String("user_id", ownerID.String()),
		slog.Int("entries", len(entries)),
		slog.Bool("legacy", doc.legacy),
		slog.Bool("settings", patch != nil),
	)

	return &ImportResult{Entries: len(entries), SettingsRestored: patch != nil}, nil
}

// claimIDs keeps an imported ID only when it names one of the owner's current
// entries. Every other entry gets a fresh ID.
func (s *Service) claimIDs(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error {
	current, _, err := s.entries.List(ctx, domain.EntryFilter{OwnerID: ownerID})
	if err != nil {
		return fmt.Errorf("list current entries: %w", err)
	}
	owned := make(map[uuid.UUID]struct{}, len(current))
	for i := range current {
		owned[current[i].ID] = struct{}{}
	}
	for i := range entries {
		if _, ok := owned[entries[i].ID]; !ok {
			entries[i].ID = uuid.New()
		}
	}
	return nil
}

func (s *Service) restoreSettings(ctx context.Context, ownerID uuid.UUID, patch domain.ProfilePatch, now time.Time) error {
	current, err := s.profiles.GetByOwner(ctx, ownerID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserProfile(ownerID, "")
		current, err = s.profiles.Create(ctx, &def)
	}
	if err != nil {
		return err
	}

	next := patch.Apply(*current)
	next.UpdatedAt = now
	_, err = s.profiles.Update(ctx, &next)
	return err
}
