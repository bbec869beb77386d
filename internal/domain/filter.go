package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Sort orders for entry listings.
const (
	SortDesc = "DESC"
	SortAsc  = "ASC"
)

// EntryFilter restricts an entry listing or bulk delete.
// From and To are inclusive bounds on ConsumedAt; nil means unbounded.
// A zero Limit means no limit.
type EntryFilter struct {
	OwnerID      uuid.UUID
	From         *time.Time
	To           *time.Time
	MealType     *MealType
	MealTypeNone bool // only entries without a meal type
	Source       *EntrySource
	SortOrder    string
	Limit        int
	Offset       int
}

// Matches reports whether e satisfies every criterion of the filter
// other than pagination.
func (f EntryFilter) Matches(e *NutritionEntry) bool {
	if e.OwnerID != f.OwnerID {
		return false
	}
	if f.From != nil && e.ConsumedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.ConsumedAt.After(*f.To) {
		return false
	}
	if f.MealTypeNone && e.MealType != nil {
		return false
	}
	if f.MealType != nil && (e.MealType == nil || *e.MealType != *f.MealType) {
		return false
	}
	if f.Source != nil && e.Source != *f.Source {
		return false
	}
	return true
}

// Ascending reports whether results should be ordered oldest first.
func (f EntryFilter) Ascending() bool {
	return f.SortOrder == SortAsc
}

// Apply filters, orders and paginates entries in memory and returns the page
// together with the total number of matches. The input slice is not modified.
func (f EntryFilter) Apply(entries []NutritionEntry) ([]NutritionEntry, int) {
	matched := make([]NutritionEntry, 0, len(entries))
	for i := range entries {
		if f.Matches(&entries[i]) {
			matched = append(matched, entries[i])
		}
	}

	asc := f.Ascending()
	slices.SortStableFunc(matched, func(a, b NutritionEntry) int {
		c := a.ConsumedAt.Compare(b.ConsumedAt)
		if c == 0 {
			c = a.CreatedAt.Compare(b.CreatedAt)
		}
		if asc {
			return c
		}
		return -c
	})

	total := len(matched)
	start := min(max(f.Offset, 0), total)
	end := total
	if f.Limit > 0 {
		end = min(start+f.Limit, total)
	}
	return matched[start:end], total
}
