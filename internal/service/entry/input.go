package entry

import (
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	DefaultPerPage = 50
	MaxPerPage     = 200
)

// CreateInput holds the fields of a new entry. Zero ServingSize, empty
// ServingUnit and nil ConsumedAt take their defaults; an empty Source is manual.
type CreateInput struct {
	Name        string
	Nutrients   domain.Nutrients
	ServingSize float64
	ServingUnit string
	MealType    *domain.MealType
	Source      domain.EntrySource
	Barcode     *string
	PhotoRef    *string
	Confidence  *float64
	ConsumedAt  *time.Time
}

// ListInput holds listing filters. Dates are inclusive calendar days.
type ListInput struct {
	StartDate    *time.Time
	EndDate      *time.Time
	MealType     *domain.MealType
	MealTypeNone bool
	Source       *domain.EntrySource
	SortOrder    string
	Page         int
	PerPage      int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.PerPage < 0 || i.PerPage > MaxPerPage {
		errs = append(errs, domain.FieldError{Field: "per_page", Message: "must be between 1 and 200"})
	}
	if i.MealType != nil && !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_type", Message: "must be one of breakfast, lunch, dinner, snack"})
	}
	if i.Source != nil && !i.Source.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source", Message: "must be one of barcode, photo, manual"})
	}
	if i.SortOrder != "" && i.SortOrder != domain.SortAsc && i.SortOrder != domain.SortDesc {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be ASC or DESC"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ClearInput selects entries for bulk deletion. A nil Date clears everything.
type ClearInput struct {
	Date *time.Time
}
