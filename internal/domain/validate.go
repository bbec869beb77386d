package domain

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validate checks the entry invariants and returns a *ValidationError
// listing every violated field, or nil.
func (e *NutritionEntry) Validate() error {
	var errs []FieldError

	name := strings.TrimSpace(e.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	case utf8.RuneCountInString(name) > 255:
		errs = append(errs, FieldError{Field: "name", Message: "must be at most 255 characters"})
	}

	errs = appendNonNegative(errs, "calories", e.Nutrients.Calories)
	errs = appendNonNegative(errs, "proteins", e.Nutrients.Proteins)
	errs = appendNonNegative(errs, "carbs", e.Nutrients.Carbs)
	errs = appendNonNegative(errs, "fats", e.Nutrients.Fats)
	errs = appendNonNegative(errs, "fiber", e.Nutrients.Fiber)

	if e.ServingSize <= 0 || math.IsNaN(e.ServingSize) || math.IsInf(e.ServingSize, 0) {
		errs = append(errs, FieldError{Field: "serving_size", Message: "must be greater than 0"})
	}
	switch {
	case strings.TrimSpace(e.ServingUnit) == "":
		errs = append(errs, FieldError{Field: "serving_unit", Message: "required"})
	case len(e.ServingUnit) > 50:
		errs = append(errs, FieldError{Field: "serving_unit", Message: "must be at most 50 characters"})
	}

	if e.MealType != nil && !e.MealType.IsValid() {
		errs = append(errs, FieldError{Field: "meal_type", Message: "must be one of breakfast, lunch, dinner, snack"})
	}
	if !e.Source.IsValid() {
		errs = append(errs, FieldError{Field: "source", Message: "must be one of barcode, photo, manual"})
	}

	if e.Barcode != nil {
		switch {
		case e.Source != SourceBarcode:
			errs = append(errs, FieldError{Field: "barcode", Message: "only allowed when source is barcode"})
		case *e.Barcode == "" || len(*e.Barcode) > 50:
			errs = append(errs, FieldError{Field: "barcode", Message: "must be 1 to 50 characters"})
		}
	}

	if e.PhotoRef != nil {
		switch {
		case e.Source != SourcePhoto:
			errs = append(errs, FieldError{Field: "photo_url", Message: "only allowed when source is photo"})
		case len(*e.PhotoRef) > 500:
			errs = append(errs, FieldError{Field: "photo_url", Message: "must be at most 500 characters"})
		case !isURL(*e.PhotoRef):
			errs = append(errs, FieldError{Field: "photo_url", Message: "must be a valid URL"})
		}
	}

	if e.Confidence != nil && (*e.Confidence < 0 || *e.Confidence > 1) {
		errs = append(errs, FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if e.ConsumedAt.IsZero() {
		errs = append(errs, FieldError{Field: "consumed_at", Message: "required"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func appendNonNegative(errs []FieldError, field string, v float64) []FieldError {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return append(errs, FieldError{Field: field, Message: "must be a non-negative number"})
	}
	return errs
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
