package profile

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// UpdateInput is a partial profile update. Nil fields are left unchanged.
type UpdateInput struct {
	domain.ProfilePatch
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if utf8.RuneCountInString(name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must be at most 255 characters"})
		}
	}

	if i.Age != nil && (*i.Age < 1 || *i.Age > 150) {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 1 and 150"})
	}
	if i.Gender != nil && !i.Gender.IsValid() {
		errs = append(errs, domain.FieldError{Field: "gender", Message: "must be one of male, female, other"})
	}
	if i.Height != nil && !inRange(*i.Height, 0, 300) {
		errs = append(errs, domain.FieldError{Field: "height", Message: "must be between 0 and 300"})
	}
	if i.Weight != nil && !inRange(*i.Weight, 0, 500) {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "must be between 0 and 500"})
	}
	if i.ActivityLevel != nil && !i.ActivityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_level", Message: "must be one of sedentary, light, moderate, active, very_active"})
	}
	if i.CalorieGoal != nil && (*i.CalorieGoal < 500 || *i.CalorieGoal > 10000) {
		errs = append(errs, domain.FieldError{Field: "calorie_goal", Message: "must be between 500 and 10000"})
	}
	if i.Language != nil && !validLanguage(*i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "must be a two-letter language code"})
	}
	if i.Units != nil && !i.Units.IsValid() {
		errs = append(errs, domain.FieldError{Field: "units", Message: "must be metric or imperial"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

func validLanguage(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
