package lookup

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	MaxPhotoLabels     = 50
)

// SearchInput is a free-text food query.
type SearchInput struct {
	Query string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *SearchInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	switch {
	case q == "":
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	case len(q) > 200:
		errs = append(errs, domain.FieldError{Field: "query", Message: "must be at most 200 characters"})
	}
	if i.Limit < 0 || i.Limit > MaxSearchLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PhotoInput is a base64 encoded food photo. Nil Threshold and MaxLabels
// fall back to the configured defaults.
type PhotoInput struct {
	Image     string
	Threshold *float64
	MaxLabels *int
}

// Validate checks all fields and collects all errors.
func (i *PhotoInput) Validate() error {
	var errs []domain.FieldError

	if i.Image == "" {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	} else if _, err := base64.StdEncoding.DecodeString(stripDataURL(i.Image)); err != nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "must be base64 encoded"})
	}
	if i.Threshold != nil && (*i.Threshold <= 0 || *i.Threshold > 1) {
		errs = append(errs, domain.FieldError{Field: "threshold", Message: "must be greater than 0 and at most 1"})
	}
	if i.MaxLabels != nil && (*i.MaxLabels < 1 || *i.MaxLabels > MaxPhotoLabels) {
		errs = append(errs, domain.FieldError{Field: "max_labels", Message: "must be between 1 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// stripDataURL removes a "data:image/...;base64," prefix and whitespace.
func stripDataURL(s string) string {
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// validBarcode reports whether code is 1-50 ASCII digits.
func validBarcode(code string) bool {
	if code == "" || len(code) > 50 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
