package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// ref identifies the row in the message and may be empty.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, ref any) error {
	if err == nil {
		return nil
	}

	label := entity
	if ref != nil && fmt.Sprint(ref) != "" {
		label = fmt.Sprintf("%s %v", entity, ref)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", label, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
		case "23514": // check_violation
			field := pgErr.ConstraintName
			if field == "" {
				field = entity
			}
			return fmt.Errorf("%s: %w", label, domain.NewValidationError(field, "violates check constraint"))
		}
	}

	return fmt.Errorf("%s: %w", label, err)
}
