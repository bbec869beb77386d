// Package entry implements the nutrition entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const table = "nutrition_entries"

// insertChunk bounds the rows per multi-row INSERT so the parameter count
// stays well below PostgreSQL's 65535 limit.
const insertChunk = 500

var columns = []string{
	"id", "user_id", "name",
	"calories", "proteins", "carbs", "fats", "fiber",
	"serving_size", "serving_unit", "meal_type", "source",
	"barcode", "photo_url", "confidence",
	"consumed_at", "created_at", "updated_at",
}

type entryRow struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Calories    float64   `db:"calories"`
	Proteins    float64   `db:"proteins"`
	Carbs       float64   `db:"carbs"`
	Fats        float64   `db:"fats"`
	Fiber       float64   `db:"fiber"`
	ServingSize float64   `db:"serving_size"`
	ServingUnit string    `db:"serving_unit"`
	MealType    *string   `db:"meal_type"`
	Source      string    `db:"source"`
	Barcode     *string   `db:"barcode"`
	PhotoURL    *string   `db:"photo_url"`
	Confidence  *float64  `db:"confidence"`
	ConsumedAt  time.Time `db:"consumed_at"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r entryRow) toDomain() domain.NutritionEntry {
	e := domain.NutritionEntry{
		ID:      r.ID,
		OwnerID: r.UserID,
		Name:    r.Name,
		Nutrients: domain.Nutrients{
			Calories: r.Calories,
			Proteins: r.Proteins,
			Carbs:    r.Carbs,
			Fats:     r.Fats,
			Fiber:    r.Fiber,
		},
		ServingSize: r.ServingSize,
		ServingUnit: r.ServingUnit,
		Source:      domain.EntrySource(r.Source),
		Barcode:     r.Barcode,
		PhotoRef:    r.PhotoURL,
		Confidence:  r.Confidence,
		ConsumedAt:  r.ConsumedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.MealType != nil {
		mt := domain.MealType(*r.MealType)
		e.MealType = &mt
	}
	return e
}

func values(e *domain.NutritionEntry) []any {
	var meal *string
	if e.MealType != nil {
		s := string(*e.MealType)
		meal = &s
	}
	return []any{
		e.ID, e.OwnerID, e.Name,
		e.Nutrients.Calories, e.Nutrients.Proteins, e.Nutrients.Carbs, e.Nutrients.Fats, e.Nutrients.Fiber,
		e.ServingSize, e.ServingUnit, meal, string(e.Source),
		e.Barcode, e.PhotoRef, e.Confidence,
		e.ConsumedAt, e.CreatedAt, e.UpdatedAt,
	}
}

// Repo provides nutrition entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts e and returns the stored row. The caller assigns ID and timestamps.
func (r *Repo) Create(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(values(e)...).
		Suffix("RETURNING " + sqColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "nutrition_entry", e.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns the entry with id owned by ownerID.
// An entry owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.NutritionEntry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "nutrition_entry", id)
	}
	out := row.toDomain()
	return &out, nil
}

// List returns the page of entries matching f and the total number of matches.
func (r *Repo) List(ctx context.Context, f domain.EntryFilter) ([]domain.NutritionEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := whereFilter(f)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "nutrition_entry", nil)
	}
	if total == 0 {
		return []domain.NutritionEntry{}, 0, nil
	}

	listSQL, listArgs, err := paginate(
		psql.Select(columns...).From(table).Where(where).OrderBy(orderBy(f)), f,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, postgres.MapError(err, "nutrition_entry", nil)
	}

	out := make([]domain.NutritionEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, total, nil
}

// Update overwrites the mutable columns of e, scoped to e.OwnerID.
func (r *Repo) Update(ctx context.Context, e *domain.NutritionEntry) (*domain.NutritionEntry, error) {
	var meal *string
	if e.MealType != nil {
		s := string(*e.MealType)
		meal = &s
	}

	query, args, err := psql.Update(table).
		SetMap(map[string]any{
			"name":         e.Name,
			"calories":     e.Nutrients.Calories,
			"proteins":     e.Nutrients.Proteins,
			"carbs":        e.Nutrients.Carbs,
			"fats":         e.Nutrients.Fats,
			"fiber":        e.Nutrients.Fiber,
			"serving_size": e.ServingSize,
			"serving_unit": e.ServingUnit,
			"meal_type":    meal,
			"source":       string(e.Source),
			"barcode":      e.Barcode,
			"photo_url":    e.PhotoRef,
			"confidence":   e.Confidence,
			"consumed_at":  e.ConsumedAt,
			"updated_at":   e.UpdatedAt,
		}).
		Where(sq.Eq{"id": e.ID, "user_id": e.OwnerID}).
		Suffix("RETURNING " + sqColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "nutrition_entry", e.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the entry and reports whether a row owned by ownerID existed.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id, "user_id": ownerID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "nutrition_entry", id)
	}
	return tag.RowsAffected() > 0, nil
}

// Clear deletes every entry matching f, ignoring pagination, and returns the count.
func (r *Repo) Clear(ctx context.Context, f domain.EntryFilter) (int, error) {
	query, args, err := psql.Delete(table).Where(whereFilter(f)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "nutrition_entry", nil)
	}
	return int(tag.RowsAffected()), nil
}

// ReplaceAll deletes every entry of ownerID and inserts entries in their place.
// Run it inside a transaction: a failure midway leaves a partial set otherwise.
func (r *Repo) ReplaceAll(ctx context.Context, ownerID uuid.UUID, entries []domain.NutritionEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	del, delArgs, err := psql.Delete(table).Where(sq.Eq{"user_id": ownerID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := q.Exec(ctx, del, delArgs...); err != nil {
		return postgres.MapError(err, "nutrition_entry", nil)
	}

	for start := 0; start < len(entries); start += insertChunk {
		end := min(start+insertChunk, len(entries))

		ins := psql.Insert(table).Columns(columns...)
		for i := start; i < end; i++ {
			ins = ins.Values(values(&entries[i])...)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "nutrition_entry", nil)
		}
	}
	return nil
}

func sqColumns() string {
	return strings.Join(columns, ", ")
}
