// Package profile implements the UserProfile repository using PostgreSQL.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/scanplate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	profileColumns = `user_id, name, age, gender, height, weight, activity_level, calorie_goal,
dark_mode, language, units, notifications, photo_lookups_used, photo_lookups_month,
created_at, updated_at`

	createProfileSQL = `
INSERT INTO user_profiles (user_id, name, age, gender, height, weight, activity_level, calorie_goal,
                           dark_mode, language, units, notifications)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + profileColumns

	getProfileSQL = `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	updateProfileSQL = `
UPDATE user_profiles SET
    name = $2, age = $3, gender = $4, height = $5, weight = $6, activity_level = $7,
    calorie_goal = $8, dark_mode = $9, language = $10, units = $11, notifications = $12,
    updated_at = now()
WHERE user_id = $1
RETURNING ` + profileColumns

	// consumePhotoSQL increments the monthly counter, resetting it when the
	// stored month differs. No row is returned when the limit is reached.
	consumePhotoSQL = `
UPDATE user_profiles SET
    photo_lookups_used = CASE WHEN photo_lookups_month = $2 THEN photo_lookups_used + 1 ELSE 1 END,
    photo_lookups_month = $2
WHERE user_id = $1
  AND ($3 = 0 OR photo_lookups_month <> $2 OR photo_lookups_used < $3)
RETURNING photo_lookups_used`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM user_profiles WHERE user_id = $1)`
)

type profileRow struct {
	UserID            uuid.UUID `db:"user_id"`
	Name              string    `db:"name"`
	Age               *int      `db:"age"`
	Gender            *string   `db:"gender"`
	Height            *float64  `db:"height"`
	Weight            *float64  `db:"weight"`
	ActivityLevel     string    `db:"activity_level"`
	CalorieGoal       int       `db:"calorie_goal"`
	DarkMode          bool      `db:"dark_mode"`
	Language          string    `db:"language"`
	Units             string    `db:"units"`
	Notifications     bool      `db:"notifications"`
	PhotoLookupsUsed  int       `db:"photo_lookups_used"`
	PhotoLookupsMonth string    `db:"photo_lookups_month"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r profileRow) toDomain() *domain.UserProfile {
	p := &domain.UserProfile{
		OwnerID:           r.UserID,
		Name:              r.Name,
		Age:               r.Age,
		Height:            r.Height,
		Weight:            r.Weight,
		ActivityLevel:     domain.ActivityLevel(r.ActivityLevel),
		CalorieGoal:       r.CalorieGoal,
		DarkMode:          r.DarkMode,
		Language:          r.Language,
		Units:             domain.Units(r.Units),
		Notifications:     r.Notifications,
		PhotoLookupsUsed:  r.PhotoLookupsUsed,
		PhotoLookupsMonth: r.PhotoLookupsMonth,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		p.Gender = &g
	}
	return p
}

func genderArg(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts the profile of a newly registered user.
func (r *Repo) Create(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	var row profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createProfileSQL,
		p.OwnerID, p.Name, p.Age, genderArg(p.Gender), p.Height, p.Weight,
		string(p.ActivityLevel), p.CalorieGoal, p.DarkMode, p.Language, string(p.Units), p.Notifications,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", p.OwnerID)
	}
	return row.toDomain(), nil
}

// GetByOwner returns the profile of ownerID.
func (r *Repo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.UserProfile, error) {
	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getProfileSQL, ownerID); err != nil {
		return nil, postgres.MapError(err, "user_profile", ownerID)
	}
	return row.toDomain(), nil
}

// Update overwrites the editable fields of p. Quota counters are untouched.
func (r *Repo) Update(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error) {
	var row profileRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, updateProfileSQL,
		p.OwnerID, p.Name, p.Age, genderArg(p.Gender), p.Height, p.Weight,
		string(p.ActivityLevel), p.CalorieGoal, p.DarkMode, p.Language, string(p.Units), p.Notifications,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", p.OwnerID)
	}
	return row.toDomain(), nil
}

// ConsumePhotoLookup atomically records one photo lookup for month ("YYYY-MM")
// and returns the updated usage. A limit of 0 means unlimited.
// Returns domain.ErrQuotaExceeded when the month's allowance is spent.
func (r *Repo) ConsumePhotoLookup(ctx context.Context, ownerID uuid.UUID, month string, limit int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var used int
	err := q.QueryRow(ctx, consumePhotoSQL, ownerID, month, limit).Scan(&used)
	if err == nil {
		return used, nil
	}

	mapped := postgres.MapError(err, "user_profile", ownerID)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return 0, mapped
	}

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, ownerID).Scan(&exists); err != nil {
		return 0, postgres.MapError(err, "user_profile", ownerID)
	}
	if exists {
		return 0, domain.ErrQuotaExceeded
	}
	return 0, mapped
}
