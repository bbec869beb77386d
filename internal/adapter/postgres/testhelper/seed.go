package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user together with its default profile.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$seeded.hash.not.used.for.login",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	profile := domain.DefaultUserProfile(user.ID, user.Name)
	_, err = pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, name, activity_level, calorie_goal, language, units, notifications)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		profile.OwnerID, profile.Name, string(profile.ActivityLevel), profile.CalorieGoal,
		profile.Language, string(profile.Units), profile.Notifications,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedEntry inserts a manual entry for ownerID consumed at the given time.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, name string, calories float64, consumedAt time.Time) domain.NutritionEntry {
	t.Helper()

	e := domain.NutritionEntry{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Nutrients:   domain.Nutrients{Calories: calories},
		ServingSize: domain.DefaultServingSize,
		ServingUnit: domain.DefaultServingUnit,
		Source:      domain.SourceManual,
		ConsumedAt:  consumedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO nutrition_entries (id, user_id, name, calories, serving_size, serving_unit, source, consumed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.OwnerID, e.Name, e.Nutrients.Calories, e.ServingSize, e.ServingUnit, string(e.Source), e.ConsumedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	return e
}
