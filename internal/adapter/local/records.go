package local

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// entryRecord is the persisted shape of one entry inside the "meals" array.
type entryRecord struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Calories    float64   `json:"calories"`
	Proteins    float64   `json:"proteins"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Fiber       float64   `json:"fiber"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	MealType    *string   `json:"meal_type,omitempty"`
	Source      string    `json:"source"`
	Barcode     *string   `json:"barcode,omitempty"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Confidence  *float64  `json:"confidence,omitempty"`
	ConsumedAt  time.Time `json:"consumed_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRecord(e domain.NutritionEntry) entryRecord {
	r := entryRecord{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Name:        e.Name,
		Calories:    e.Nutrients.Calories,
		Proteins:    e.Nutrients.Proteins,
		Carbs:       e.Nutrients.Carbs,
		Fats:        e.Nutrients.Fats,
		Fiber:       e.Nutrients.Fiber,
		ServingSize: e.ServingSize,
		ServingUnit: e.ServingUnit,
		Source:      string(e.Source),
		Barcode:     e.Barcode,
		PhotoURL:    e.PhotoRef,
		Confidence:  e.Confidence,
		ConsumedAt:  e.ConsumedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.MealType != nil {
		mt := string(*e.MealType)
		r.MealType = &mt
	}
	return r
}

func (r entryRecord) toDomain() domain.NutritionEntry {
	e := domain.NutritionEntry{
		ID:      r.ID,
		OwnerID: r.OwnerID,
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

// settingsRecord is the persisted profile under the "settings" key.
type settingsRecord struct {
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Age               *int      `json:"age,omitempty"`
	Gender            *string   `json:"gender,omitempty"`
	Height            *float64  `json:"height,omitempty"`
	Weight            *float64  `json:"weight,omitempty"`
	ActivityLevel     string    `json:"activity_level"`
	CalorieGoal       int       `json:"calorie_goal"`
	DarkMode          bool      `json:"dark_mode"`
	Language          string    `json:"language"`
	Units             string    `json:"units"`
	Notifications     bool      `json:"notifications"`
	PhotoLookupsUsed  int       `json:"photo_lookups_used"`
	PhotoLookupsMonth string    `json:"photo_lookups_month,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toSettings(p domain.UserProfile) settingsRecord {
	r := settingsRecord{
		OwnerID:           p.OwnerID,
		Name:              p.Name,
		Age:               p.Age,
		Height:            p.Height,
		Weight:            p.Weight,
		ActivityLevel:     string(p.ActivityLevel),
		CalorieGoal:       p.CalorieGoal,
		DarkMode:          p.DarkMode,
		Language:          p.Language,
		Units:             string(p.Units),
		Notifications:     p.Notifications,
		PhotoLookupsUsed:  p.PhotoLookupsUsed,
		PhotoLookupsMonth: p.PhotoLookupsMonth,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Gender != nil {
		g := string(*p.Gender)
		r.Gender = &g
	}
	return r
}

func (r settingsRecord) toDomain() domain.UserProfile {
	p := domain.UserProfile{
		OwnerID:           r.OwnerID,
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
