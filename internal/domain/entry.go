package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultServingSize = 100.0
	DefaultServingUnit = "g"
)

// NutritionEntry is one logged food record owned by exactly one user.
type NutritionEntry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Nutrients   Nutrients
	ServingSize float64
	ServingUnit string
	MealType    *MealType
	Source      EntrySource
	Barcode     *string
	PhotoRef    *string
	Confidence  *float64
	ConsumedAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MealKey returns the meal type as a grouping key; unset meal types group under "".
func (e *NutritionEntry) MealKey() string {
	if e.MealType == nil {
		return ""
	}
	return string(*e.MealType)
}

// EntryPatch describes a partial update. Nil fields are left unchanged.
// ClearMealType unsets the meal type; it wins over MealType.
type EntryPatch struct {
	Name          *string
	Calories      *float64
	Proteins      *float64
	Carbs         *float64
	Fats          *float64
	Fiber         *float64
	ServingSize   *float64
	ServingUnit   *string
	MealType      *MealType
	ClearMealType bool
	Source        *EntrySource
	Barcode       *string
	PhotoRef      *string
	ConsumedAt    *time.Time
}

// Apply returns a copy of e with the patch applied.
func (p EntryPatch) Apply(e NutritionEntry) NutritionEntry {
	out := e
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Calories != nil {
		out.Nutrients.Calories = *p.Calories
	}
	if p.Proteins != nil {
		out.Nutrients.Proteins = *p.Proteins
	}
	if p.Carbs != nil {
		out.Nutrients.Carbs = *p.Carbs
	}
	if p.Fats != nil {
		out.Nutrients.Fats = *p.Fats
	}
	if p.Fiber != nil {
		out.Nutrients.Fiber = *p.Fiber
	}
	if p.ServingSize != nil {
		out.ServingSize = *p.ServingSize
	}
	if p.ServingUnit != nil {
		out.ServingUnit = *p.ServingUnit
	}
	if p.MealType != nil {
		mt := *p.MealType
		out.MealType = &mt
	}
	if p.ClearMealType {
		out.MealType = nil
	}
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.Barcode != nil {
		out.Barcode = p.Barcode
	}
	if p.PhotoRef != nil {
		out.PhotoRef = p.PhotoRef
	}
	if p.ConsumedAt != nil {
		out.ConsumedAt = *p.ConsumedAt
	}
	// Source-specific references only survive under their own source.
	if out.Source != SourceBarcode {
		out.Barcode = nil
	}
	if out.Source != SourcePhoto {
		out.PhotoRef = nil
		out.Confidence = nil
	}
	return out
}
