package transfer

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// snapshotDoc is the JSON export layout. Legacy exports carry their entries
// under "meals" instead of "entries".
type snapshotDoc struct {
	Entries    []entryDoc   `json:"entries"`
	Settings   *settingsDoc `json:"settings,omitempty"`
	ExportDate time.Time    `json:"exportDate"`
	Version    string       `json:"version"`
}

type portionDoc struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type entryDoc struct {
	ID         string      `json:"id,omitempty"`
	Name       string      `json:"name"`
	Calories   float64     `json:"calories"`
	Proteins   float64     `json:"proteins"`
	Carbs      float64     `json:"carbs"`
	Fats       float64     `json:"fats"`
	Fiber      float64     `json:"fiber"`
	MealType   *string     `json:"mealType,omitempty"`
	Method     string      `json:"method"`
	Barcode    *string     `json:"barcode,omitempty"`
	Photo      *string     `json:"photo,omitempty"`
	Confidence *float64    `json:"confidence,omitempty"`
	Portion    *portionDoc `json:"portion,omitempty"`
	ConsumedAt *time.Time  `json:"consumedAt,omitempty"`
	Date       string      `json:"date,omitempty"`
	Time       string      `json:"time,omitempty"`
	CreatedAt  *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty"`
}

// settingsDoc mirrors the profile. Every field is optional on import.
type settingsDoc struct {
	Name              *string  `json:"name,omitempty"`
	Age               *int     `json:"age,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	ActivityLevel     *string  `json:"activityLevel,omitempty"`
	DailyCalorieGoal  *int     `json:"dailyCalorieGoal,omitempty"`
	DarkMode          *bool    `json:"darkMode,omitempty"`
	Language          *string  `json:"language,omitempty"`
	Units             *string  `json:"units,omitempty"`
	Notifications     *bool    `json:"notifications,omitempty"`
	ClarifaiUsage     *int     `json:"clarifaiUsage,omitempty"`
	ClarifaiResetDate *string  `json:"clarifaiResetDate,omitempty"`
}

func toEntryDoc(e *domain.NutritionEntry, loc *time.Location) entryDoc {
	consumed := e.ConsumedAt.UTC()
	created := e.CreatedAt.UTC()
	updated := e.UpdatedAt.UTC()
	local := e.ConsumedAt.In(loc)

	doc := entryDoc{
		ID:         e.ID.String(),
		Name:       e.Name,
		Calories:   e.Nutrients.Calories,
		Proteins:   e.Nutrients.Proteins,
		Carbs:      e.Nutrients.Carbs,
		Fats:       e.Nutrients.Fats,
		Fiber:      e.Nutrients.Fiber,
		Method:     string(e.Source),
		Barcode:    e.Barcode,
		Photo:      e.PhotoRef,
		Confidence: e.Confidence,
		Portion:    &portionDoc{Quantity: e.ServingSize, Unit: e.ServingUnit},
		ConsumedAt: &consumed,
		Date:       local.Format(domain.DateLayout),
		Time:       local.Format("15:04"),
		CreatedAt:  &created,
		UpdatedAt:  &updated,
	}
	if e.MealType != nil {
		mt := string(*e.MealType)
		doc.MealType = &mt
	}
	return doc
}

// toEntry converts a document into an entry of ownerID. Missing timestamps
// fall back to the legacy date and time fields, then to now. Non-UUID ids
// are replaced. legacy relaxes photo references that are not web URLs.
func (d entryDoc) toEntry(ownerID uuid.UUID, now time.Time, loc *time.Location, legacy bool) domain.NutritionEntry {
	e := domain.NutritionEntry{
		OwnerID: ownerID,
		Name:    strings.TrimSpace(d.Name),
		Nutrients: domain.Nutrients{
			Calories: d.Calories,
			Proteins: d.Proteins,
			Carbs:    d.Carbs,
			Fats:     d.Fats,
			Fiber:    d.Fiber,
		},
		ServingSize: domain.DefaultServingSize,
		ServingUnit: domain.DefaultServingUnit,
		Source:      domain.EntrySource(d.Method),
		Barcode:     d.Barcode,
		PhotoRef:    d.Photo,
		Confidence:  d.Confidence,
		ConsumedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := uuid.Parse(d.ID)
	if err != nil {
		id = uuid.New()
	}
	e.ID = id

	if e.Source == "" {
		e.Source = domain.SourceManual
	}
	if d.MealType != nil && *d.MealType != "" {
		mt := domain.MealType(*d.MealType)
		e.MealType = &mt
	}
	if d.Portion != nil {
		if d.Portion.Quantity != 0 {
			e.ServingSize = d.Portion.Quantity
		}
		if d.Portion.Unit != "" {
			e.ServingUnit = d.Portion.Unit
		}
	}
	if e.Barcode != nil && *e.Barcode == "" {
		e.Barcode = nil
	}
	if legacy {
		if e.PhotoRef != nil && !webURL(*e.PhotoRef) {
			e.PhotoRef = nil
		}
		if e.Source != domain.SourceBarcode {
			e.Barcode = nil
		}
		if e.Source != domain.SourcePhoto {
			e.PhotoRef = nil
			e.Confidence = nil
		}
	}

	switch {
	case d.ConsumedAt != nil:
		e.ConsumedAt = d.ConsumedAt.UTC()
	case d.Date != "":
		if t, ok := parseLegacyTime(d.Date, d.Time, loc); ok {
			e.ConsumedAt = t
		}
	}
	if d.CreatedAt != nil {
		e.CreatedAt = d.CreatedAt.UTC()
	}
	if d.UpdatedAt != nil {
		e.UpdatedAt = d.UpdatedAt.UTC()
	}
	return e
}

func parseLegacyTime(date, clock string, loc *time.Location) (time.Time, bool) {
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation(domain.DateLayout+" 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func webURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func toSettingsDoc(p *domain.UserProfile) *settingsDoc {
	doc := &settingsDoc{
		Age:               p.Age,
		Height:            p.Height,
		Weight:            p.Weight,
		ActivityLevel:     (*string)(&p.ActivityLevel),
		DailyCalorieGoal:  &p.CalorieGoal,
		DarkMode:          &p.DarkMode,
		Language:          &p.Language,
		Units:             (*string)(&p.Units),
		Notifications:     &p.Notifications,
		ClarifaiUsage:     &p.PhotoLookupsUsed,
		ClarifaiResetDate: &p.PhotoLookupsMonth,
	}
	if p.Name != "" {
		doc.Name = &p.Name
	}
	if p.Gender != nil {
		g := string(*p.Gender)
		doc.Gender = &g
	}
	return doc
}

// patch converts imported settings into a profile patch. Usage counters are
// not part of it: an import never resets the photo quota.
func (d *settingsDoc) patch() domain.ProfilePatch {
	p := domain.ProfilePatch{
		Name:          d.Name,
		Age:           d.Age,
		Height:        d.Height,
		Weight:        d.Weight,
		CalorieGoal:   d.DailyCalorieGoal,
		DarkMode:      d.DarkMode,
		Language:      d.Language,
		Notifications: d.Notifications,
	}
	if d.Gender != nil {
		g := domain.Gender(*d.Gender)
		p.Gender = &g
	}
	if d.ActivityLevel != nil {
		a := domain.ActivityLevel(*d.ActivityLevel)
		p.ActivityLevel = &a
	}
	if d.Units != nil {
		u := domain.Units(*d.Units)
		p.Units = &u
	}
	return p
}
