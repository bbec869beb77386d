package domain

// MealType classifies an entry into a meal of the day.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// MealTypes lists the known meal types in display order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// EntrySource records how an entry was captured.
type EntrySource string

const (
	SourceBarcode EntrySource = "barcode"
	SourcePhoto   EntrySource = "photo"
	SourceManual  EntrySource = "manual"
)

// EntrySources lists the known sources in display order.
var EntrySources = []EntrySource{SourceBarcode, SourcePhoto, SourceManual}

func (s EntrySource) String() string { return string(s) }

func (s EntrySource) IsValid() bool {
	switch s {
	case SourceBarcode, SourcePhoto, SourceManual:
		return true
	}
	return false
}

// ActivityLevel is the self-reported physical activity level of a user.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

func (a ActivityLevel) String() string { return string(a) }

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Gender is an optional demographic attribute of a profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Units is the preferred measurement system for display.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

func (u Units) String() string { return string(u) }

func (u Units) IsValid() bool {
	return u == UnitsMetric || u == UnitsImperial
}

// LookupProvider identifies the external service a candidate came from.
type LookupProvider string

const (
	ProviderOpenFoodFacts LookupProvider = "openfoodfacts"
	ProviderUSDA          LookupProvider = "usda"
	ProviderClarifai      LookupProvider = "clarifai"
)

func (p LookupProvider) String() string { return string(p) }
