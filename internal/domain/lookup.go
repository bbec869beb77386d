package domain

// FoodCandidate is a normalized lookup result in the common entry shape,
// not yet stored. Nutrient values are per ServingSize ServingUnit.
type FoodCandidate struct {
	Name        string
	Nutrients   Nutrients
	Source      EntrySource
	Provider    LookupProvider
	Confidence  *float64
	Barcode     *string
	Brand       *string
	ImageURL    *string
	FdcID       *int
	ServingSize float64
	ServingUnit string

	// Estimated marks a fallback whose nutrition could not be resolved.
	Estimated bool
}

// RecognizedLabel is one concept returned by a photo-recognition service.
type RecognizedLabel struct {
	Name       string
	Confidence float64
}

// PhotoQuota reports the monthly photo-recognition allowance of a user.
// Limit 0 means unlimited.
type PhotoQuota struct {
	Month     string
	Used      int
	Limit     int
	Remaining int
}
