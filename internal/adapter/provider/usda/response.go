package usda

type apiSearchResponse struct {
	TotalHits int       `json:"totalHits"`
	Foods     []apiFood `json:"foods"`
}

type apiFood struct {
	FdcID                int           `json:"fdcId"`
	Description          string        `json:"description"`
	LowercaseDescription string        `json:"lowercaseDescription"`
	DataType             string        `json:"dataType"`
	BrandOwner           string        `json:"brandOwner"`
	FoodNutrients        []apiNutrient `json:"foodNutrients"`
}

type apiNutrient struct {
	NutrientID   int     `json:"nutrientId"`
	NutrientName string  `json:"nutrientName"`
	UnitName     string  `json:"unitName"`
	Value        float64 `json:"value"`
}
