package openfoodfacts

import (
	"encoding/json"
	"strconv"
)

// apiResponse is the product endpoint payload. Status 0 means unknown barcode.
type apiResponse struct {
	Status        int        `json:"status"`
	StatusVerbose string     `json:"status_verbose"`
	Code          string     `json:"code"`
	Product       apiProduct `json:"product"`
}

type apiProduct struct {
	ProductName   string        `json:"product_name"`
	ProductNameFR string        `json:"product_name_fr"`
	GenericName   string        `json:"generic_name"`
	Brands        string        `json:"brands"`
	ImageURL      string        `json:"image_url"`
	ImageFrontURL string        `json:"image_front_url"`
	ImageSmallURL string        `json:"image_small_url"`
	Nutriments    apiNutriments `json:"nutriments"`
}

// apiNutriments holds raw nutriment values. Open Food Facts serves them as
// numbers or numeric strings depending on the product.
type apiNutriments map[string]any

// value returns the first non-zero numeric value among keys.
func (n apiNutriments) value(keys ...string) float64 {
	for _, k := range keys {
		raw, ok := n[k]
		if !ok {
			continue
		}
		var v float64
		switch x := raw.(type) {
		case float64:
			v = x
		case json.Number:
			v, _ = x.Float64()
		case string:
			v, _ = strconv.ParseFloat(x, 64)
		}
		if v != 0 {
			return v
		}
	}
	return 0
}
