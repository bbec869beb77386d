// Package openfoodfacts resolves barcodes through the Open Food Facts API.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	unknownProduct = "Unknown product"
)

// Provider looks up packaged products by barcode.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty baseURL selects the public API.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "openfoodfacts"),
	}
}

// LookupBarcode fetches the product for code and normalizes it into a candidate.
// Returns domain.ErrNotFound when the product is unknown.
func (p *Provider) LookupBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	reqURL := p.baseURL + "/api/v0/product/" + url.PathEscape(code) + ".json"

	p.log.DebugContext(ctx, "openfoodfacts request", slog.String("barcode", code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, provider.RetryDelay, p.log, slog.String("barcode", code))
	if err != nil {
		p.log.ErrorContext(ctx, "openfoodfacts request failed", slog.String("barcode", code), slog.String("error", err.Error()))
		return nil, fmt.Errorf("openfoodfacts: %w: %w", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("product %s: %w", code, domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openfoodfacts: %w: unexpected status %d", domain.ErrExternalService, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts: %w: read body: %w", domain.ErrExternalService, err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("openfoodfacts: %w: decode json: %w", domain.ErrExternalService, err)
	}
	if payload.Status == 0 {
		return nil, fmt.Errorf("product %s: %w", code, domain.ErrNotFound)
	}

	candidate := mapProduct(payload.Product, code)

	p.log.DebugContext(ctx, "openfoodfacts response",
		slog.String("barcode", code),
		slog.String("name", candidate.Name),
		slog.Float64("calories", candidate.Nutrients.Calories),
	)

	return candidate, nil
}

// mapProduct converts the API product to a per-100g candidate.
func mapProduct(prod apiProduct, code string) *domain.FoodCandidate {
	name := firstNonEmpty(prod.ProductName, prod.ProductNameFR, prod.GenericName)
	if name == "" {
		name = unknownProduct
	}

	c := &domain.FoodCandidate{
		Name: name,
		Nutrients: domain.Nutrients{
			Calories: math.Round(prod.Nutriments.value("energy-kcal", "energy_kcal", "energy-kcal_100g")),
			Proteins: domain.Round2(prod.Nutriments.value("proteins", "proteins_100g")),
			Carbs:    domain.Round2(prod.Nutriments.value("carbohydrates", "carbohydrates_100g")),
			Fats:     domain.Round2(prod.Nutriments.value("fat", "fat_100g")),
			Fiber:    domain.Round2(prod.Nutriments.value("fiber", "fiber_100g")),
		},
		Source:      domain.SourceBarcode,
		Provider:    domain.ProviderOpenFoodFacts,
		Barcode:     &code,
		ServingSize: domain.DefaultServingSize,
		ServingUnit: domain.DefaultServingUnit,
	}

	if brand := strings.TrimSpace(prod.Brands); brand != "" {
		c.Brand = &brand
		c.Name = brand + " - " + name
	}
	if img := firstNonEmpty(prod.ImageURL, prod.ImageFrontURL, prod.ImageSmallURL); img != "" {
		c.ImageURL = &img
	}

	return c
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
