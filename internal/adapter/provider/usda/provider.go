// Package usda searches foods in the USDA FoodData Central database.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	defaultBaseURL  = "https://api.nal.usda.gov/fdc/v1"
	defaultPageSize = 25
	unknownFood     = "Unknown"
)

// Nutrient id fallback chains. The first id present on a food wins.
var (
	energyIDs  = []int{1008, 2047, 2048}
	proteinIDs = []int{1003}
	carbIDs    = []int{1005, 1050}
	fatIDs     = []int{1004, 1085}
	fiberIDs   = []int{1079, 2033}
)

// Provider searches the FoodData Central catalogue.
type Provider struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. The API key is sent as the api_key query
// parameter and must come from configuration.
func NewProvider(baseURL, apiKey string, pageSize int, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "usda"),
	}
}

// SearchFoods returns up to limit candidates for query in relevance order.
// A non-positive limit uses the configured page size.
func (p *Provider) SearchFoods(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error) {
	if limit <= 0 || limit > p.pageSize {
		limit = p.pageSize
	}

	params := url.Values{}
	params.Set("api_key", p.apiKey)
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(limit))
	reqURL := p.baseURL + "/foods/search?" + params.Encode()

	p.log.DebugContext(ctx, "usda request", slog.String("query", query), slog.Int("page_size", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("usda: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, provider.RetryDelay, p.log, slog.String("query", query))
	if err != nil {
		// url.Error carries the request URL, which includes the key.
		p.log.ErrorContext(ctx, "usda request failed", slog.String("query", query))
		return nil, fmt.Errorf("usda: %w: request failed", domain.ErrExternalService)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usda: %w: unexpected status %d", domain.ErrExternalService, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("usda: %w: read body: %w", domain.ErrExternalService, err)
	}

	var payload apiSearchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("usda: %w: decode json: %w", domain.ErrExternalService, err)
	}

	out := make([]domain.FoodCandidate, 0, min(len(payload.Foods), limit))
	for _, f := range payload.Foods {
		if len(out) == limit {
			break
		}
		out = append(out, mapFood(f))
	}

	p.log.DebugContext(ctx, "usda response",
		slog.String("query", query),
		slog.Int("total_hits", payload.TotalHits),
		slog.Int("candidates", len(out)),
	)

	return out, nil
}

// mapFood converts a search hit into a per-100g candidate.
func mapFood(f apiFood) domain.FoodCandidate {
	name := strings.TrimSpace(f.Description)
	if name == "" {
		name = strings.TrimSpace(f.LowercaseDescription)
	}
	if name == "" {
		name = unknownFood
	}

	id := f.FdcID
	c := domain.FoodCandidate{
		Name: name,
		Nutrients: domain.Nutrients{
			Calories: math.Round(findNutrient(f.FoodNutrients, energyIDs)),
			Proteins: domain.Round1(findNutrient(f.FoodNutrients, proteinIDs)),
			Carbs:    domain.Round1(findNutrient(f.FoodNutrients, carbIDs)),
			Fats:     domain.Round1(findNutrient(f.FoodNutrients, fatIDs)),
			Fiber:    domain.Round1(findNutrient(f.FoodNutrients, fiberIDs)),
		},
		Source:      domain.SourceManual,
		Provider:    domain.ProviderUSDA,
		FdcID:       &id,
		ServingSize: domain.DefaultServingSize,
		ServingUnit: domain.DefaultServingUnit,
	}
	if owner := strings.TrimSpace(f.BrandOwner); owner != "" {
		c.Brand = &owner
	}
	return c
}

// findNutrient walks ids in order and returns the value of the first nutrient
// present on the food, or 0.
func findNutrient(nutrients []apiNutrient, ids []int) float64 {
	for _, id := range ids {
		for _, n := range nutrients {
			if n.NutrientID == id {
				return n.Value
			}
		}
	}
	return 0
}
