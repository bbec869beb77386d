// Package clarifai recognizes food items in photos with the Clarifai
// model outputs API.
package clarifai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/adapter/provider"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.clarifai.com/v2"
	defaultModel   = "food-item-recognition"
)

// Provider calls a Clarifai recognition model.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. apiKey is sent as "Authorization: Key <apiKey>".
func NewProvider(baseURL, apiKey, model string, timeout time.Duration, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "clarifai"),
	}
}

// Recognize returns the concepts detected in a base64-encoded image, ranked
// as the model returns them. Filtering by confidence is left to the caller.
func (p *Provider) Recognize(ctx context.Context, imageBase64 string) ([]domain.RecognizedLabel, error) {
	payload, err := json.Marshal(apiRequest{
		Inputs: []apiInput{{Data: apiInputData{Image: apiImage{Base64: imageBase64}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("clarifai: encode request: %w", err)
	}

	reqURL := p.baseURL + "/models/" + url.PathEscape(p.model) + "/outputs"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("clarifai: create request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "clarifai request", slog.String("model", p.model), slog.Int("image_bytes", len(imageBase64)))

	resp, err := provider.DoWithRetry(ctx, p.httpClient, req, provider.RetryDelay, p.log, slog.String("model", p.model))
	if err != nil {
		p.log.ErrorContext(ctx, "clarifai request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("clarifai: %w: %w", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clarifai: %w: read body: %w", domain.ErrExternalService, err)
	}

	var out apiResponse
	if resp.StatusCode != http.StatusOK {
		detail := ""
		if json.Unmarshal(body, &out) == nil {
			detail = firstNonEmpty(out.Status.Details, out.Status.Description)
		}
		p.log.ErrorContext(ctx, "clarifai error response",
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail),
		)
		return nil, fmt.Errorf("clarifai: %w: status %d %s", domain.ErrExternalService, resp.StatusCode, detail)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("clarifai: %w: decode json: %w", domain.ErrExternalService, err)
	}

	labels := mapConcepts(out)

	p.log.DebugContext(ctx, "clarifai response", slog.Int("concepts", len(labels)))

	return labels, nil
}

// mapConcepts takes the concepts of the first output.
func mapConcepts(resp apiResponse) []domain.RecognizedLabel {
	if len(resp.Outputs) == 0 {
		return []domain.RecognizedLabel{}
	}
	concepts := resp.Outputs[0].Data.Concepts
	labels := make([]domain.RecognizedLabel, 0, len(concepts))
	for _, c := range concepts {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		labels = append(labels, domain.RecognizedLabel{Name: name, Confidence: c.Value})
	}
	return labels
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
