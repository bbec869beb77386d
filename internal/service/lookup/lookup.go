package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// Barcode resolves a product barcode, consulting the cache first.
func (s *Service) Barcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	code = strings.TrimSpace(code)
	if !validBarcode(code) {
		return nil, domain.NewValidationError("barcode", "must be 1 to 50 digits")
	}

	if s.cache != nil {
		cached, err := s.cache.GetBarcode(ctx, code)
		if err != nil {
			s.log.WarnContext(ctx, "cache read failed", slog.String("barcode", code), slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	cand, err := s.barcodes.LookupBarcode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("lookup.Barcode: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetBarcode(ctx, code, cand); err != nil {
			s.log.WarnContext(ctx, "cache write failed", slog.String("barcode", code), slog.String("error", err.Error()))
		}
	}
	return cand, nil
}

// Search queries the food database.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]domain.FoodCandidate, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.foods == nil {
		return nil, fmt.Errorf("lookup.Search: food database not configured: %w", domain.ErrExternalService)
	}

	query := strings.TrimSpace(in.Query)
	limit := in.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, query, limit)
		if err != nil {
			s.log.WarnContext(ctx, "cache read failed", slog.String("query", query), slog.String("error", err.Error()))
		} else if cached != nil {
			return cached, nil
		}
	}

	cands, err := s.foods.SearchFoods(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("lookup.Search: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, query, limit, cands); err != nil {
			s.log.WarnContext(ctx, "cache write failed", slog.String("query", query), slog.String("error", err.Error()))
		}
	}
	return cands, nil
}

// Photo recognizes the foods on a photo and resolves each recognized label to
// nutrition values. The call counts against the owner's monthly quota before
// the recognizer is contacted. Labels that cannot be resolved yield estimated
// candidates with zero nutrients; results keep the recognizer's ranking.
func (s *Service) Photo(ctx context.Context, in PhotoInput) ([]domain.FoodCandidate, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if s.photos == nil {
		return nil, fmt.Errorf("lookup.Photo: photo recognition not configured: %w", domain.ErrExternalService)
	}

	month := domain.MonthKey(s.now(), s.loc)
	used, err := s.profiles.ConsumePhotoLookup(ctx, ownerID, month, s.cfg.PhotoMonthlyQuota)
	if err != nil {
		return nil, fmt.Errorf("lookup.Photo: %w", err)
	}

	labels, err := s.photos.Recognize(ctx, stripDataURL(in.Image))
	if err != nil {
		return nil, fmt.Errorf("lookup.Photo: %w", err)
	}

	threshold := s.cfg.PhotoMinConfidence
	if in.Threshold != nil {
		threshold = *in.Threshold
	}
	maxLabels := s.cfg.PhotoMaxLabels
	if in.MaxLabels != nil {
		maxLabels = *in.MaxLabels
	}
	labels = filterLabels(labels, threshold, maxLabels)

	out := s.resolveLabels(ctx, labels)

	s.log.InfoContext(ctx, "photo analyzed",
		slog.String("user_id", ownerID.String()),
		slog.Int("labels", len(labels)),
		slog.Int("quota_used", used),
	)
	return out, nil
}

// Quota reports the owner's photo usage for the current month.
func (s *Service) Quota(ctx context.Context) (*domain.PhotoQuota, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("lookup.Quota: %w", err)
	}

	q := p.PhotoQuota(domain.MonthKey(s.now(), s.loc), s.cfg.PhotoMonthlyQuota)
	return &q, nil
}

// filterLabels keeps labels at or above threshold, capped to maxLabels, in
// their original order.
func filterLabels(labels []domain.RecognizedLabel, threshold float64, maxLabels int) []domain.RecognizedLabel {
	out := make([]domain.RecognizedLabel, 0, min(len(labels), max(maxLabels, 0)))
	for _, l := range labels {
		if len(out) >= maxLabels {
			break
		}
		if l.Confidence >= threshold {
			out = append(out, l)
		}
	}
	return out
}

// resolveLabels looks up every label concurrently. A label failure is logged
// and replaced by an estimated candidate; it never cancels its siblings.
func (s *Service) resolveLabels(ctx context.Context, labels []domain.RecognizedLabel) []domain.FoodCandidate {
	out := make([]domain.FoodCandidate, len(labels))

	var g errgroup.Group
	g.SetLimit(max(s.cfg.LabelConcurrency, 1))
	for i, label := range labels {
		g.Go(func() error {
			cand, err := s.resolveLabel(ctx, label)
			if err != nil {
				s.log.WarnContext(ctx, "label lookup failed, using estimate",
					slog.String("label", label.Name),
					slog.String("error", err.Error()),
				)
				cand = estimatedCandidate(label)
			}
			out[i] = cand
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (s *Service) resolveLabel(ctx context.Context, label domain.RecognizedLabel) (domain.FoodCandidate, error) {
	if s.foods == nil {
		return domain.FoodCandidate{}, fmt.Errorf("food database not configured: %w", domain.ErrExternalService)
	}

	cands, err := s.foods.SearchFoods(ctx, label.Name, 1)
	if err != nil {
		return domain.FoodCandidate{}, err
	}
	if len(cands) == 0 {
		return domain.FoodCandidate{}, fmt.Errorf("food %q: %w", label.Name, domain.ErrNotFound)
	}

	cand := cands[0]
	conf := label.Confidence
	cand.Name = label.Name
	cand.Source = domain.SourcePhoto
	cand.Provider = domain.ProviderClarifai
	cand.Confidence = &conf
	cand.Brand = nil
	return cand, nil
}

func estimatedCandidate(label domain.RecognizedLabel) domain.FoodCandidate {
	conf := label.Confidence
	return domain.FoodCandidate{
		Name:        label.Name,
		Source:      domain.SourcePhoto,
		Provider:    domain.ProviderClarifai,
		Confidence:  &conf,
		ServingSize: domain.DefaultServingSize,
		ServingUnit: domain.DefaultServingUnit,
		Estimated:   true,
	}
}
