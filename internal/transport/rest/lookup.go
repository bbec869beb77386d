package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/lookup"
)

type lookupService interface {
	Barcode(ctx context.Context, code string) (*domain.FoodCandidate, error)
	Search(ctx context.Context, in lookup.SearchInput) ([]domain.FoodCandidate, error)
	Photo(ctx context.Context, in lookup.PhotoInput) ([]domain.FoodCandidate, error)
	Quota(ctx context.Context) (*domain.PhotoQuota, error)
}

// LookupHandler serves /api/lookup.
type LookupHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(svc lookupService, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{svc: svc, log: logger.With("handler", "lookup")}
}

// Barcode handles GET /api/lookup/barcode/{code}.
func (h *LookupHandler) Barcode(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Barcode(r.Context(), r.PathValue("code"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toCandidate(c))
}

// Foods handles GET /api/lookup/foods?query=&limit=.
func (h *LookupHandler) Foods(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	results, err := h.svc.Search(r.Context(), lookup.SearchInput{
		Query: r.URL.Query().Get("query"),
		Limit: limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toCandidates(results))
}

type photoRequest struct {
	Image     string   `json:"image"`
	Threshold *float64 `json:"threshold"`
	MaxLabels *int     `json:"max_labels"`
}

// Photo handles POST /api/lookup/photo.
func (h *LookupHandler) Photo(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, err := h.svc.Photo(r.Context(), lookup.PhotoInput{
		Image:     req.Image,
		Threshold: req.Threshold,
		MaxLabels: req.MaxLabels,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toCandidates(results))
}

// Quota handles GET /api/lookup/photo/quota.
func (h *LookupHandler) Quota(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Quota(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toQuota(*q))
}
