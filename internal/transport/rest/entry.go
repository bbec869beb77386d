package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/entry"
)

type entryService interface {
	Create(ctx context.Context, in entry.CreateInput) (*domain.NutritionEntry, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.NutritionEntry, error)
	List(ctx context.Context, in entry.ListInput) (*entry.ListResult, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.EntryPatch) (*domain.NutritionEntry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Clear(ctx context.Context, in entry.ClearInput) (int, error)
}

// EntryHandler serves /api/nutrition.
type EntryHandler struct {
	svc entryService
	loc *time.Location
	log *slog.Logger
}

// NewEntryHandler creates an EntryHandler. loc interprets date query parameters.
func NewEntryHandler(svc entryService, loc *time.Location, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{svc: svc, loc: loc, log: logger.With("handler", "entry")}
}

type createEntryRequest struct {
	Name        string     `json:"name"`
	Calories    float64    `json:"calories"`
	Proteins    float64    `json:"proteins"`
	Carbs       float64    `json:"carbs"`
	Fats        float64    `json:"fats"`
	Fiber       float64    `json:"fiber"`
	ServingSize float64    `json:"serving_size"`
	ServingUnit string     `json:"serving_unit"`
	MealType    *string    `json:"meal_type"`
	Source      string     `json:"source"`
	Barcode     *string    `json:"barcode"`
	PhotoURL    *string    `json:"photo_url"`
	Confidence  *float64   `json:"confidence"`
	ConsumedAt  *time.Time `json:"consumed_at"`
}

// updateEntryRequest carries a partial update. An empty meal_type clears it.
type updateEntryRequest struct {
	Name        *string    `json:"name"`
	Calories    *float64   `json:"calories"`
	Proteins    *float64   `json:"proteins"`
	Carbs       *float64   `json:"carbs"`
	Fats        *float64   `json:"fats"`
	Fiber       *float64   `json:"fiber"`
	ServingSize *float64   `json:"serving_size"`
	ServingUnit *string    `json:"serving_unit"`
	MealType    *string    `json:"meal_type"`
	Source      *string    `json:"source"`
	Barcode     *string    `json:"barcode"`
	PhotoURL    *string    `json:"photo_url"`
	ConsumedAt  *time.Time `json:"consumed_at"`
}

type paginationResponse struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PerPage  int `json:"per_page"`
	LastPage int `json:"last_page"`
}

type listEntriesResponse struct {
	Entries    []entryResponse    `json:"entries"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /api/nutrition.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	in, err := h.listInput(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.svc.List(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, listEntriesResponse{
		Entries: toEntryResponses(result.Entries),
		Pagination: paginationResponse{
			Total:    result.Total,
			Page:     result.Page,
			PerPage:  result.PerPage,
			LastPage: result.LastPage(),
		},
	})
}

func (h *EntryHandler) listInput(r *http.Request) (entry.ListInput, error) {
	var (
		in   entry.ListInput
		errs []domain.FieldError
		err  error
	)
	q := r.URL.Query()

	collect := func(e error) {
		var ve *domain.ValidationError
		if errors.As(e, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}

	if in.StartDate, err = dateParam(r, "start_date", h.loc); err != nil {
		collect(err)
	}
	if in.EndDate, err = dateParam(r, "end_date", h.loc); err != nil {
		collect(err)
	}
	if in.Page, err = intParam(r, "page"); err != nil {
		collect(err)
	}
	if in.PerPage, err = intParam(r, "per_page"); err != nil {
		collect(err)
	}

	switch m := q.Get("meal_type"); m {
	case "":
	case "none":
		in.MealTypeNone = true
	default:
		mt := domain.MealType(m)
		in.MealType = &mt
	}
	if s := q.Get("source"); s != "" {
		src := domain.EntrySource(s)
		in.Source = &src
	}
	in.SortOrder = strings.ToUpper(q.Get("sort"))

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}

// Create handles POST /api/nutrition.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := entry.CreateInput{
		Name: req.Name,
		Nutrients: domain.Nutrients{
			Calories: req.Calories,
			Proteins: req.Proteins,
			Carbs:    req.Carbs,
			Fats:     req.Fats,
			Fiber:    req.Fiber,
		},
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Source:      domain.EntrySource(req.Source),
		Barcode:     req.Barcode,
		PhotoRef:    req.PhotoURL,
		Confidence:  req.Confidence,
		ConsumedAt:  req.ConsumedAt,
	}
	if req.MealType != nil && *req.MealType != "" {
		mt := domain.MealType(*req.MealType)
		in.MealType = &mt
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeMessage(w, http.StatusCreated, "entry created", toEntryResponse(created))
}

// Get handles GET /api/nutrition/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(e))
}

// Update handles PUT /api/nutrition/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := domain.EntryPatch{
		Name:        req.Name,
		Calories:    req.Calories,
		Proteins:    req.Proteins,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		Fiber:       req.Fiber,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Barcode:     req.Barcode,
		PhotoRef:    req.PhotoURL,
		ConsumedAt:  req.ConsumedAt,
	}
	if req.MealType != nil {
		if *req.MealType == "" {
			patch.ClearMealType = true
		} else {
			mt := domain.MealType(*req.MealType)
			patch.MealType = &mt
		}
	}
	if req.Source != nil {
		src := domain.EntrySource(*req.Source)
		patch.Source = &src
	}

	updated, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "entry updated", toEntryResponse(updated))
}

// Delete handles DELETE /api/nutrition/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeMessage(w, http.StatusOK, "entry deleted", nil)
}

type clearResponse struct {
	Deleted int `json:"deleted"`
}

// Clear handles DELETE /api/nutrition, optionally limited to ?date=.
func (h *EntryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	date, err := dateParam(r, "date", h.loc)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	n, err := h.svc.Clear(r.Context(), entry.ClearInput{Date: date})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeMessage(w, http.StatusOK, "entries cleared", clearResponse{Deleted: n})
}
