package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

type statsService interface {
	Today() time.Time
	Daily(ctx context.Context, date time.Time) (*domain.DailySummary, error)
	Weekly(ctx context.Context, endDate time.Time, days int) (*domain.PeriodStats, error)
	Monthly(ctx context.Context, year int, month time.Month) (*domain.PeriodStats, error)
	ByMealType(ctx context.Context, date time.Time) ([]domain.MealGroup, error)
	Methods(ctx context.Context) (*domain.MethodStats, error)
	Streak(ctx context.Context) (int, error)
	Frequent(ctx context.Context, limit int) ([]domain.FrequentFood, error)
	Macros(ctx context.Context, date time.Time) (*domain.MacroSplit, error)
	Preview(ctx context.Context, date time.Time, calories float64) (*domain.CaloriePreview, error)
}

// StatsHandler serves /api/stats.
type StatsHandler struct {
	svc statsService
	loc *time.Location
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, loc *time.Location, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, loc: loc, log: logger.With("handler", "stats")}
}

// day resolves ?name= to a calendar day, defaulting to today.
func (h *StatsHandler) day(r *http.Request, name string) (time.Time, error) {
	d, err := dateParam(r, name, h.loc)
	if err != nil {
		return time.Time{}, err
	}
	if d == nil {
		return h.svc.Today(), nil
	}
	return *d, nil
}

// Daily handles GET /api/stats/daily?date=.
func (h *StatsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	date, err := h.day(r, "date")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	summary, err := h.svc.Daily(r.Context(), date)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toDaily(summary))
}

// Weekly handles GET /api/stats/weekly?end_date=&days=.
func (h *StatsHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	end, err := h.day(r, "end_date")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	days, err := intParam(r, "days")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	period, err := h.svc.Weekly(r.Context(), end, days)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPeriod(period))
}

// Monthly handles GET /api/stats/monthly?month=YYYY-MM.
func (h *StatsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	month := h.svc.Today()
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := time.ParseInLocation(domain.MonthLayout, raw, h.loc)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("month", "must be in YYYY-MM format"))
			return
		}
		month = m
	}

	period, err := h.svc.Monthly(r.Context(), month.Year(), month.Month())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPeriod(period))
}

// Meals handles GET /api/stats/meals?date=.
func (h *StatsHandler) Meals(w http.ResponseWriter, r *http.Request) {
	date, err := h.day(r, "date")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	groups, err := h.svc.ByMealType(r.Context(), date)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toMealGroups(groups))
}

// Methods handles GET /api/stats/methods.
func (h *StatsHandler) Methods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.svc.Methods(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toMethods(methods))
}

type streakResponse struct {
	Days int `json:"days"`
}

// Streak handles GET /api/stats/streak.
func (h *StatsHandler) Streak(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Streak(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, streakResponse{Days: n})
}

// Frequent handles GET /api/stats/frequent?limit=.
func (h *StatsHandler) Frequent(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	foods, err := h.svc.Frequent(r.Context(), limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toFrequent(foods))
}

// Macros handles GET /api/stats/macros?date=.
func (h *StatsHandler) Macros(w http.ResponseWriter, r *http.Request) {
	date, err := h.day(r, "date")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	split, err := h.svc.Macros(r.Context(), date)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, macrosResponse{
		Date:     date.Format(domain.DateLayout),
		Proteins: split.Proteins,
		Carbs:    split.Carbs,
		Fats:     split.Fats,
	})
}

// Preview handles GET /api/stats/preview?date=&calories=.
func (h *StatsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	date, err := h.day(r, "date")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	calories, err := floatParam(r, "calories")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if calories == nil {
		respondError(w, r, h.log, domain.NewValidationError("calories", "is required"))
		return
	}

	p, err := h.svc.Preview(r.Context(), date, *calories)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toPreview(p))
}
