package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

// DailyTotal returns the totals of one calendar day.
func (s *Service) DailyTotal(ctx context.Context, date time.Time) (*domain.DayTotal, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.listDays(ctx, ownerID, date, 1)
	if err != nil {
		return nil, fmt.Errorf("stats.DailyTotal: %w", err)
	}
	total := DayTotal(entries, date, s.loc)
	return &total, nil
}

// GoalProgress compares one day's calories against goal.
func (s *Service) GoalProgress(ctx context.Context, date time.Time, goal int) (*domain.GoalProgress, error) {
	total, err := s.DailyTotal(ctx, date)
	if err != nil {
		return nil, err
	}
	p, err := GoalProgress(total.Totals.Calories, goal)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Daily returns totals, goal progress against the profile goal and the meal
// breakdown of one day.
func (s *Service) Daily(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.listDays(ctx, ownerID, date, 1)
	if err != nil {
		return nil, fmt.Errorf("stats.Daily: %w", err)
	}
	goal, err := s.calorieGoal(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("stats.Daily: %w", err)
	}

	total := DayTotal(entries, date, s.loc)
	progress, err := GoalProgress(total.Totals.Calories, goal)
	if err != nil {
		return nil, err
	}

	return &domain.DailySummary{
		Date:     total.Date,
		Totals:   total.Totals,
		Count:    total.EntryCount,
		Progress: progress,
		ByMeal:   ByMealType(entries),
	}, nil
}

// Weekly returns days consecutive buckets ending at endDate. Zero days uses
// the configured window.
func (s *Service) Weekly(ctx context.Context, endDate time.Time, days int) (*domain.PeriodStats, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if days == 0 {
		days = s.cfg.WindowDays
	}
	if days < 1 || days > maxWindowDays {
		return nil, domain.NewValidationError("days", "must be between 1 and 31")
	}

	start := domain.AddDays(domain.DayStart(endDate, s.loc), -(days - 1), s.loc)
	entries, err := s.listDays(ctx, ownerID, start, days)
	if err != nil {
		return nil, fmt.Errorf("stats.Weekly: %w", err)
	}

	period := Period(Buckets(entries, start, days, s.loc), s.cfg.AverageOverEmptyDays)
	return &period, nil
}

// Monthly returns one bucket per day of the calendar month.
func (s *Service) Monthly(ctx context.Context, year int, month time.Month) (*domain.PeriodStats, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	start := domain.MonthStart(year, month, s.loc)
	days := domain.DaysIn(year, month)
	entries, err := s.listDays(ctx, ownerID, start, days)
	if err != nil {
		return nil, fmt.Errorf("stats.Monthly: %w", err)
	}

	period := Period(Buckets(entries, start, days, s.loc), s.cfg.AverageOverEmptyDays)
	return &period, nil
}

// ByMealType groups one day's entries by meal type.
func (s *Service) ByMealType(ctx context.Context, date time.Time) ([]domain.MealGroup, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.listDays(ctx, ownerID, date, 1)
	if err != nil {
		return nil, fmt.Errorf("stats.ByMealType: %w", err)
	}
	return ByMealType(entries), nil
}

// Methods breaks the owner's whole history down by capture source.
func (s *Service) Methods(ctx context.Context) (*domain.MethodStats, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, _, err := s.entries.List(ctx, domain.EntryFilter{OwnerID: ownerID})
	if err != nil {
		return nil, fmt.Errorf("stats.Methods: %w", err)
	}
	m := Methods(entries)
	return &m, nil
}

// Streak returns the number of consecutive logged days ending today.
func (s *Service) Streak(ctx context.Context) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	_, to := domain.DayBounds(s.now(), s.loc)
	entries, _, err := s.entries.List(ctx, domain.EntryFilter{OwnerID: ownerID, To: &to})
	if err != nil {
		return 0, fmt.Errorf("stats.Streak: %w", err)
	}
	return Streak(entries, s.now(), s.loc), nil
}

// Frequent ranks the owner's foods by how often they were logged over the
// whole history. A zero limit uses the default of 10.
func (s *Service) Frequent(ctx context.Context, limit int) ([]domain.FrequentFood, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit == 0 {
		limit = defaultFrequentLimit
	}
	if limit < 1 || limit > maxFrequentLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxFrequentLimit))
	}

	entries, _, err := s.entries.List(ctx, domain.EntryFilter{OwnerID: ownerID, SortOrder: domain.SortAsc})
	if err != nil {
		return nil, fmt.Errorf("stats.Frequent: %w", err)
	}
	return MostFrequent(entries, limit), nil
}

// Macros returns the calorie split between macronutrients for one day.
func (s *Service) Macros(ctx context.Context, date time.Time) (*domain.MacroSplit, error) {
	total, err := s.DailyTotal(ctx, date)
	if err != nil {
		return nil, err
	}
	split := Macros(total.Totals)
	return &split, nil
}

// Preview checks whether logging calories on date would exceed the profile goal.
func (s *Service) Preview(ctx context.Context, date time.Time, calories float64) (*domain.CaloriePreview, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if calories < 0 {
		return nil, domain.NewValidationError("calories", "must not be negative")
	}

	entries, err := s.listDays(ctx, ownerID, date, 1)
	if err != nil {
		return nil, fmt.Errorf("stats.Preview: %w", err)
	}
	goal, err := s.calorieGoal(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("stats.Preview: %w", err)
	}

	p, err := Preview(DayTotal(entries, date, s.loc).Totals.Calories, calories, goal)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// listDays loads every entry in the days calendar days starting at start.
func (s *Service) listDays(ctx context.Context, ownerID uuid.UUID, start time.Time, days int) ([]domain.NutritionEntry, error) {
	from := domain.DayStart(start, s.loc)
	to := domain.AddDays(from, days, s.loc).Add(-time.Nanosecond)

	entries, _, err := s.entries.List(ctx, domain.EntryFilter{
		OwnerID:   ownerID,
		From:      &from,
		To:        &to,
		SortOrder: domain.SortAsc,
	})
	return entries, err
}

// calorieGoal returns the profile goal, or the default when the owner has no
// profile or an unset goal.
func (s *Service) calorieGoal(ctx context.Context, ownerID uuid.UUID) (int, error) {
	p, err := s.profiles.GetByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.DebugContext(ctx, "no profile, using default goal", slog.String("user_id", ownerID.String()))
		return domain.DefaultCalorieGoal, nil
	case err != nil:
		return 0, err
	case p.CalorieGoal == 0:
		return domain.DefaultCalorieGoal, nil
	}
	return p.CalorieGoal, nil
}
