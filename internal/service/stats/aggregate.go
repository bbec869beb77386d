package stats

import (
	"math"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

// DayTotal sums the entries consumed on the calendar day containing day.
// An empty day yields zero totals.
func DayTotal(entries []domain.NutritionEntry, day time.Time, loc *time.Location) domain.DayTotal {
	from, to := domain.DayBounds(day, loc)
	out := domain.DayTotal{Date: from}
	for i := range entries {
		at := entries[i].ConsumedAt
		if at.Before(from) || at.After(to) {
			continue
		}
		out.Totals = out.Totals.Add(entries[i].Nutrients)
		out.EntryCount++
	}
	out.Totals = out.Totals.Rounded()
	return out
}

// GoalProgress compares consumed calories with goal. A non-positive goal is a
// configuration error.
func GoalProgress(consumed float64, goal int) (domain.GoalProgress, error) {
	if goal <= 0 {
		return domain.GoalProgress{}, &domain.ConfigurationError{Setting: "calorie_goal", Reason: "must be positive"}
	}

	pct := int(math.Round(consumed / float64(goal) * 100))
	return domain.GoalProgress{
		Consumed:   domain.Round2(consumed),
		Goal:       goal,
		Remaining:  domain.Round2(math.Max(0, float64(goal)-consumed)),
		Percentage: min(100, pct),
		Exceeded:   consumed > float64(goal),
	}, nil
}

// Buckets returns exactly days chronological day totals starting at the day
// containing start. Days without entries are zero-filled.
func Buckets(entries []domain.NutritionEntry, start time.Time, days int, loc *time.Location) []domain.DayTotal {
	first := domain.DayStart(start, loc)
	out := make([]domain.DayTotal, days)
	index := make(map[string]int, days)
	for i := range out {
		d := domain.AddDays(first, i, loc)
		out[i].Date = d
		index[d.Format(domain.DateLayout)] = i
	}

	for i := range entries {
		key := entries[i].ConsumedAt.In(loc).Format(domain.DateLayout)
		j, ok := index[key]
		if !ok {
			continue
		}
		out[j].Totals = out[j].Totals.Add(entries[i].Nutrients)
		out[j].EntryCount++
	}
	for i := range out {
		out[i].Totals = out[i].Totals.Rounded()
	}
	return out
}

// Period folds day buckets into totals and averages. With overEmptyDays the
// averages divide by every bucket; otherwise only by days that have entries.
func Period(buckets []domain.DayTotal, overEmptyDays bool) domain.PeriodStats {
	out := domain.PeriodStats{Days: buckets}
	if len(buckets) == 0 {
		return out
	}
	out.Start = buckets[0].Date
	out.End = buckets[len(buckets)-1].Date

	for _, b := range buckets {
		out.Totals = out.Totals.Add(b.Totals)
		out.EntryCount += b.EntryCount
		if b.EntryCount > 0 {
			out.DaysLogged++
		}
	}

	out.AverageDays = out.DaysLogged
	if overEmptyDays {
		out.AverageDays = len(buckets)
	}
	out.Averages = out.Totals.Div(float64(out.AverageDays)).Rounded()
	out.Totals = out.Totals.Rounded()
	return out
}

// ByMealType groups entries by meal type in display order. Entries without a
// meal type form a trailing group with a nil MealType. Empty groups are omitted.
func ByMealType(entries []domain.NutritionEntry) []domain.MealGroup {
	groups := make(map[string]*domain.MealGroup)
	for i := range entries {
		key := entries[i].MealKey()
		g, ok := groups[key]
		if !ok {
			g = &domain.MealGroup{MealType: entries[i].MealType}
			groups[key] = g
		}
		g.Calories += entries[i].Nutrients.Calories
		g.Count++
	}

	out := make([]domain.MealGroup, 0, len(groups))
	for _, mt := range domain.MealTypes {
		if g, ok := groups[string(mt)]; ok {
			g.Calories = domain.Round2(g.Calories)
			out = append(out, *g)
		}
	}
	if g, ok := groups[""]; ok {
		g.Calories = domain.Round2(g.Calories)
		out = append(out, *g)
	}
	return out
}

// Methods counts entries per source. Every known source is reported, and
// percentages use max(total, 1) as denominator.
func Methods(entries []domain.NutritionEntry) domain.MethodStats {
	counts := make(map[domain.EntrySource]int, len(domain.EntrySources))
	for i := range entries {
		counts[entries[i].Source]++
	}

	out := domain.MethodStats{Total: len(entries)}
	denom := float64(max(out.Total, 1))
	for _, src := range domain.EntrySources {
		n := counts[src]
		out.Sources = append(out.Sources, domain.SourceCount{
			Source:     src,
			Count:      n,
			Percentage: int(math.Round(float64(n) / denom * 100)),
		})
	}
	return out
}

// Streak counts consecutive calendar days with at least one entry, ending at
// today. When today has no entry yet the count starts from yesterday.
func Streak(entries []domain.NutritionEntry, today time.Time, loc *time.Location) int {
	logged := make(map[string]struct{}, len(entries))
	for i := range entries {
		logged[entries[i].ConsumedAt.In(loc).Format(domain.DateLayout)] = struct{}{}
	}

	day := domain.DayStart(today, loc)
	if _, ok := logged[day.Format(domain.DateLayout)]; !ok {
		day = domain.AddDays(day, -1, loc)
	}

	n := 0
	for {
		if _, ok := logged[day.Format(domain.DateLayout)]; !ok {
			return n
		}
		n++
		day = domain.AddDays(day, -1, loc)
	}
}

// MostFrequent ranks foods by how often they were logged, most frequent
// first. Ties keep the order in which names first appear in entries.
func MostFrequent(entries []domain.NutritionEntry, limit int) []domain.FrequentFood {
	var order []string
	byName := make(map[string]*domain.FrequentFood)
	for i := range entries {
		key := strings.ToLower(strings.TrimSpace(entries[i].Name))
		f, ok := byName[key]
		if !ok {
			f = &domain.FrequentFood{Name: entries[i].Name}
			byName[key] = f
			order = append(order, key)
		}
		f.Count++
		f.TotalCalories += entries[i].Nutrients.Calories
	}

	out := make([]domain.FrequentFood, 0, len(order))
	for _, key := range order {
		f := byName[key]
		f.TotalCalories = domain.Round2(f.TotalCalories)
		f.AverageCalories = int(math.Round(f.TotalCalories / float64(f.Count)))
		out = append(out, *f)
	}
	slices.SortStableFunc(out, func(a, b domain.FrequentFood) int { return b.Count - a.Count })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Macros splits the calories of n between proteins, carbs and fats. Zero
// macronutrients yield a zero split.
func Macros(n domain.Nutrients) domain.MacroSplit {
	p, c, f := n.Proteins*4, n.Carbs*4, n.Fats*9
	total := p + c + f
	if total == 0 {
		total = 1
	}
	return domain.MacroSplit{
		Proteins: int(math.Round(p / total * 100)),
		Carbs:    int(math.Round(c / total * 100)),
		Fats:     int(math.Round(f / total * 100)),
	}
}

// Preview reports the effect of adding calories to a day that already has
// consumed. A non-positive goal is a configuration error.
func Preview(consumed, calories float64, goal int) (domain.CaloriePreview, error) {
	if goal <= 0 {
		return domain.CaloriePreview{}, &domain.ConfigurationError{Setting: "calorie_goal", Reason: "must be positive"}
	}
	next := domain.Round2(consumed + calories)
	out := domain.CaloriePreview{
		Consumed:   domain.Round2(consumed),
		Calories:   calories,
		NewTotal:   next,
		Goal:       goal,
		WillExceed: next > float64(goal),
	}
	if out.WillExceed {
		out.Overage = domain.Round2(next - float64(goal))
	}
	return out, nil
}
