package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/stats"
	"github.com/heartmarshall/scanplate-backend/pkg/ctxutil"
)

const (
	reportWidth = 60
	reportDays  = 7
)

// Report renders a plain-text summary of the current owner's data: the last
// seven days, the capture method breakdown, the calorie goal and the photo
// quota of the month.
func (s *Service) Report(ctx context.Context) (string, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	all, total, err := s.entries.List(ctx, domain.EntryFilter{OwnerID: ownerID})
	if err != nil {
		return "", fmt.Errorf("transfer.Report: %w", err)
	}
	profile, err := s.profile(ctx, ownerID)
	if err != nil {
		return "", fmt.Errorf("transfer.Report: %w", err)
	}
	if profile == nil {
		def := domain.DefaultUserProfile(ownerID, "")
		profile = &def
	}

	now := s.now()
	start := domain.AddDays(domain.DayStart(now, s.loc), -(reportDays - 1), s.loc)
	week := stats.Period(stats.Buckets(all, start, reportDays, s.loc), s.opts.Stats.AverageOverEmptyDays)
	methods := stats.Methods(all)
	quota := profile.PhotoQuota(domain.MonthKey(now, s.loc), s.opts.PhotoQuota)

	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, center("SCANPLATE - NUTRITION REPORT", reportWidth))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Report date  : %s\n", now.In(s.loc).Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total entries: %d\n\n", total)

	fmt.Fprintf(&b, "--- LAST %d DAYS ---\n\n", reportDays)
	for _, d := range week.Days {
		fmt.Fprintf(&b, "%s (%s): %.0f kcal | P: %.1fg | C: %.1fg | F: %.1fg\n",
			d.Date.Format(domain.DateLayout), d.Date.Weekday().String()[:3],
			d.Totals.Calories, d.Totals.Proteins, d.Totals.Carbs, d.Totals.Fats)
	}
	fmt.Fprintf(&b, "\nAverage: %.0f kcal/day over %d days\n", week.Averages.Calories, week.AverageDays)

	fmt.Fprintln(&b, "\n--- BY METHOD ---")
	fmt.Fprintln(&b)
	for _, src := range methods.Sources {
		fmt.Fprintf(&b, "%-8s: %d (%d%%)\n", src.Source, src.Count, src.Percentage)
	}

	fmt.Fprintln(&b, "\n--- SETTINGS ---")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Daily calorie goal : %d kcal\n", profile.CalorieGoal)
	if quota.Limit > 0 {
		fmt.Fprintf(&b, "Photo lookups (%s): %d/%d\n", quota.Month, quota.Used, quota.Limit)
	} else {
		fmt.Fprintf(&b, "Photo lookups (%s): %d\n", quota.Month, quota.Used)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	return b.String(), nil
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
