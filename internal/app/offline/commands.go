package offline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/scanplate-backend/internal/domain"
	"github.com/heartmarshall/scanplate-backend/internal/service/entry"
	"github.com/heartmarshall/scanplate-backend/internal/service/profile"
	"github.com/heartmarshall/scanplate-backend/internal/service/transfer"
)

func (t *Tool) add(ctx context.Context, args []string) error {
	fs := t.flags("add")
	name := fs.String("name", "", "food name")
	calories := fs.Float64("calories", 0, "kcal per serving")
	proteins := fs.Float64("proteins", 0, "grams of protein")
	carbs := fs.Float64("carbs", 0, "grams of carbohydrate")
	fats := fs.Float64("fats", 0, "grams of fat")
	fiber := fs.Float64("fiber", 0, "grams of fiber")
	serving := fs.Float64("serving", 0, "serving size, default 100")
	unit := fs.String("unit", "", "serving unit, default g")
	meal := fs.String("meal", "", "breakfast, lunch, dinner or snack")
	barcode := fs.String("barcode", "", "product barcode; marks the entry as scanned")
	at := fs.String("at", "", "consumption time as YYYY-MM-DD HH:MM, default now")
	if err := parse(fs, args); err != nil {
		return err
	}

	in := entry.CreateInput{
		Name: *name,
		Nutrients: domain.Nutrients{
			Calories: *calories,
			Proteins: *proteins,
			Carbs:    *carbs,
			Fats:     *fats,
			Fiber:    *fiber,
		},
		ServingSize: *serving,
		ServingUnit: *unit,
		Source:      domain.SourceManual,
	}
	if *meal != "" {
		m := domain.MealType(*meal)
		in.MealType = &m
	}
	if *barcode != "" {
		in.Source = domain.SourceBarcode
		in.Barcode = barcode
	}
	if *at != "" {
		ts, err := time.ParseInLocation(domain.DateLayout+" 15:04", *at, t.loc)
		if err != nil {
			return domain.NewValidationError("consumed_at", "must be YYYY-MM-DD HH:MM")
		}
		in.ConsumedAt = &ts
	}

	e, err := t.entries.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "added %s (%s, %.0f kcal)\n", e.ID, e.Name, e.Nutrients.Calories)
	return nil
}

func (t *Tool) list(ctx context.Context, args []string) error {
	fs := t.flags("list")
	date := fs.String("date", "", "only this day, YYYY-MM-DD")
	limit := fs.Int("limit", entry.DefaultPerPage, "maximum rows")
	if err := parse(fs, args); err != nil {
		return err
	}

	in := entry.ListInput{PerPage: *limit}
	if *date != "" {
		d, err := t.parseDate(*date)
		if err != nil {
			return err
		}
		in.StartDate, in.EndDate = &d, &d
	}

	res, err := t.entries.List(ctx, in)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tNAME\tKCAL\tP\tC\tF\tMEAL\tSOURCE")
	for _, e := range res.Entries {
		n := e.Nutrients.Rounded()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%s\t%s\n",
			e.ID, e.ConsumedAt.In(t.loc).Format(domain.DateLayout+" 15:04"), e.Name,
			n.Calories, n.Proteins, n.Carbs, n.Fats, orDash(e.MealKey()), e.Source)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if res.Total > len(res.Entries) {
		fmt.Fprintf(t.out, "showing %d of %d entries\n", len(res.Entries), res.Total)
	}
	return nil
}

func (t *Tool) remove(ctx context.Context, args []string) error {
	fs := t.flags("delete")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(t.out, "usage: offline delete <id>")
		return ErrUsage
	}

	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return domain.ErrNotFound
	}
	deleted, err := t.entries.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	fmt.Fprintf(t.out, "deleted %s\n", id)
	return nil
}

func (t *Tool) clear(ctx context.Context, args []string) error {
	fs := t.flags("clear")
	date := fs.String("date", "", "only this day, YYYY-MM-DD")
	if err := parse(fs, args); err != nil {
		return err
	}

	var in entry.ClearInput
	if *date != "" {
		d, err := t.parseDate(*date)
		if err != nil {
			return err
		}
		in.Date = &d
	}

	n, err := t.entries.Clear(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "deleted %d entries\n", n)
	return nil
}

func (t *Tool) day(ctx context.Context, args []string) error {
	fs := t.flags("day")
	date := fs.String("date", "", "day to summarize, default today")
	if err := parse(fs, args); err != nil {
		return err
	}

	d := t.stats.Today()
	if *date != "" {
		var err error
		if d, err = t.parseDate(*date); err != nil {
			return err
		}
	}

	sum, err := t.stats.Daily(ctx, d)
	if err != nil {
		return err
	}

	n := sum.Totals.Rounded()
	p := sum.Progress
	fmt.Fprintf(t.out, "%s: %d entries\n", sum.Date.Format(domain.DateLayout), sum.Count)
	fmt.Fprintf(t.out, "calories %.0f / %d (%d%%)", p.Consumed, p.Goal, p.Percentage)
	if p.Exceeded {
		fmt.Fprintln(t.out, ", goal exceeded")
	} else {
		fmt.Fprintf(t.out, ", %.0f remaining\n", p.Remaining)
	}
	fmt.Fprintf(t.out, "proteins %.1f g, carbs %.1f g, fats %.1f g, fiber %.1f g\n", n.Proteins, n.Carbs, n.Fats, n.Fiber)

	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	for _, g := range sum.ByMeal {
		meal := "other"
		if g.MealType != nil {
			meal = g.MealType.String()
		}
		fmt.Fprintf(tw, "  %s\t%.0f kcal\t%d\n", meal, g.Calories, g.Count)
	}
	return tw.Flush()
}

func (t *Tool) week(ctx context.Context, args []string) error {
	fs := t.flags("week")
	end := fs.String("end", "", "last day of the window, default today")
	days := fs.Int("days", 0, "window length, default from configuration")
	if err := parse(fs, args); err != nil {
		return err
	}

	d := t.stats.Today()
	if *end != "" {
		var err error
		if d, err = t.parseDate(*end); err != nil {
			return err
		}
	}

	period, err := t.stats.Weekly(ctx, d, *days)
	if err != nil {
		return err
	}
	return t.printPeriod(period)
}

func (t *Tool) month(ctx context.Context, args []string) error {
	fs := t.flags("month")
	raw := fs.String("month", "", "calendar month as YYYY-MM, default current")
	if err := parse(fs, args); err != nil {
		return err
	}

	m := t.stats.Today()
	if *raw != "" {
		var err error
		if m, err = time.ParseInLocation(domain.MonthLayout, *raw, t.loc); err != nil {
			return domain.NewValidationError("month", "must be YYYY-MM")
		}
	}

	period, err := t.stats.Monthly(ctx, m.Year(), m.Month())
	if err != nil {
		return err
	}
	return t.printPeriod(period)
}

func (t *Tool) printPeriod(p *domain.PeriodStats) error {
	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "DAY\tKCAL\tP\tC\tF\tENTRIES\t")
	for _, d := range p.Days {
		n := d.Totals.Rounded()
		fmt.Fprintf(tw, "%s\t%.0f\t%.1f\t%.1f\t%.1f\t%d\t\n",
			d.Date.Format(domain.DateLayout+" Mon"), n.Calories, n.Proteins, n.Carbs, n.Fats, d.EntryCount)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	avg := p.Averages.Rounded()
	fmt.Fprintf(t.out, "%d of %d days logged, %d entries\n", p.DaysLogged, len(p.Days), p.EntryCount)
	fmt.Fprintf(t.out, "average %.0f kcal/day over %d days\n", avg.Calories, p.AverageDays)
	return nil
}

func (t *Tool) methods(ctx context.Context, args []string) error {
	if err := parse(t.flags("methods"), args); err != nil {
		return err
	}

	m, err := t.stats.Methods(ctx)
	if err != nil {
		return err
	}
	streak, err := t.stats.Streak(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	for _, s := range m.Sources {
		fmt.Fprintf(tw, "%s\t%d\t%d%%\n", s.Source, s.Count, s.Percentage)
	}
	fmt.Fprintf(tw, "total\t%d\t\n", m.Total)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(t.out, "current streak: %d days\n", streak)
	return nil
}

func (t *Tool) frequent(ctx context.Context, args []string) error {
	fs := t.flags("frequent")
	limit := fs.Int("n", 10, "number of foods to show")
	if err := parse(fs, args); err != nil {
		return err
	}

	foods, err := t.stats.Frequent(ctx, *limit)
	if err != nil {
		return err
	}
	if len(foods) == 0 {
		fmt.Fprintln(t.out, "no entries")
		return nil
	}

	tw := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FOOD\tTIMES\tAVG KCAL")
	for _, f := range foods {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", f.Name, f.Count, f.AverageCalories)
	}
	return tw.Flush()
}

func (t *Tool) goal(ctx context.Context, args []string) error {
	fs := t.flags("goal")
	set := fs.Int("set", 0, "new daily calorie goal")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		view *profile.View
		err  error
	)
	if *set != 0 {
		view, err = t.profiles.Update(ctx, profile.UpdateInput{
			ProfilePatch: domain.ProfilePatch{CalorieGoal: set},
		})
	} else {
		view, err = t.profiles.Get(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "daily calorie goal: %d kcal\n", view.Profile.CalorieGoal)
	return nil
}

func (t *Tool) exportCSV(ctx context.Context, args []string) error {
	fs := t.flags("export-csv")
	out := fs.String("o", "", "output file, default stdout")
	start := fs.String("start", "", "first day, YYYY-MM-DD")
	end := fs.String("end", "", "last day, YYYY-MM-DD")
	if err := parse(fs, args); err != nil {
		return err
	}

	var in transfer.ExportInput
	for _, p := range []struct {
		raw string
		dst **time.Time
	}{{*start, &in.StartDate}, {*end, &in.EndDate}} {
		if p.raw == "" {
			continue
		}
		d, err := t.parseDate(p.raw)
		if err != nil {
			return err
		}
		*p.dst = &d
	}

	return t.writeOutput(*out, func(w io.Writer) (int, error) {
		return t.transfers.WriteCSV(ctx, w, in)
	})
}

func (t *Tool) exportJSON(ctx context.Context, args []string) error {
	fs := t.flags("export-json")
	out := fs.String("o", "", "output file, default stdout")
	if err := parse(fs, args); err != nil {
		return err
	}

	return t.writeOutput(*out, func(w io.Writer) (int, error) {
		return t.transfers.WriteJSON(ctx, w)
	})
}

// writeOutput renders into memory first so a failed export leaves no
// partial file behind.
func (t *Tool) writeOutput(path string, render func(io.Writer) (int, error)) error {
	var buf bytes.Buffer
	n, err := render(&buf)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = buf.WriteTo(t.out)
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("offline.export: %w", err)
	}
	t.log.Info("export written", "path", path, "entries", n)
	fmt.Fprintf(t.out, "wrote %d entries to %s\n", n, path)
	return nil
}

func (t *Tool) importJSON(ctx context.Context, args []string) error {
	fs := t.flags("import-json")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(t.out, "usage: offline import-json <file>")
		return ErrUsage
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("offline.import: %w", err)
	}
	defer f.Close()

	res, err := t.transfers.Import(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "imported %d entries", res.Entries)
	if res.SettingsRestored {
		fmt.Fprint(t.out, ", settings restored")
	}
	fmt.Fprintln(t.out)
	return nil
}

func (t *Tool) report(ctx context.Context, args []string) error {
	if err := parse(t.flags("report"), args); err != nil {
		return err
	}

	text, err := t.transfers.Report(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(t.out, text)
	return err
}

// day0 parses a calendar date in the reference timezone.
func (t *Tool) parseDate(raw string) (time.Time, error) {
	d, err := time.ParseInLocation(domain.DateLayout, strings.TrimSpace(raw), t.loc)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
