package timeutil

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "datetime", Topic: "timeutil", Title: "time.Time — components, arithmetic, layouts", Run: demoDateTime},
		{Name: "timespan", Topic: "timeutil", Title: "Span — intervals with days, ticks and layouts", Run: demoTimeSpan},
	}
}

func demoDateTime(_ context.Context, env *catalog.Env) error {
	now := env.Now()
	env.Println("  Now:", now.Format(time.DateTime))

	ui.Sub(env.Out, "components")
	env.Println("  Year:", now.Year())
	env.Println("  Month:", int(now.Month()), now.Month())
	env.Println("  Day:", now.Day())
	env.Println("  Day of Week:", now.Weekday())
	env.Println("  Day of Year:", now.YearDay())

	ui.Sub(env.Out, "arithmetic")
	env.Println("  Add 5 days:", now.AddDate(0, 0, 5).Format(time.DateTime))
	env.Println("  Add 3 hours:", now.Add(3*time.Hour).Format(time.DateTime))
	env.Println("  Add 30 minutes:", now.Add(30*time.Minute).Format(time.DateTime))
	env.Println("  Add 100 milliseconds:", now.Add(100*time.Millisecond).Format(time.StampMilli))
	env.Println("  10 days ago:", now.AddDate(0, 0, -10).Format(time.DateTime))

	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, now.Location())
	age := Since(birth, now)
	env.Println("  Age in days:", humanize.Comma(int64(age.TotalDays())))
	env.Println("  Age in years (approx):", humanize.CommafWithDigits(age.TotalDays()/365, 2))
	env.Println("  Age in whole years:", AgeYears(birth, now))

	env.Println("  now after birth?", now.After(birth))
	env.Println("  now before birth?", now.Before(birth))
	env.Println("  Compare(now, birth):", now.Compare(birth))

	ui.Sub(env.Out, "layouts")
	env.Println("  Default:", now.String())
	long, err := Format(now, "dddd, MMMM dd yyyy")
	if err != nil {
		return err
	}
	env.Println("  Custom pattern:", long)
	env.Println("  Short date:", now.Format(time.DateOnly))
	env.Println("  Long time:", now.Format(time.TimeOnly))
	env.Println("  Sortable:", now.Format("2006-01-02T15:04:05"))
	env.Println("  RFC3339:", now.Format(time.RFC3339))

	parsed, err := ParseExact("31/12/2025", "dd/MM/yyyy", time.UTC)
	if err != nil {
		env.Println("  Failed to parse date:", err)
	} else {
		env.Println("  Parsed date (exact):", parsed.Format(time.DateOnly))
	}
	if _, err := ParseExact("2025-12-31", "dd/MM/yyyy", time.UTC); err != nil {
		env.Println("  Wrong shape rejected:", err != nil)
	}

	ui.Sub(env.Out, "zones")
	env.Println("  UTC:", now.UTC().Format(time.DateTime))
	env.Println("  Is now local time?", now.Location() == time.Local)
	env.Println("  Is UTC time?", now.UTC().Location() == time.UTC)

	ui.Sub(env.Out, "ticks and unix")
	ticks := DateTicks(now)
	env.Println("  Ticks since 0001-01-01:", ticks)
	env.Println("  Date from ticks:", FromDateTicks(ticks).Format(time.DateTime))
	back := time.Unix(now.Unix(), int64(now.Nanosecond()))
	env.Println("  Unix round trip equal:", back.Equal(now))

	env.Println("  Min time:", MinTime.Format(time.DateTime))
	env.Println("  Max time:", MaxTime.Format(time.DateTime))
	env.Println("  zero time.Time is MinTime:", time.Time{}.Equal(MinTime))
	return nil
}

func demoTimeSpan(_ context.Context, env *catalog.Env) error {
	time1 := NewSpan(0, 1, 30, 45, 0)
	time2 := NewSpan(0, 2, 15, 30, 500)
	fromTicks := FromTicks(10_000_000)

	env.Println("  Time1:", time1)
	env.Println("  Time2:", time2)
	env.Println("  Time from ticks:", fromTicks)
	env.Println("  FromMinutes(90):", FromMinutes(90))

	ui.Sub(env.Out, "arithmetic")
	env.Println("  Sum:", time1.Add(time2))
	env.Println("  Difference:", time2.Sub(time1))
	env.Println("  Multiplied by 2.5:", time1.Multiply(2.5))
	env.Println("  Divided by 3:", time2.Divide(3))
	env.Println("  Negated time1:", time1.Negate())

	ui.Sub(env.Out, "totals and components")
	env.Println("  TotalDays of time2:", time2.TotalDays())
	env.Println("  TotalHours of time1:", time1.TotalHours())
	env.Println("  TotalMinutes of time1:", time1.TotalMinutes())
	env.Println("  TotalSeconds of fromTicks:", fromTicks.TotalSeconds())
	env.Println("  TotalMilliseconds of time2:", time2.TotalMilliseconds())
	env.Printf("  Days: %d, Hours: %d, Minutes: %d, Seconds: %d, Milliseconds: %d\n",
		time2.Days(), time2.Hours(), time2.Minutes(), time2.Seconds(), time2.Milliseconds())

	ui.Sub(env.Out, "comparison")
	env.Println("  Compare time1 to time2:", time1.Compare(time2))
	env.Println("  time1 equals time2:", time1 == time2)

	ui.Sub(env.Out, "parsing and layouts")
	parsed, err := ParseSpan("02:45:30")
	if err != nil {
		return err
	}
	env.Println("  Parsed:", parsed)
	if v, err := ParseSpan("01:15:10"); err == nil {
		env.Println("  Parsed without error:", v)
	}
	if _, err := ParseSpan("25:00"); err != nil {
		env.Println("  Rejected:", err)
	}

	rows := make([][2]string, 0, 3)
	for _, layout := range []string{"c", "g", "G"} {
		s, err := time1.Format(layout)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{layout, s})
	}
	ui.Table(env.Out, [2]string{"layout", "time1"}, rows)

	ui.Sub(env.Out, "limits")
	env.Println("  Zero:", Zero)
	env.Println("  Max:", MaxSpan)
	env.Println("  Min:", MinSpan)
	env.Println("  as time.Duration:", time2.Duration())
	return nil
}
