package humantime

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// NaturalDelta returns a natural representation of a duration as a single
// phrase, e.g. "a moment", "7 days", "1 year, 4 months". No tense is added.
//
// When months is true, day spans beyond a month are approximated as months
// (30.5 days each). minimumUnit must name seconds, milliseconds, or
// microseconds and controls how sub-second durations are described. Errors
// are returned as diagnostic text in place of a result.
func (f *Formatter) NaturalDelta(d TimeDelta, months bool, minimumUnit string) string {
	minUnit, err := ParseUnit(minimumUnit)
	if err != nil {
		return err.Error()
	}
	if minUnit != Seconds && minUnit != Milliseconds && minUnit != Microseconds {
		return fmt.Sprintf("%s: %q", ErrUnitNotSupported, minimumUnit)
	}

	delta := d.Abs()
	years := delta.Days / 365
	days := delta.Days % 365
	numMonths := int64(math.Round(float64(days) / 30.5))

	switch {
	case years == 0 && days < 1:
		return f.subDayDelta(delta, minUnit)

	case years == 0:
		if days == 1 {
			return f.trans.Gettext("a day")
		}
		if !months || numMonths == 0 {
			return f.plural("%d day", "%d days", days)
		}
		if numMonths == 1 {
			return f.trans.Gettext("a month")
		}
		if numMonths == 12 {
			return f.trans.Gettext("a year")
		}
		return f.plural("%d month", "%d months", numMonths)

	case years == 1:
		if numMonths == 0 && days == 0 {
			return f.trans.Gettext("a year")
		}
		if months && numMonths != 0 {
			if numMonths == 1 {
				return f.trans.Gettext("1 year, 1 month")
			}
			if numMonths == 12 {
				return f.yearsPhrase(years + 1)
			}
			return f.plural("1 year, %d month", "1 year, %d months", numMonths)
		}
		return f.plural("1 year, %d day", "1 year, %d days", days)
	}

	return f.yearsPhrase(years)
}

// subDayDelta describes durations below one day.
func (f *Formatter) subDayDelta(delta TimeDelta, minUnit Unit) string {
	switch {
	case delta.Seconds == 0:
		if minUnit == Microseconds && delta.Microseconds < 1000 {
			return f.plural("%d microsecond", "%d microseconds", delta.Microseconds)
		}
		if minUnit == Milliseconds ||
			(minUnit == Microseconds && delta.Microseconds >= 1000 && delta.Microseconds < microsPerSecond) {
			return f.plural("%d millisecond", "%d milliseconds", delta.Microseconds/1000)
		}
		return f.trans.Gettext("a moment")

	case delta.Seconds == 1:
		return f.trans.Gettext("a second")

	case delta.Seconds < 60:
		return f.plural("%d second", "%d seconds", delta.Seconds)

	case delta.Seconds < 3600:
		minutes := int64(math.Round(float64(delta.Seconds) / 60))
		if minutes == 1 {
			return f.trans.Gettext("a minute")
		}
		if minutes == 60 {
			return f.trans.Gettext("an hour")
		}
		return f.plural("%d minute", "%d minutes", minutes)

	default:
		hours := int64(math.Round(float64(delta.Seconds) / 3600))
		if hours == 1 {
			return f.trans.Gettext("an hour")
		}
		if hours == 24 {
			return f.trans.Gettext("a day")
		}
		return f.plural("%d hour", "%d hours", hours)
	}
}

// yearsPhrase renders a year count with locale digit grouping.
func (f *Formatter) yearsPhrase(years int64) string {
	template := f.trans.Ngettext("%d year", "%d years", years)
	return strings.Replace(template, "%d", f.numbers.Intcomma(years), 1)
}

// NaturalTime wraps NaturalDelta with tense: "3 minutes ago" or
// "3 minutes from now". Durations that round to nothing become "now".
func (f *Formatter) NaturalTime(d TimeDelta, future, months bool, minimumUnit string) string {
	phrase := f.NaturalDelta(d, months, minimumUnit)

	if phrase == f.trans.Gettext("a moment") {
		return f.trans.Gettext("now")
	}

	template := f.trans.Gettext("%s ago")
	if future {
		template = f.trans.Gettext("%s from now")
	}
	return strings.Replace(template, "%s", phrase, 1)
}

// NaturalDay returns "today", "tomorrow", or "yesterday" when t falls on
// the corresponding calendar day, and t formatted with the given layout
// otherwise.
func (f *Formatter) NaturalDay(t time.Time, layout string) string {
	switch daysFromToday(t) {
	case 0:
		return f.trans.Gettext("today")
	case 1:
		return f.trans.Gettext("tomorrow")
	case -1:
		return f.trans.Gettext("yesterday")
	}
	return t.Format(layout)
}

// NaturalDate is NaturalDay with the year appended once the date is roughly
// five months or more away.
func (f *Formatter) NaturalDate(t time.Time) string {
	delta := daysFromToday(t)
	if delta < 0 {
		delta = -delta
	}
	if delta >= 5*365/12 {
		return f.NaturalDay(t, "Jan 02 2006")
	}
	return f.NaturalDay(t, "Jan 02")
}

// daysFromToday returns the calendar-day difference between t and now,
// ignoring the time of day.
func daysFromToday(t time.Time) int {
	now := time.Now()
	midnight := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
	return int(midnight(t).Sub(midnight(now)).Hours() / 24)
}
