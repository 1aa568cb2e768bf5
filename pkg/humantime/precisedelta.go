package humantime

import (
	"math"
	"strconv"
	"strings"

	"github.com/jackburrus/speakhuman/pkg/lists"
	"github.com/jackburrus/speakhuman/pkg/number"
)

// unitTemplates holds the singular/plural message pair per unit, indexed by
// Unit rank.
var unitTemplates = [...]struct {
	singular, plural string
}{
	Microseconds: {"%d microsecond", "%d microseconds"},
	Milliseconds: {"%d millisecond", "%d milliseconds"},
	Seconds:      {"%d second", "%d seconds"},
	Minutes:      {"%d minute", "%d minutes"},
	Hours:        {"%d hour", "%d hours"},
	Days:         {"%d day", "%d days"},
	Months:       {"%d month", "%d months"},
	Years:        {"%d year", "%d years"},
}

// quantities holds the per-unit values produced by the cascade, indexed by
// Unit rank.
type quantities [8]float64

// PreciseDelta returns a precise multi-unit representation of a duration,
// e.g. "2 days, 1 hour and 33.12 seconds".
//
// minimumUnit names the smallest granularity to display; everything finer
// is folded into it, and its value may be fractional, rendered with the
// printf-style format directive. suppress lists unit names to exclude; a
// suppressed unit's value is redistributed into its neighbors. Unknown
// suppression tokens are ignored. Errors are returned as diagnostic text in
// place of a result.
func (f *Formatter) PreciseDelta(d TimeDelta, minimumUnit string, suppress []string, format string) string {
	minUnit, err := ParseUnit(minimumUnit)
	if err != nil {
		return err.Error()
	}

	sup := parseUnitSet(suppress)
	minUnit, err = suitableMinimumUnit(minUnit, sup)
	if err != nil {
		return err.Error()
	}
	sup = suppressBelow(minUnit, sup)

	q := decompose(d.Abs(), minUnit, sup, format)
	applyCarry(&q, sup)
	return lists.Join(f.trans, f.renderQuantities(q, minUnit, format))
}

// decompose cascades the duration through the units from years down to
// microseconds, producing one quantity per unit. The stream of remainders
// changes denomination twice: days feed the year and month steps, seconds
// the day through minute steps, and microseconds the rest.
func decompose(d TimeDelta, minUnit Unit, sup unitSet, format string) quantities {
	var q quantities

	days := float64(d.Days)
	q[Years], days = cascadeStep(days, 365, Years, minUnit, sup, format)
	q[Months], days = cascadeStep(days, 30.5, Months, minUnit, sup, format)

	secs := days*24*3600 + float64(d.Seconds)
	q[Days], secs = cascadeStep(secs, 24*3600, Days, minUnit, sup, format)
	q[Hours], secs = cascadeStep(secs, 3600, Hours, minUnit, sup, format)
	q[Minutes], secs = cascadeStep(secs, 60, Minutes, minUnit, sup, format)

	usecs := secs*1e6 + float64(d.Microseconds)
	q[Seconds], usecs = cascadeStep(usecs, 1e6, Seconds, minUnit, sup, format)
	q[Milliseconds], usecs = cascadeStep(usecs, 1000, Milliseconds, minUnit, sup, format)
	q[Microseconds], _ = cascadeStep(usecs, 1, Microseconds, minUnit, sup, format)

	return q
}

// cascadeStep performs one quotient/remainder division of the cascade.
// The minimum unit is terminal: it absorbs the entire remaining value,
// rounded per the format directive. A suppressed unit contributes nothing
// and rolls its whole value forward.
func cascadeStep(value, divisor float64, unit, minUnit Unit, sup unitSet, format string) (quotient, remainder float64) {
	if unit == minUnit {
		return roundByFormat(format, value/divisor), 0
	}
	if sup.contains(unit) {
		return 0, value
	}
	quotient = math.Floor(value / divisor)
	remainder = math.Max(math.Floor(value-quotient*divisor), 0)
	return quotient, remainder
}

// roundByFormat rounds a value the way the format directive will display
// it, so the displayed figure and the carried figure agree.
func roundByFormat(format string, value float64) float64 {
	s := strings.TrimSpace(number.FormatFloat(format, value))
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i)
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return value
}

// carryRules walk upward from the smallest displayed unit. Each carry fires
// only when the receiving unit is not suppressed.
var carryRules = [...]struct {
	from, to Unit
	modulus  float64
}{
	{Milliseconds, Seconds, 1000},
	{Seconds, Minutes, 60},
	{Minutes, Hours, 60},
	{Hours, Days, 24},
	{Days, Months, 31},
	{Months, Years, 12},
}

// applyCarry normalizes overflow introduced by rounding the terminal unit,
// e.g. 999.9996 milliseconds rounded to 1000 becomes 1 second. The pass
// runs exactly once; see the package tests for the overflow contract.
func applyCarry(q *quantities, sup unitSet) {
	for _, rule := range carryRules {
		if q[rule.from] >= rule.modulus && !sup.contains(rule.to) {
			q[rule.from] -= rule.modulus
			q[rule.to]++
		}
	}
}

// renderQuantities emits one pluralized phrase per displayed unit, from
// years down to the minimum unit. A unit is displayed when its value is
// non-zero, or when nothing has been emitted yet and it is the minimum unit
// (so a zero duration still renders, e.g. "0 seconds").
func (f *Formatter) renderQuantities(q quantities, minUnit Unit, format string) []string {
	var texts []string

	for i := len(allUnits) - 1; i >= 0; i-- {
		unit := allUnits[i]
		value := q[unit]

		if value > 0 || (len(texts) == 0 && unit == minUnit) {
			texts = append(texts, f.phraseFor(unit, value, unit == minUnit, format))
		}
		if unit == minUnit {
			break
		}
	}
	return texts
}

// phraseFor renders a single unit's phrase. The minimum unit may carry a
// fractional value, rendered with the caller's format; years always use
// locale digit grouping; everything else is a plain integer.
func (f *Formatter) phraseFor(unit Unit, value float64, isMin bool, format string) string {
	// Values between 1 and 2 that display as a rounded "2" must pick the
	// plural form for quantity 2.
	n := int64(value)
	if value > 1 && value < 2 {
		n = 2
	}
	template := f.trans.Ngettext(unitTemplates[unit].singular, unitTemplates[unit].plural, n)

	frac := value - math.Trunc(value)
	switch {
	case isMin && math.Abs(frac) > 1e-9:
		return strings.Replace(template, "%d", number.FormatFloat(format, value), 1)
	case unit == Years:
		return strings.Replace(template, "%d", f.numbers.Intcomma(int64(value)), 1)
	default:
		return strings.Replace(template, "%d", strconv.FormatInt(int64(value), 10), 1)
	}
}
