package number

import (
	"math"
	"strconv"
	"strings"
)

// intwordPowers maps magnitude thresholds to their names. The jump from
// decillion (1e33) to googol (1e100) mirrors the conventional scale.
var intwordPowers = []struct {
	value float64
	name  string
}{
	{1e3, "thousand"},
	{1e6, "million"},
	{1e9, "billion"},
	{1e12, "trillion"},
	{1e15, "quadrillion"},
	{1e18, "quintillion"},
	{1e21, "sextillion"},
	{1e24, "septillion"},
	{1e27, "octillion"},
	{1e30, "nonillion"},
	{1e33, "decillion"},
	{1e100, "googol"},
}

// Intword converts a large number to a friendly text representation, e.g.
// 1_200_000_000 becomes "1.2 billion". The format directive controls the
// precision of the leading number. Works best for values over a million.
func (f *Formatter) Intword(v float64, format string) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	abs := math.Abs(v)

	if abs < intwordPowers[0].value {
		return sign + strconv.FormatInt(int64(abs), 10)
	}

	ordinal := len(intwordPowers) - 1
	for i, p := range intwordPowers {
		if p.value > abs {
			ordinal = i - 1
			break
		}
	}

	chopped := abs / intwordPowers[ordinal].value
	rounded := chopped
	if parsed, err := strconv.ParseFloat(FormatFloat(format, chopped), 64); err == nil {
		rounded = parsed
	}

	// Rounding can push the value to the next power's threshold
	// ("999,999,999" at "%.1f" is "1.0 billion", not "1000.0 million").
	if ordinal < len(intwordPowers)-1 &&
		math.Abs(rounded*intwordPowers[ordinal].value-intwordPowers[ordinal+1].value) < 1 {
		ordinal++
		rounded = 1
	}

	name := intwordPowers[ordinal].name
	unit := f.trans.Ngettext(name, name, int64(math.Ceil(rounded)))
	num := strings.Replace(FormatFloat(format, rounded), ".", f.trans.DecimalSeparator(), 1)
	return sign + num + " " + unit
}
