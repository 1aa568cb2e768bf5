package number

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackburrus/speakhuman/pkg/i18n"
)

// Gender selects the grammatical gender of ordinal suffixes in languages
// that distinguish them.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Formatter renders numbers using the separators and words of one locale.
// The zero value is not usable; construct with NewFormatter.
type Formatter struct {
	trans i18n.Provider
}

// NewFormatter returns a Formatter bound to the given provider. A nil
// provider means English.
func NewFormatter(p i18n.Provider) *Formatter {
	if p == nil {
		p = i18n.English
	}
	return &Formatter{trans: p}
}

var defaultFormatter = NewFormatter(i18n.English)

// Intcomma groups the digits of n in the English locale.
func Intcomma(n int64) string { return defaultFormatter.Intcomma(n) }

// Ordinal returns n with its English ordinal suffix ("1st", "2nd", "11th").
func Ordinal(n int64) string { return defaultFormatter.Ordinal(n) }

// APNumber spells out 0..9 in the English locale.
func APNumber(n int64) string { return defaultFormatter.APNumber(n) }

// Intword describes a large number in the English locale ("1.2 billion").
func Intword(v float64, format string) string { return defaultFormatter.Intword(v, format) }

// Intcomma returns n with the locale thousands separator inserted between
// every three digits.
func (f *Formatter) Intcomma(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	s = groupDigits(s, f.trans.ThousandsSeparator())
	if neg {
		s = "-" + s
	}
	return s
}

// IntcommaFloat is Intcomma for fractional values. ndigits fixes the number
// of fractional digits; a negative ndigits keeps the value's natural
// precision. The decimal point uses the locale decimal separator.
func (f *Formatter) IntcommaFloat(v float64, ndigits int) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}
	s := strconv.FormatFloat(v, 'f', ndigits, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := groupDigits(intPart, f.trans.ThousandsSeparator())
	if hasFrac {
		out += f.trans.DecimalSeparator() + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ordinalSuffixes are the English defaults, indexed by final digit.
// Translations are looked up under gettext contexts like "1 (male)".
var ordinalSuffixes = [10]string{"th", "st", "nd", "rd", "th", "th", "th", "th", "th", "th"}

// Ordinal returns n with its ordinal suffix using male gender.
func (f *Formatter) Ordinal(n int64) string {
	return f.OrdinalGendered(n, GenderMale)
}

// OrdinalGendered returns n with its ordinal suffix for the given gender.
// The 11/12/13 exception uses the "th" suffix regardless of final digit.
func (f *Formatter) OrdinalGendered(n int64, gender Gender) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	digit := abs % 10
	if rem := abs % 100; rem == 11 || rem == 12 || rem == 13 {
		digit = 0
	}
	ctx := fmt.Sprintf("%d (%s)", digit, gender)
	return strconv.FormatInt(n, 10) + f.trans.Pgettext(ctx, ordinalSuffixes[digit])
}

// apWords spell out the numbers Associated Press style.
var apWords = [10]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// APNumber spells out 0..9; other values are returned as digits.
func (f *Formatter) APNumber(n int64) string {
	if n < 0 || n > 9 {
		return strconv.FormatInt(n, 10)
	}
	return f.trans.Gettext(apWords[n])
}

// Fractional renders v as a vulgar fraction with denominator at most 1000,
// e.g. 1.5 becomes "1 1/2".
func Fractional(v float64) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}

	whole := int64(v)
	num, den := limitDenominator(v-float64(whole), 1000)

	switch {
	case num == 0 && den == 1:
		return strconv.FormatInt(whole, 10)
	case whole == 0:
		return fmt.Sprintf("%d/%d", num, den)
	default:
		return fmt.Sprintf("%d %d/%d", whole, num, den)
	}
}

// limitDenominator finds the best rational approximation of x with a
// denominator no larger than maxDen, via the continued fraction expansion.
func limitDenominator(x float64, maxDen int64) (int64, int64) {
	if x == 0 {
		return 0, 1
	}

	negative := x < 0
	x = math.Abs(x)

	var p0, q0, p1, q1 int64 = 0, 1, 1, 0
	for {
		a := int64(math.Floor(x))
		p2 := a*p1 + p0
		q2 := a*q1 + q0
		if q2 > maxDen {
			break
		}
		p0, q0, p1, q1 = p1, q1, p2, q2

		rem := x - float64(a)
		if math.Abs(rem) < 1e-10 {
			break
		}
		x = 1 / rem
		if x > 1e10 {
			break
		}
	}

	if q1 == 0 {
		return 0, 1
	}
	if negative {
		p1 = -p1
	}
	return p1, q1
}
