package number

import (
	"math"
	"strconv"
	"strings"
)

// superscripts maps exponent characters to their Unicode superscript forms.
var superscripts = map[rune]rune{
	'0': '⁰',
	'1': '¹',
	'2': '²',
	'3': '³',
	'4': '⁴',
	'5': '⁵',
	'6': '⁶',
	'7': '⁷',
	'8': '⁸',
	'9': '⁹',
	'-': '⁻',
}

// Scientific renders v in scientific notation with a superscript exponent,
// e.g. Scientific(1000, 2) is "1.00 x 10³".
func Scientific(v float64, precision int) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}

	formatted := strconv.FormatFloat(v, 'e', precision, 64)
	mantissa, exp, ok := strings.Cut(formatted, "e")
	if !ok {
		return formatted
	}

	exp = strings.TrimPrefix(exp, "+")
	negative := strings.HasPrefix(exp, "-")
	digits := strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if digits == "" {
		digits = "0"
	}
	if negative {
		digits = "-" + digits
	}

	var sup strings.Builder
	for _, r := range digits {
		if s, ok := superscripts[r]; ok {
			sup.WriteRune(s)
		}
	}
	return mantissa + " x 10" + sup.String()
}

// SI prefixes above and below unity, by power-of-1000 steps.
var (
	metricLarge = []string{"k", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q"}
	metricSmall = []string{"m", "μ", "n", "p", "f", "a", "z", "y", "r", "q"}
)

// unitless symbols that attach directly to the number, without a space.
func metricNoSpace(unit string) bool {
	return unit == "°" || unit == "′" || unit == "″"
}

// Metric formats v with an SI unit prefix, e.g. Metric(1500, "V", 3) is
// "1.50 kV". Values outside the prefix range fall back to Scientific.
func Metric(v float64, unit string, precision int) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}

	exponent := 0
	if v != 0 {
		exponent = int(math.Floor(math.Log10(math.Abs(v))))
	}

	if exponent >= 33 || exponent < -30 {
		prec := precision - 1
		if prec < 0 {
			prec = 0
		}
		return Scientific(v, prec) + unit
	}

	// Floor division so that e.g. 1e-4 lands in the 1e-6 bucket.
	expDiv3 := exponent / 3
	if exponent < 0 && exponent%3 != 0 {
		expDiv3--
	}
	scaled := v / math.Pow(10, float64(expDiv3*3))

	prefix := ""
	switch {
	case exponent >= 3:
		prefix = metricLarge[exponent/3-1]
	case exponent < 0:
		prefix = metricSmall[(-exponent-1)/3]
	}

	expMod3 := ((exponent % 3) + 3) % 3
	prec := precision - expMod3 - 1
	if prec < 0 {
		prec = 0
	}
	formatted := strconv.FormatFloat(scaled, 'f', prec, 64)

	space := ""
	if (unit != "" || prefix != "") && !metricNoSpace(unit) {
		space = " "
	}
	return formatted + space + prefix + unit
}
