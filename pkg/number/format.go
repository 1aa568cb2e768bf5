package number

import (
	"math"
	"strconv"
	"strings"
)

// formatNotFinite renders NaN and infinities. The boolean reports whether
// the value was non-finite.
func formatNotFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, -1):
		return "-Inf", true
	case math.IsInf(v, 1):
		return "+Inf", true
	default:
		return "", false
	}
}

// FormatFloat formats v according to a printf-style precision directive.
// Supported layouts: "%.Nf" and "%N.Mf" (fixed-point with N fractional
// digits), and "%d"/"%i" (truncate to integer). Anything else falls back to
// the shortest exact decimal representation.
func FormatFloat(layout string, v float64) string {
	if s, ok := formatNotFinite(v); ok {
		return s
	}
	if strings.ContainsAny(layout, "di") {
		return strconv.FormatInt(int64(v), 10)
	}
	if dot := strings.IndexByte(layout, '.'); dot >= 0 {
		rest := layout[dot+1:]
		if f := strings.IndexByte(rest, 'f'); f >= 0 {
			if prec, err := strconv.Atoi(rest[:f]); err == nil {
				return strconv.FormatFloat(v, 'f', prec, 64)
			}
		}
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupDigits inserts sep between every three digits of an unsigned decimal
// string, counting from the right.
func groupDigits(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
