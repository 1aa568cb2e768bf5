package humantime

import (
	"strconv"
	"strings"

	"github.com/jackburrus/speakhuman/pkg/i18n"
	"github.com/jackburrus/speakhuman/pkg/number"
)

// Formatter renders durations in one locale. The zero value is not usable;
// construct with NewFormatter.
type Formatter struct {
	trans   i18n.Provider
	numbers *number.Formatter
}

// NewFormatter returns a Formatter bound to the given provider. A nil
// provider means English.
func NewFormatter(p i18n.Provider) *Formatter {
	if p == nil {
		p = i18n.English
	}
	return &Formatter{trans: p, numbers: number.NewFormatter(p)}
}

var defaultFormatter = NewFormatter(i18n.English)

// NaturalDelta renders d as a single coarse English phrase.
func NaturalDelta(d TimeDelta, months bool, minimumUnit string) string {
	return defaultFormatter.NaturalDelta(d, months, minimumUnit)
}

// NaturalTime renders d as a tensed English phrase.
func NaturalTime(d TimeDelta, future, months bool, minimumUnit string) string {
	return defaultFormatter.NaturalTime(d, future, months, minimumUnit)
}

// PreciseDelta renders d as a multi-unit English phrase.
func PreciseDelta(d TimeDelta, minimumUnit string, suppress []string, format string) string {
	return defaultFormatter.PreciseDelta(d, minimumUnit, suppress, format)
}

// plural selects the plural template for n and substitutes the count.
func (f *Formatter) plural(singular, plural string, n int64) string {
	return strings.Replace(f.trans.Ngettext(singular, plural, n), "%d", strconv.FormatInt(n, 10), 1)
}
