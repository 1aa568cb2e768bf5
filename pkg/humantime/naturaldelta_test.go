package humantime_test

import (
	"testing"

	"github.com/jackburrus/speakhuman/pkg/humantime"
	"github.com/jackburrus/speakhuman/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func TestNaturalDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta humantime.TimeDelta
		want  string
	}{
		{"zero", humantime.FromSeconds(0), "a moment"},
		{"one second", humantime.FromSeconds(1), "a second"},
		{"thirty seconds", humantime.FromSeconds(30), "30 seconds"},
		{"two minutes", humantime.FromSeconds(120), "2 minutes"},
		{"rounds to a minute", humantime.FromSeconds(90), "2 minutes"},
		{"an hour", humantime.New(0, 3600, 0), "an hour"},
		{"hours", humantime.FromSeconds(3600 * 7), "7 hours"},
		{"rounds to a day", humantime.FromSeconds(3600 * 24), "a day"},
		{"a day", humantime.New(1, 0, 0), "a day"},
		{"seven days", humantime.New(7, 0, 0), "7 days"},
		{"a month", humantime.New(31, 0, 0), "a month"},
		{"several months", humantime.New(130, 0, 0), "4 months"},
		{"almost a year", humantime.New(364, 0, 0), "a year"},
		{"a year exactly", humantime.New(365, 0, 0), "a year"},
		{"a year and days", humantime.New(365+35, 0, 0), "1 year, 1 month"},
		{"year and two months", humantime.New(365+65, 0, 0), "1 year, 2 months"},
		{"two years", humantime.New(365*2+35, 0, 0), "2 years"},
		{"negative mirrors positive", humantime.FromSeconds(-30), "30 seconds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humantime.NaturalDelta(tt.delta, true, "seconds"))
		})
	}
}

func TestNaturalDeltaWithoutMonths(t *testing.T) {
	assert.Equal(t, "130 days", humantime.NaturalDelta(humantime.New(130, 0, 0), false, "seconds"))
	assert.Equal(t, "1 year, 35 days", humantime.NaturalDelta(humantime.New(400, 0, 0), false, "seconds"))
}

func TestNaturalDeltaGroupedYears(t *testing.T) {
	d := humantime.New(365*1141, 0, 0)
	assert.Equal(t, "1,141 years", humantime.NaturalDelta(d, true, "seconds"))
}

func TestNaturalDeltaSubSecond(t *testing.T) {
	tests := []struct {
		name    string
		delta   humantime.TimeDelta
		minUnit string
		want    string
	}{
		{"one microsecond", humantime.New(0, 0, 1), "microseconds", "1 microsecond"},
		{"four microseconds", humantime.New(0, 0, 4), "microseconds", "4 microseconds"},
		{"micros promote to millis", humantime.New(0, 0, 1000), "microseconds", "1 millisecond"},
		{"one millisecond", humantime.New(0, 0, 1000), "milliseconds", "1 millisecond"},
		{"four milliseconds", humantime.New(0, 0, 4000), "milliseconds", "4 milliseconds"},
		{"millis below seconds are a moment", humantime.New(0, 0, 4000), "seconds", "a moment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humantime.NaturalDelta(tt.delta, true, tt.minUnit))
		})
	}
}

func TestNaturalDeltaErrors(t *testing.T) {
	got := humantime.NaturalDelta(humantime.FromSeconds(1), true, "fortnights")
	assert.Contains(t, got, "unknown time unit")
	assert.Contains(t, got, "fortnights")

	got = humantime.NaturalDelta(humantime.FromSeconds(1), true, "hours")
	assert.Contains(t, got, "not supported")
}

func TestNaturalDeltaIdempotent(t *testing.T) {
	d := humantime.New(2, 3633, 123000)
	first := humantime.NaturalDelta(d, true, "seconds")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, humantime.NaturalDelta(d, true, "seconds"))
	}
}

func TestNaturalTime(t *testing.T) {
	thirty := humantime.FromSeconds(30)

	assert.Equal(t, "30 seconds ago", humantime.NaturalTime(thirty, false, true, "seconds"))
	assert.Equal(t, "30 seconds from now", humantime.NaturalTime(thirty, true, true, "seconds"))
	assert.Equal(t, "now", humantime.NaturalTime(humantime.FromSeconds(0), false, true, "seconds"))
}

func TestNaturalDeltaTranslated(t *testing.T) {
	de := i18n.NewCatalog(i18n.CatalogConfig{
		Messages: map[string]string{
			"a moment": "ein Moment",
			"now":      "jetzt",
			"%s ago":   "vor %s",
		},
		Plurals: map[string][]string{
			"%d minute": {"%d Minute", "%d Minuten"},
		},
	})
	f := humantime.NewFormatter(de)

	assert.Equal(t, "2 Minuten", f.NaturalDelta(humantime.FromSeconds(120), true, "seconds"))
	assert.Equal(t, "vor 2 Minuten", f.NaturalTime(humantime.FromSeconds(120), false, true, "seconds"))
	assert.Equal(t, "jetzt", f.NaturalTime(humantime.FromSeconds(0), false, true, "seconds"))
}
