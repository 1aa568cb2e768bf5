package humantime_test

import (
	"testing"
	"time"

	"github.com/jackburrus/speakhuman/pkg/humantime"
	"github.com/jackburrus/speakhuman/pkg/i18n"
	"github.com/stretchr/testify/assert"
)

func TestNaturalDay(t *testing.T) {
	f := humantime.NewFormatter(nil)
	now := time.Now()

	assert.Equal(t, "today", f.NaturalDay(now, "Jan 02"))
	assert.Equal(t, "tomorrow", f.NaturalDay(now.AddDate(0, 0, 1), "Jan 02"))
	assert.Equal(t, "yesterday", f.NaturalDay(now.AddDate(0, 0, -1), "Jan 02"))

	far := now.AddDate(0, 0, 30)
	assert.Equal(t, far.Format("Jan 02"), f.NaturalDay(far, "Jan 02"))
}

func TestNaturalDate(t *testing.T) {
	f := humantime.NewFormatter(nil)
	now := time.Now()

	near := now.AddDate(0, 0, 30)
	assert.Equal(t, near.Format("Jan 02"), f.NaturalDate(near))

	// Dates roughly five months out carry the year.
	far := now.AddDate(1, 0, 0)
	assert.Equal(t, far.Format("Jan 02 2006"), f.NaturalDate(far))

	past := now.AddDate(-1, 0, 0)
	assert.Equal(t, past.Format("Jan 02 2006"), f.NaturalDate(past))
}

func TestNaturalDayTranslated(t *testing.T) {
	f := humantime.NewFormatter(i18n.NewCatalog(i18n.CatalogConfig{
		Messages: map[string]string{"today": "heute"},
	}))
	assert.Equal(t, "heute", f.NaturalDay(time.Now(), "Jan 02"))
}

func TestParseUnit(t *testing.T) {
	for name, want := range map[string]humantime.Unit{
		"microseconds": humantime.Microseconds,
		"MILLISECONDS": humantime.Milliseconds,
		"Seconds":      humantime.Seconds,
		"minutes":      humantime.Minutes,
		"hours":        humantime.Hours,
		"days":         humantime.Days,
		"months":       humantime.Months,
		"years":        humantime.Years,
	} {
		got, err := humantime.ParseUnit(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := humantime.ParseUnit("fortnights")
	assert.ErrorIs(t, err, humantime.ErrUnknownUnit)
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "seconds", humantime.Seconds.String())
	assert.Equal(t, "years", humantime.Years.String())
	assert.Equal(t, "unknown", humantime.Unit(42).String())
}
