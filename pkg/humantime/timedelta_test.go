package humantime_test

import (
	"math"
	"testing"
	"time"

	"github.com/jackburrus/speakhuman/pkg/humantime"
	"github.com/stretchr/testify/assert"
)

func TestTimeDeltaNormalization(t *testing.T) {
	tests := []struct {
		name                string
		delta               humantime.TimeDelta
		days, secs, microns int64
	}{
		{"simple", humantime.New(1, 2, 3), 1, 2, 3},
		{"seconds overflow", humantime.New(0, 86401, 0), 1, 1, 0},
		{"micros overflow", humantime.New(0, 0, 1_500_000), 0, 1, 500_000},
		{"negative seconds", humantime.New(0, -1, 0), -1, 86399, 0},
		{"negative micros", humantime.New(0, 0, -1), -1, 86399, 999_999},
		{"negative day exact", humantime.New(-1, 0, 0), -1, 0, 0},
		{"mixed signs", humantime.New(1, -86400, 0), 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.delta
			assert.Equal(t, tt.days, d.Days)
			assert.Equal(t, tt.secs, d.Seconds)
			assert.Equal(t, tt.microns, d.Microseconds)

			// Canonical form invariant.
			assert.GreaterOrEqual(t, d.Seconds, int64(0))
			assert.Less(t, d.Seconds, int64(86400))
			assert.GreaterOrEqual(t, d.Microseconds, int64(0))
			assert.Less(t, d.Microseconds, int64(1_000_000))
		})
	}
}

func TestFromSeconds(t *testing.T) {
	d := humantime.FromSeconds(90)
	assert.Equal(t, int64(0), d.Days)
	assert.Equal(t, int64(90), d.Seconds)
	assert.Equal(t, int64(0), d.Microseconds)

	d = humantime.FromSeconds(-1.5)
	assert.Equal(t, int64(-1), d.Days)
	assert.Equal(t, int64(86398), d.Seconds)
	assert.Equal(t, int64(500_000), d.Microseconds)
	assert.InDelta(t, -1.5, d.TotalSeconds(), 1e-9)
}

func TestTotalSecondsRoundTrip(t *testing.T) {
	for _, secs := range []float64{0, 1.25, -1.25, 86399.999999, -86400.5, 123456789.654321} {
		d := humantime.FromSeconds(secs)
		assert.InDelta(t, secs, d.TotalSeconds(), 1e-6, "FromSeconds(%v)", secs)
	}
}

func TestAbs(t *testing.T) {
	d := humantime.FromSeconds(-90.5)
	a := d.Abs()
	assert.InDelta(t, 90.5, a.TotalSeconds(), 1e-9)
	assert.GreaterOrEqual(t, a.Days, int64(0))

	// Abs of a non-negative value is the identity.
	p := humantime.New(2, 3633, 123000)
	assert.Equal(t, p, p.Abs())

	if math.Signbit(a.TotalSeconds()) {
		t.Error("Abs() produced a negative total")
	}
}

func TestFromDuration(t *testing.T) {
	d := humantime.FromDuration(26*time.Hour + 3*time.Second + 42*time.Microsecond)
	assert.Equal(t, int64(1), d.Days)
	assert.Equal(t, int64(7203), d.Seconds)
	assert.Equal(t, int64(42), d.Microseconds)

	n := humantime.FromDuration(-time.Second)
	assert.InDelta(t, -1, n.TotalSeconds(), 1e-9)
}
