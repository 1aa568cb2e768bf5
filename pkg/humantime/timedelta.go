package humantime

import (
	"math"
	"time"
)

const (
	microsPerSecond = 1_000_000
	microsPerDay    = 86_400 * microsPerSecond
)

// TimeDelta is a signed duration broken into days, seconds, and
// microseconds. The canonical form follows floor-division normalization:
// Seconds is always in [0, 86400), Microseconds in [0, 1e6), and Days alone
// carries the sign, so the represented value is always
// Days*86400 + Seconds + Microseconds/1e6. Values are immutable; every
// constructor returns the canonical form.
type TimeDelta struct {
	Days         int64
	Seconds      int64
	Microseconds int64
}

// New returns the normalized TimeDelta for an arbitrary signed triple.
func New(days, seconds, microseconds int64) TimeDelta {
	return fromMicros(days*microsPerDay + seconds*microsPerSecond + microseconds)
}

// FromSeconds returns the TimeDelta for a float number of seconds, rounded
// to the nearest microsecond.
func FromSeconds(secs float64) TimeDelta {
	return fromMicros(int64(math.Round(secs * microsPerSecond)))
}

// FromDuration converts a time.Duration, truncating below microsecond
// resolution.
func FromDuration(d time.Duration) TimeDelta {
	return fromMicros(d.Microseconds())
}

// fromMicros normalizes a total microsecond count. Floor division keeps the
// remainder fields non-negative for negative totals, matching the sign
// convention of wall-clock delta types.
func fromMicros(total int64) TimeDelta {
	days := total / microsPerDay
	rem := total % microsPerDay
	if rem < 0 {
		days--
		rem += microsPerDay
	}
	return TimeDelta{
		Days:         days,
		Seconds:      rem / microsPerSecond,
		Microseconds: rem % microsPerSecond,
	}
}

// totalMicros recovers the signed microsecond count.
func (d TimeDelta) totalMicros() int64 {
	return d.Days*microsPerDay + d.Seconds*microsPerSecond + d.Microseconds
}

// TotalSeconds recovers the signed duration as a float number of seconds.
func (d TimeDelta) TotalSeconds() float64 {
	return float64(d.Days)*86_400 + float64(d.Seconds) + float64(d.Microseconds)/microsPerSecond
}

// Abs returns the non-negative form of the duration.
func (d TimeDelta) Abs() TimeDelta {
	if d.Days < 0 {
		return fromMicros(-d.totalMicros())
	}
	return d
}
