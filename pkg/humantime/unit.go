package humantime

import (
	"errors"
	"fmt"
	"strings"
)

// Unit errors.
var (
	ErrUnknownUnit           = errors.New("unknown time unit")
	ErrUnitNotSupported      = errors.New("minimum unit not supported")
	ErrNoSuitableMinimumUnit = errors.New("minimum unit is suppressed and no suitable replacement was found")
)

// Unit is a time granularity. Units are totally ordered from Microseconds
// (finest) to Years (coarsest); the ordering is part of the package contract
// and is relied on for cascade bounds and suppression sets.
type Unit int

const (
	Microseconds Unit = iota
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
	Months
	Years
)

// allUnits lists every unit in rank order. The table is the authoritative
// ordering; tests pin it.
var allUnits = [...]Unit{
	Microseconds,
	Milliseconds,
	Seconds,
	Minutes,
	Hours,
	Days,
	Months,
	Years,
}

var unitNames = [...]string{
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
	Months:       "months",
	Years:        "years",
}

// String returns the lowercase unit name.
func (u Unit) String() string {
	if u < Microseconds || u > Years {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit resolves a case-insensitive unit name. Unrecognized names
// return a wrapped ErrUnknownUnit.
func ParseUnit(name string) (Unit, error) {
	lower := strings.ToLower(name)
	for _, u := range allUnits {
		if unitNames[u] == lower {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
}

// unitSet is a set of units backed by a bitmask. The zero value is empty.
type unitSet uint8

func (s unitSet) contains(u Unit) bool { return s&(1<<uint(u)) != 0 }

func (s unitSet) with(u Unit) unitSet { return s | 1<<uint(u) }

// parseUnitSet resolves suppression tokens. Unknown names are skipped:
// over-specifying suppression must never break formatting.
func parseUnitSet(names []string) unitSet {
	var s unitSet
	for _, name := range names {
		if u, err := ParseUnit(name); err == nil {
			s = s.with(u)
		}
	}
	return s
}

// suitableMinimumUnit returns min itself when it is not suppressed,
// otherwise the smallest non-suppressed unit above it.
func suitableMinimumUnit(min Unit, suppress unitSet) (Unit, error) {
	if !suppress.contains(min) {
		return min, nil
	}
	for _, u := range allUnits {
		if u > min && !suppress.contains(u) {
			return u, nil
		}
	}
	return 0, ErrNoSuitableMinimumUnit
}

// suppressBelow extends the set with every unit strictly below min; those
// units can never be displayed.
func suppressBelow(min Unit, suppress unitSet) unitSet {
	for _, u := range allUnits {
		if u == min {
			break
		}
		suppress = suppress.with(u)
	}
	return suppress
}
