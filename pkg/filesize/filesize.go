// Package filesize formats byte counts as human-readable sizes.
//
// Three suffix families are supported: decimal ("3.0 MB", powers of 1000),
// binary ("2.9 KiB", powers of 1024), and GNU ls style ("2.9K", powers of
// 1024 with no space).
package filesize

import (
	"math"
	"strconv"

	"github.com/jackburrus/speakhuman/pkg/number"
)

var (
	suffixesDecimal = []string{" kB", " MB", " GB", " TB", " PB", " EB", " ZB", " YB", " RB", " QB"}
	suffixesBinary  = []string{" KiB", " MiB", " GiB", " TiB", " PiB", " EiB", " ZiB", " YiB", " RiB", " QiB"}
	suffixesGNU     = []string{"K", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q"}
)

// NaturalSize formats a number of bytes like a human-readable filesize.
// binary selects IEC suffixes over a 1024 base, gnu selects single-letter
// suffixes over a 1024 base, and format controls the precision of the
// scaled value ("%.1f" is the conventional choice).
func NaturalSize(value float64, binary, gnu bool, format string) string {
	suffixes := suffixesDecimal
	base := 1000.0
	switch {
	case gnu:
		suffixes = suffixesGNU
		base = 1024
	case binary:
		suffixes = suffixesBinary
		base = 1024
	}

	abs := math.Abs(value)

	if abs == 1 && !gnu {
		return strconv.FormatInt(int64(value), 10) + " Byte"
	}
	if abs < base {
		if gnu {
			return strconv.FormatInt(int64(value), 10) + "B"
		}
		return strconv.FormatInt(int64(value), 10) + " Bytes"
	}

	exp := int(math.Log(abs) / math.Log(base))
	if exp > len(suffixes) {
		exp = len(suffixes)
	}
	scaled := value / math.Pow(base, float64(exp))
	return number.FormatFloat(format, scaled) + suffixes[exp-1]
}
