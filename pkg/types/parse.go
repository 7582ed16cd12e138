package types

import (
	"strconv"
	"strings"
)

// ParseHardness converts stored Mohs hardness text to a float. A plain
// number parses as-is; a "low-high" range yields its lower bound; anything
// unparseable yields zero, never an error, since hardness is a display
// attribute rather than a correctness-critical key. The filter and ingest
// paths share this routine.
func ParseHardness(s string) float64 {
	first, _, _ := strings.Cut(s, "-")
	f, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseRange splits stored "lo-hi" range text into its bounds. A single
// numeric value yields lo == hi. ok is false when the text parses as
// neither.
func ParseRange(s string) (lo, hi float64, ok bool) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, f, true
	}
	first, rest, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(first), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
