// Package core holds the order domain model and the pure aggregation
// functions over it. Nothing in this package performs I/O.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount interprets price text as a number. Absent or unparsable text
// is worth 0, so sums over legacy data never fail and NaN never propagates.
func ParseAmount(s string) float64 {
	v, ok := parseFloat(s)
	if !ok {
		return 0
	}
	return v
}

// ParsePercent interprets discount text as a percentage, with the same
// coercion rule as ParseAmount.
func ParsePercent(s string) float64 {
	return ParseAmount(s)
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
