package services

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseNumber parses a user-entered amount or dimension. Blank or malformed
// input becomes 0. "NaN", "Inf" and values too large for a float64 (which
// become ±Inf) are left for the estimator to reject.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return v
}

// ParseCount parses a whole-number input such as a worker count, truncating
// any fractional part. Anything that is not a finite number becomes 0.
func ParseCount(s string) int {
	v := ParseNumber(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Trunc(v))
}
