package pipeline

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal digits kept by TopN.
const DefaultPrecision = 2

// MaxPrecision is the largest precision accepted by TopN. A float64 has no
// significant digits past it, so rounding there leaves every value as is.
const MaxPrecision = 340

// RoundingFunc rounds value to precision decimal digits.
type RoundingFunc func(value float64, precision int) float64

// RoundTo rounds half away from zero on the shortest decimal representation
// of v, so 2.675 becomes 2.68 and -2.675 becomes -2.68 regardless of how the
// binary value compares to the midpoint. Values already at the target
// precision come back unchanged. NaN and infinities are returned as is.
func RoundTo(v float64, precision int) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(clampPrecision(precision)).InexactFloat64()
}

// RoundHalfEven is RoundTo with ties going to the even digit.
func RoundHalfEven(v float64, precision int) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).RoundBank(clampPrecision(precision)).InexactFloat64()
}

// clampPrecision limits precision to ±MaxPrecision, which also keeps the
// conversion to int32 from wrapping.
func clampPrecision(precision int) int32 {
	return int32(min(max(precision, -MaxPrecision), MaxPrecision))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
