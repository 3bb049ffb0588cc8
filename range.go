package pipeline

import (
	"math"
	"strconv"
)

// Range is an inclusive interval [Min, Max] used as a filter predicate.
type Range struct {
	Min float64
	Max float64
}

// NewRange returns the Range [min, max]. It fails when min > max or
// either bound is NaN.
func NewRange(min, max float64) (Range, error) {
	r := Range{Min: min, Max: max}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate checks a Range built as a literal.
func (r Range) Validate() error {
	switch {
	case math.IsNaN(r.Min):
		return argError("range.min", r.Min, "must be a number")
	case math.IsNaN(r.Max):
		return argError("range.max", r.Max, "must be a number")
	case r.Min > r.Max:
		return argError("range", r, "min must not exceed max")
	}
	return nil
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

func (r Range) String() string {
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + ", " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}

// InRange is the inclusive membership test.
func InRange(v float64, r Range) bool {
	return r.Contains(v)
}
