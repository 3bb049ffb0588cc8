package pipeline

import (
	"cmp"
	"slices"
)

// DescendingSort returns a copy of values sorted from largest to smallest.
// Equal values keep their relative order. NaN is not ordered and must be
// rejected before sorting.
func DescendingSort(values []float64) []float64 {
	out := slices.Clone(values)

	slices.SortStableFunc(out, descending)
	return out
}

// Take returns a copy of the first min(n, len(values)) elements.
func Take(values []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	return slices.Clone(values[:min(n, len(values))])
}

func descending(a, b float64) int {
	return cmp.Compare(b, a)
}
