package pipeline

import "context"

// InputSource is implemented by types that generate Data instances which can be
// used as inputs to a Pipeline instance.
type InputSource interface {
	// Next fetches the next data element from the source. If no more items are
	// available or an error occurs, calls to Next return false.
	Next(context.Context) bool

	// Data returns the next data to be processed.
	Data() Data

	// Error return the last error observed by the source.
	Error() error
}

type sliceSource struct {
	index  int
	values []float64
	cur    Data
	err    error
}

// SliceSource returns an InputSource that emits one Measurement per value,
// in slice order. The slice is not modified.
func SliceSource(values []float64) InputSource {
	return &sliceSource{values: values}
}

func (s *sliceSource) Next(ctx context.Context) bool {
	if s.err != nil || s.index == len(s.values) {
		return false
	}
	if err := ctx.Err(); err != nil {
		s.err = err
		return false
	}

	s.cur = NewMeasurement(s.values[s.index])
	s.index++
	return true
}

func (s *sliceSource) Data() Data   { return s.cur }
func (s *sliceSource) Error() error { return s.err }
