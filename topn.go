package pipeline

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

type options struct {
	precision int
	round     RoundingFunc
	observer  Observer
}

// Option configures a TopN call.
type Option func(*options)

// WithPrecision sets the number of decimal digits kept in the results.
// The default is DefaultPrecision.
func WithPrecision(p int) Option {
	return func(o *options) { o.precision = p }
}

// WithRounding replaces RoundTo as the rounding rule.
func WithRounding(fn RoundingFunc) Option {
	return func(o *options) { o.round = fn }
}

// WithObserver reports the item counts of each pipeline stage to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}

// TopN converts every value with convert, keeps the results inside r,
// sorts them in descending order, takes the first n and rounds each of
// them. n must be between 1 and len(values); fewer than n results are
// returned when fewer values fall inside r. All argument problems are
// reported together and match ErrInvalidArgument, in which case the
// result is nil. values is not modified.
//
// Rounding happens after the range check, so a result may sit up to half
// a unit of the precision outside r.
func TopN(values []float64, convert Converter, r Range, n int, opts ...Option) ([]float64, error) {
	o := options{
		precision: DefaultPrecision,
		round:     RoundTo,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(values, convert, r, n, o); err != nil {
		return nil, err
	}

	sink := Collect()
	p := NewTopNPipeline(convert, r, n, o.round, o.precision)
	if o.observer != nil {
		p.WithObserver(o.observer)
	}
	if err := p.Execute(context.Background(), SliceSource(values), sink); err != nil {
		return nil, err
	}
	return sink.Values(), nil
}

// NewTopNPipeline returns the convert, range, sort, take and round stages
// of TopN as a Pipeline. It performs no argument validation.
func NewTopNPipeline(convert Converter, r Range, n int, round RoundingFunc, precision int) *Pipeline {
	return NewPipeline(
		Map("convert", convert),
		Filter("range", r.Contains),
		SortDescending("sort"),
		Limit("take", n),
		Round("round", round, precision),
	)
}

func validate(values []float64, convert Converter, r Range, n int, o options) error {
	var result error

	if n < 1 || n > len(values) {
		result = multierror.Append(result, argError("n", n, "must be between 1 and %d", len(values)))
	}
	if err := r.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if convert == nil {
		result = multierror.Append(result, argError("convert", nil, "conversion function is required"))
	}
	if o.round == nil {
		result = multierror.Append(result, argError("round", nil, "rounding function is required"))
	}
	if o.precision < 0 || o.precision > MaxPrecision {
		result = multierror.Append(result, argError("precision", o.precision, "must be between 0 and %d", MaxPrecision))
	}
	for i, v := range values {
		if !finite(v) {
			result = multierror.Append(result, argError("values", v, "element %d is not a finite number", i))
		}
	}
	return result
}
