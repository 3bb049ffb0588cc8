package pipeline

import (
	"context"
	"fmt"
	"slices"
)

// Map returns a FIFO stage that replaces each measurement with its
// converted value. A conversion that yields NaN or an infinity fails the stage.
func Map(id string, c Converter) Stage {
	return FIFO(id, MeasurementFunc(func(_ context.Context, m *Measurement) (*Measurement, error) {
		v := c.Convert(m.Value)
		if !finite(v) {
			return nil, argError("convert", m.Value, "produced %v", v)
		}
		return NewMeasurement(v), nil
	}))
}

// Filter returns a FIFO stage that discards the measurements for which
// keep returns false.
func Filter(id string, keep func(float64) bool) Stage {
	return FIFO(id, MeasurementFunc(func(_ context.Context, m *Measurement) (*Measurement, error) {
		if !keep(m.Value) {
			return nil, nil
		}
		return m, nil
	}))
}

// SortDescending returns a Batch stage that emits its measurements from
// largest to smallest, keeping the arrival order of equal values.
func SortDescending(id string) Stage {
	return Batch(id, func(_ context.Context, in []Data) ([]Data, error) {
		ms := make([]*Measurement, len(in))
		for i, data := range in {
			m, err := measurement(data)
			if err != nil {
				return nil, err
			}
			ms[i] = m
		}

		slices.SortStableFunc(ms, func(a, b *Measurement) int {
			return descending(a.Value, b.Value)
		})

		out := make([]Data, len(ms))
		for i, m := range ms {
			out[i] = m
		}
		return out, nil
	})
}

// Limit returns a Batch stage that forwards at most the first n elements.
func Limit(id string, n int) Stage {
	return Batch(id, func(_ context.Context, in []Data) ([]Data, error) {
		return in[:min(max(n, 0), len(in))], nil
	})
}

// Round returns a FIFO stage that rounds each measurement with fn.
func Round(id string, fn RoundingFunc, precision int) Stage {
	return FIFO(id, MeasurementFunc(func(_ context.Context, m *Measurement) (*Measurement, error) {
		return NewMeasurement(fn(m.Value, precision)), nil
	}))
}

func measurement(data Data) (*Measurement, error) {
	m, ok := data.(*Measurement)
	if !ok {
		return nil, fmt.Errorf("unexpected data type %T", data)
	}
	return m, nil
}
