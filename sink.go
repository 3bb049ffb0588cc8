package pipeline

import (
	"context"
	"fmt"
)

// OutputSink is implemented by types that can operate as the tail of a pipeline.
type OutputSink interface {
	// Consume processes a Data instance that has been emitted out of
	// a Pipeline instance.
	Consume(context.Context, Data) error
}

// SinkFunc is an adapter to allow the use of plain functions as OutputSink instances.
type SinkFunc func(context.Context, Data) error

// Consume calls f(ctx, data)
func (f SinkFunc) Consume(ctx context.Context, data Data) error {
	return f(ctx, data)
}

// Collector is an OutputSink that gathers measurement values in the order
// they leave the pipeline.
type Collector struct {
	values []float64
}

// Collect returns an empty Collector.
func Collect() *Collector {
	return new(Collector)
}

// Consume implements OutputSink.
func (c *Collector) Consume(_ context.Context, data Data) error {
	m, ok := data.(*Measurement)
	if !ok {
		return fmt.Errorf("unexpected data type %T", data)
	}

	c.values = append(c.values, m.Value)
	return nil
}

// Values returns the collected values. The result is never nil.
func (c *Collector) Values() []float64 {
	if c.values == nil {
		return []float64{}
	}
	return c.values
}
