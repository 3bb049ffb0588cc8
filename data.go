package pipeline

import "strconv"

// Data is implemented by values that can be sent through a pipeline.
type Data interface {
	// Clone returns a new Data that is a deep-copy of the original.
	Clone() Data

	// MarkAsProcessed is invoked by the pipeline when the Data either
	// reaches the pipeline sink or gets discarded by one of the
	// pipeline stages.
	MarkAsProcessed()
}

// Measurement is a single real-valued quantity flowing through a pipeline.
// Stages treat the value as immutable and emit new measurements instead of
// modifying the one they received.
type Measurement struct {
	Value     float64
	processed bool
}

// NewMeasurement returns a Measurement holding v.
func NewMeasurement(v float64) *Measurement {
	return &Measurement{Value: v}
}

// Clone implements Data.
func (m *Measurement) Clone() Data { return &Measurement{Value: m.Value} }

// MarkAsProcessed implements Data.
func (m *Measurement) MarkAsProcessed() { m.processed = true }

// Processed reports whether the pipeline has finished with the measurement.
func (m *Measurement) Processed() bool { return m.processed }

func (m *Measurement) String() string {
	return strconv.FormatFloat(m.Value, 'g', -1, 64)
}
