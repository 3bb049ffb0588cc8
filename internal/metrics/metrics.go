// Package metrics records pipeline activity with Prometheus counters and
// exports them in the node exporter textfile format.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unitflow/pipeline"
)

// Run results.
const (
	ResultOK              = "ok"
	ResultInvalidArgument = "invalid_argument"
	ResultError           = "error"
)

// Recorder holds the topn metrics on a private registry. It implements
// pipeline.Observer.
type Recorder struct {
	registry *prometheus.Registry
	ItemsIn  *prometheus.CounterVec
	ItemsOut *prometheus.CounterVec
	Runs     *prometheus.CounterVec
}

// New creates and registers the topn metrics.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		ItemsIn: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topn_stage_items_in_total",
			Help: "Total number of measurements that entered a pipeline stage",
		}, []string{"stage"}),
		ItemsOut: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topn_stage_items_out_total",
			Help: "Total number of measurements emitted by a pipeline stage",
		}, []string{"stage"}),
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "topn_runs_total",
			Help: "Total number of top-N runs by result",
		}, []string{"result"}),
	}
}

// Observe implements pipeline.Observer.
func (r *Recorder) Observe(stage string, in, out int) {
	r.ItemsIn.WithLabelValues(stage).Add(float64(in))
	r.ItemsOut.WithLabelValues(stage).Add(float64(out))
}

// RunFinished counts a completed run, classified by err.
func (r *Recorder) RunFinished(err error) {
	result := ResultOK
	switch {
	case errors.Is(err, pipeline.ErrInvalidArgument):
		result = ResultInvalidArgument
	case err != nil:
		result = ResultError
	}
	r.Runs.WithLabelValues(result).Inc()
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes the current metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
