package pipeline

import (
	"context"
	"fmt"

	"github.com/caffix/queue"
	"github.com/caffix/stringset"
	"github.com/hashicorp/go-multierror"
)

// Observer is notified after each stage run with the number of data
// elements that entered and left the stage.
type Observer interface {
	Observe(stage string, in, out int)
}

// ObserverFunc is an adapter to allow the use of plain functions as Observer instances.
type ObserverFunc func(stage string, in, out int)

// Observe calls f(stage, in, out)
func (f ObserverFunc) Observe(stage string, in, out int) {
	f(stage, in, out)
}

// Pipeline is an abstract and extendable data pipeline. Each pipeline
// is constructed from an InputSource, an OutputSink, and zero or more
// Stage instances for processing. Stages run one after the other in the
// calling goroutine, each consuming everything the previous stage emitted.
type Pipeline struct {
	stages   []Stage
	observer Observer
}

// NewPipeline returns a new data pipeline instance where input
// traverse each of the provided Stage instances.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// WithObserver sets the Observer notified by Execute and returns p.
func (p *Pipeline) WithObserver(o Observer) *Pipeline {
	p.observer = o
	return p
}

// Execute reads data from the InputSource, sends them through each of the
// Stage instances, and finishes with the OutputSink. The sink only sees data
// once every stage has completed, so a failing execution emits nothing.
// Execute returns the errors that occurred during the execution.
func (p *Pipeline) Execute(ctx context.Context, src InputSource, sink OutputSink) error {
	if err := p.validate(); err != nil {
		return err
	}

	in := newQueue()
	if err := inputSourceRunner(ctx, src, in); err != nil {
		discard(in)
		return err
	}

	for i, s := range p.stages {
		if err := ctx.Err(); err != nil {
			discard(in)
			return err
		}

		pos := i + 1
		out := newQueue()
		before := in.Len()
		if err := s.Run(ctx, &params{stage: pos, in: in, out: out}); err != nil {
			var result error

			result = multierror.Append(result, fmt.Errorf("pipeline stage %d: %w", pos, err))
			if n := in.Len() + out.Len(); n > 0 {
				result = multierror.Append(result, fmt.Errorf("pipeline stage %d: discarded %d pending elements", pos, n))
			}
			discard(in)
			discard(out)
			return result
		}

		if p.observer != nil {
			p.observer.Observe(stageName(s, pos), before, out.Len())
		}
		in = out
	}

	return outputSinkRunner(ctx, sink, in)
}

// validate rejects nil stages and duplicate stage identifiers.
func (p *Pipeline) validate() error {
	var result error

	ids := stringset.New()
	defer ids.Close()

	for i, s := range p.stages {
		if s == nil {
			result = multierror.Append(result, fmt.Errorf("pipeline stage %d: nil stage", i+1))
			continue
		}

		id := s.ID()
		if id == "" {
			continue
		}
		if ids.Has(id) {
			result = multierror.Append(result, fmt.Errorf("pipeline stage %d: duplicate stage id %q", i+1, id))
			continue
		}
		ids.Insert(id)
	}
	return result
}

// inputSourceRunner drains the InputSource into the queue
// feeding the first stage of the pipeline.
func inputSourceRunner(ctx context.Context, src InputSource, out queue.Queue) error {
	for src.Next(ctx) {
		out.Append(src.Data())
	}
	// Check for errors
	if err := src.Error(); err != nil {
		return fmt.Errorf("pipeline input source: %w", err)
	}
	return nil
}

func outputSinkRunner(ctx context.Context, sink OutputSink, in queue.Queue) error {
	defer discard(in)

	return drain(ctx, in, func(data Data) error {
		defer data.MarkAsProcessed()

		if sink == nil {
			return nil
		}
		if err := sink.Consume(ctx, data); err != nil {
			return fmt.Errorf("pipeline output sink: %w", err)
		}
		return nil
	})
}
