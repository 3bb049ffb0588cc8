package pipeline

import (
	"context"
	"fmt"

	"github.com/caffix/queue"
)

// StageParams provides the information needed for executing a pipeline
// Stage. The Pipeline passes a StageParams instance to the Run method
// of each stage.
type StageParams interface {
	// Position returns the position of this stage in the pipeline.
	Position() int

	// Input returns the queue holding the data for this stage.
	Input() queue.Queue

	// Output returns the queue that receives the data emitted by this stage.
	Output() queue.Queue
}

// Stage is designed to be executed in sequential order to
// form a multi-stage data pipeline.
type Stage interface {
	// ID returns the optional identifier assigned to this stage.
	ID() string

	// Run executes the processing logic for this stage by draining
	// the input queue, processing the data and appending the results
	// to the output queue. Run returns once the input queue is empty,
	// the context expires, or an error occurs.
	Run(context.Context, StageParams) error
}

type params struct {
	stage int
	in    queue.Queue
	out   queue.Queue
}

func (p *params) Position() int       { return p.stage }
func (p *params) Input() queue.Queue  { return p.in }
func (p *params) Output() queue.Queue { return p.out }

// ordered is a queue.Queue that hands elements back in the order they were
// appended. The underlying queue is a priority heap, so each Append gets a
// strictly lower priority than the one before it.
type ordered struct {
	queue.Queue
	seq int
}

func newQueue() queue.Queue {
	return &ordered{Queue: queue.NewQueue()}
}

// Append implements queue.Queue.
func (q *ordered) Append(data interface{}) {
	q.seq++
	q.Queue.AppendPriority(data, -q.seq)
}

// drain removes every element from q and passes the Data elements to fn.
func drain(ctx context.Context, q queue.Queue, fn func(Data) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e, ok := q.Next()
		if !ok {
			return nil
		}
		data, ok := e.(Data)
		if !ok {
			return fmt.Errorf("unexpected queue element %T", e)
		}
		if err := fn(data); err != nil {
			return err
		}
	}
}

// discard marks everything left in q as processed.
func discard(q queue.Queue) {
	q.Process(func(e interface{}) {
		if data, ok := e.(Data); ok {
			data.MarkAsProcessed()
		}
	})
}

func stageName(s Stage, pos int) string {
	if id := s.ID(); id != "" {
		return id
	}
	return fmt.Sprintf("stage%d", pos)
}
