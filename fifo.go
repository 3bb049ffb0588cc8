package pipeline

import "context"

type fifo struct {
	id   string
	task Task
}

// FIFO returns a Stage that processes incoming data in a first-in first-out
// fashion. Each input is passed to the specified Task and its output
// is emitted to the next Stage.
func FIFO(id string, task Task) Stage {
	return &fifo{
		id:   id,
		task: task,
	}
}

// ID implements Stage.
func (r *fifo) ID() string {
	return r.id
}

// Run implements Stage.
func (r *fifo) Run(ctx context.Context, sp StageParams) error {
	return drain(ctx, sp.Input(), func(data Data) error {
		return r.executeTask(ctx, data, sp)
	})
}

func (r *fifo) executeTask(ctx context.Context, data Data, sp StageParams) error {
	dataOut, err := r.task.Process(ctx, data)
	if err != nil {
		data.MarkAsProcessed()
		return err
	}
	// If the task did not output data for the
	// next stage there is nothing we need to do
	if dataOut == nil {
		data.MarkAsProcessed()
		return nil
	}
	// The task replaced the input with a new value
	if dataOut != data {
		data.MarkAsProcessed()
	}

	sp.Output().Append(dataOut)
	return nil
}
