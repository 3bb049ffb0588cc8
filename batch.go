package pipeline

import (
	"context"
	"reflect"
)

// BatchFunc operates on every data element that reached a stage at once and
// returns the elements to forward, in order.
type BatchFunc func(context.Context, []Data) ([]Data, error)

type batch struct {
	id string
	fn BatchFunc
}

// Batch returns a Stage that waits for all of its input before calling fn,
// which makes it suitable for order-dependent steps such as sorting and
// truncation. Inputs that fn does not return are marked as processed.
// Inputs whose values are not comparable cannot be told apart, so they are
// only marked when fn returns nothing of the same type.
func Batch(id string, fn BatchFunc) Stage {
	return &batch{
		id: id,
		fn: fn,
	}
}

// ID implements Stage.
func (b *batch) ID() string {
	return b.id
}

// Run implements Stage.
func (b *batch) Run(ctx context.Context, sp StageParams) error {
	var in []Data

	if err := drain(ctx, sp.Input(), func(data Data) error {
		in = append(in, data)
		return nil
	}); err != nil {
		markAll(in)
		return err
	}

	out, err := b.fn(ctx, in)
	if err != nil {
		markAll(in)
		return err
	}

	index := make(map[Data]int, len(in))
	for i, data := range in {
		if hashable(data) {
			index[data] = i
		}
	}

	kept := make([]bool, len(in))
	types := make(map[reflect.Type]struct{})
	for _, data := range out {
		if data == nil {
			continue
		}
		if !hashable(data) {
			types[reflect.TypeOf(data)] = struct{}{}
		} else if i, ok := index[data]; ok {
			kept[i] = true
		}
		sp.Output().Append(data)
	}
	for i, data := range in {
		if kept[i] {
			continue
		}
		if !hashable(data) {
			if _, ok := types[reflect.TypeOf(data)]; ok {
				continue
			}
		}
		data.MarkAsProcessed()
	}
	return nil
}

func hashable(data Data) bool {
	return reflect.ValueOf(data).Comparable()
}

func markAll(data []Data) {
	for _, d := range data {
		d.MarkAsProcessed()
	}
}
