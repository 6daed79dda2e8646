// Package workers provides a small bounded worker pool for per-document
// fan-out. Results carry their input index so callers can reassemble
// output in input order.
package workers

import (
	"context"
	"sync"
)

type job[T any] struct {
	index int
	input T
}

// Result pairs one output value with the index of the input that produced
// it.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Map runs fn over every input on at most count workers and returns the
// results in input order. The first error cancels outstanding work and is
// returned; no partial output escapes.
func Map[T, R any](ctx context.Context, count int, inputs []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if count < 1 {
		count = 1
	}
	if count > len(inputs) {
		count = len(inputs)
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job[T])
	results := make(chan Result[R])

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				value, err := fn(ctx, j.input)
				select {
				case results <- Result[R]{Index: j.index, Value: value, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, input := range inputs {
			select {
			case jobs <- job[T]{index: i, input: input}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]R, len(inputs))
	received := 0
	for r := range results {
		if r.Err != nil {
			cancel()
			// Drain so the workers can exit.
			go func() {
				for range results {
				}
			}()
			return nil, r.Err
		}
		out[r.Index] = r.Value
		received++
		if received == len(inputs) {
			break
		}
	}
	if received < len(inputs) {
		// The results channel closed early: the context was cancelled
		// before every job could report in.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}
	return out, nil
}
