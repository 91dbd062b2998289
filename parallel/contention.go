package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

const defaultContentionIterations = 1_000

// Contention hammers a single mutex-guarded counter from every worker. Each
// worker performs exactly chunkOf(budget, workers) increments and acquires
// the lock only for the increment itself, so the measurement is dominated by
// lock handoff cost. The final counter value is workers * chunk, which
// deliberately truncates the budget when workers does not divide it evenly.
func Contention(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultContentionIterations)
	if err != nil {
		return 0, err
	}
	chunk := chunkOf(iterations, workers)

	var mu sync.Mutex
	var counter int64

	g, _ := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for i := 0; i < chunk; i++ {
				mu.Lock()
				counter++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return counter, nil
}
