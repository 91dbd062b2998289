package parallel

import (
	"context"

	"github.com/utkarsh5026/silibench/pool"
)

const (
	defaultBalanceTasks = 1_000
	balanceTaskSamples  = 10
)

// LoadBalance floods the pool with many tiny, equally-sized tasks and lets
// the pool's internal channel scheduling spread them across the workers.
// This approximates work stealing at the load-balancing level without
// per-worker deques; each task is a handful of monte carlo samples, so the
// measurement is dominated by dispatch overhead rather than compute.
func LoadBalance(ctx context.Context, args []int) (int64, error) {
	workers, taskCount, err := splitArgs(args, defaultBalanceTasks)
	if err != nil {
		return 0, err
	}

	tasks := make([]int, taskCount)
	for i := range tasks {
		tasks[i] = i
	}

	p := pool.NewWorkerPool[int, int64](
		pool.WithWorkerCount(workers),
		pool.WithTaskBuffer(taskCount),
	)
	results, err := p.Process(ctx, tasks, func(_ context.Context, id int) (int64, error) {
		return monteCarloChunk(int64(id+1), balanceTaskSamples), nil
	})
	if err != nil {
		return 0, err
	}

	return int64(len(results)), nil
}
