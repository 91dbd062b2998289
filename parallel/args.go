package parallel

import (
	"fmt"

	"github.com/utkarsh5026/silibench/internal/cpu"
)

// splitArgs resolves the [workers, budget] argument convention shared by all
// system workloads. Workers defaults to the logical core count, budget to the
// workload's own default.
func splitArgs(args []int, defaultBudget int) (workers, budget int, err error) {
	workers = cpu.LogicalCores()
	budget = defaultBudget

	if len(args) > 0 {
		if args[0] <= 0 {
			return 0, 0, fmt.Errorf("workers must be positive, got %d", args[0])
		}
		workers = args[0]
	}
	if len(args) > 1 {
		if args[1] <= 0 {
			return 0, 0, fmt.Errorf("budget must be positive, got %d", args[1])
		}
		budget = args[1]
	}
	return workers, budget, nil
}

// chunkOf partitions an iteration budget across workers with floor division,
// never handing a worker less than one iteration. P * chunkOf(I, P) is the
// exact amount of work performed, which is not I unless P divides I evenly.
func chunkOf(budget, workers int) int {
	return max(1, budget/workers)
}
