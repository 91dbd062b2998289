package pool

import (
	"context"
	"fmt"
	"runtime"

	"github.com/utkarsh5026/silibench/internal/cpu"
)

// worker is the core worker function that processes tasks from the task channel.
// It includes panic recovery to prevent a single task from crashing the entire pool.
func (wp *WorkerPool[T, R]) worker(
	ctx context.Context,
	id int,
	taskChan <-chan indexedTask[T],
	resultChan chan<- Result[R],
	processFn ProcessFunc[T, R],
) error {
	if wp.pinWorkers {
		cleanup := cpu.SetupWorkerAffinity(id)
		defer cleanup()
	}

	for {
		select {
		case task, ok := <-taskChan:
			if !ok {
				return nil
			}
			if wp.rateLimiter != nil {
				if err := wp.rateLimiter.Wait(ctx); err != nil {
					return err
				}
			}
			result, err := runWithRecovery(ctx, task.task, processFn)
			select {
			case resultChan <- Result[R]{Value: result, Error: err, Index: task.index}:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err != nil && !wp.continueOnError {
				return err // Stop on first error
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// runWithRecovery executes a task with panic recovery.
// If a panic occurs, it's converted to an error to prevent crashing the worker.
func runWithRecovery[T, R any](
	ctx context.Context,
	task T,
	processFn ProcessFunc[T, R],
) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return processFn(ctx, task)
}
