package pool

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// WorkerPool is a generic, fixed-size worker pool implementation.
// It provides concurrent task processing with configurable worker count,
// context support, and proper error handling. The pool value itself is
// cheap configuration: workers are spawned per Process/Replicate call and
// are always joined before the call returns.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type WorkerPool[T any, R any] struct {
	workerCount     int
	taskBuffer      int
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool
}

// NewWorkerPool creates a new worker pool with the given options.
// Default configuration: workers = GOMAXPROCS, buffer = worker count.
func NewWorkerPool[T any, R any](opts ...WorkerPoolOption) *WorkerPool[T, R] {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		taskBuffer:  0, // Will be set to workerCount if not specified
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer == 0 {
		cfg.taskBuffer = cfg.workerCount
	}

	return &WorkerPool[T, R]{
		workerCount:     cfg.workerCount,
		taskBuffer:      cfg.taskBuffer,
		rateLimiter:     cfg.rateLimiter,
		continueOnError: cfg.continueOnError,
		pinWorkers:      cfg.pinWorkers,
	}
}

// WorkerCount returns the number of workers the pool dispatches to.
func (wp *WorkerPool[T, R]) WorkerCount() int {
	return wp.workerCount
}

// Process executes tasks concurrently using a pool of workers.
// It returns all results and any errors encountered during processing.
// If any worker returns an error, all workers are cancelled and the error
// is returned (unless the pool was built with WithContinueOnError).
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - tasks: Slice of tasks to process
//   - processFn: Function to process each task
//
// Returns:
//   - results: Slice of all results in task order (may be partial if errors occurred)
//   - error: First error encountered, if any
func (wp *WorkerPool[T, R]) Process(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	if len(tasks) == 0 {
		return []R{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	taskChan := make(chan indexedTask[T], wp.taskBuffer)
	resultChan := make(chan Result[R], len(tasks))

	numWorkers := min(wp.workerCount, len(tasks))
	for id := range numWorkers {
		g.Go(func() error {
			return wp.worker(ctx, id, taskChan, resultChan, processFn)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	// Collect results asynchronously
	results := make([]R, len(tasks))
	var collectionErr error
	var collectionWg sync.WaitGroup

	collectionWg.Add(1)
	go func() {
		defer collectionWg.Done()
		for result := range resultChan {
			if result.Error != nil {
				collectionErr = result.Error
				continue
			}
			if result.Index >= 0 && result.Index < len(results) {
				results[result.Index] = result.Value
			}
		}
	}()

	// Wait for all workers to complete
	if err := g.Wait(); err != nil {
		close(resultChan)
		collectionWg.Wait()
		return results, err
	}

	// Close result channel and wait for collection to complete
	close(resultChan)
	collectionWg.Wait()

	if collectionErr != nil {
		return results, collectionErr
	}

	return results, nil
}

// Replicate dispatches one invocation of processFn per worker, every worker
// receiving the same task value. All invocations run concurrently and
// Replicate returns once the whole batch has finished, so wall-clock timing
// around this call measures batch throughput rather than per-worker latency.
func (wp *WorkerPool[T, R]) Replicate(
	ctx context.Context,
	task T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	tasks := make([]T, wp.workerCount)
	for i := range tasks {
		tasks[i] = task
	}
	return wp.Process(ctx, tasks, processFn)
}
