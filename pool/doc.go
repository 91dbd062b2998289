// Package pool provides a small, generic worker pool for concurrent
// CPU-bound task processing.
//
// The primary type is WorkerPool[T, R], a fixed-size pool of workers which
// process tasks of type T and return results of type R. Workers are spawned
// for a single unit of work (a Process or Replicate call) and torn down
// deterministically when that call returns, on every exit path including
// worker panics. The pool supports context-aware processing, panic recovery,
// rate limiting, and optional per-worker CPU affinity via functional options.
//
// # Basic Usage
//
//	ctx := context.Background()
//	tasks := []int{1, 2, 3, 4}
//	p := pool.NewWorkerPool[int, int](pool.WithWorkerCount(4))
//	results, err := p.Process(ctx, tasks, func(ctx context.Context, t int) (int, error) {
//	    return t * 2, nil
//	})
//
// # Replicated Dispatch
//
// Replicate runs the same task once per worker concurrently. This is the
// building block for saturation benchmarks: N workers each complete one unit
// of identical work, and the caller measures the wall time of the whole batch.
//
//	results, err := p.Replicate(ctx, task, processFn)
//
// # Bounded Queue
//
// The package also exports MPMCQueue[T], a bounded multi-producer
// multi-consumer ring queue whose Enqueue blocks while the queue is full and
// whose Dequeue blocks while it is empty. It backs producer/consumer style
// workloads that need a blocking handoff rather than pool-mediated dispatch.
//
// # Error Handling
//
// Process uses fail-fast semantics: when any worker encounters an error,
// in-flight siblings are cancelled and the first error is returned. Panic
// recovery is built-in, converting panics to errors with stack traces so a
// single bad task can never crash the pool.
//
// The package is designed to be small and idiomatic for Go 1.18+ (generics).
package pool
