// Package parallel holds the self-parallel system workloads of the benchmark
// suite. Unlike the single-core kernels, these spawn and coordinate their own
// workers internally; the phase runner only wall-clock-times one call each.
//
// Four coordination patterns are represented:
//
//   - partitioned map: an iteration budget split max(1, I/P) per worker,
//     executed share-nothing through a worker pool and reduced to one value
//   - contended counter: a single mutex-guarded integer incremented by every
//     worker, critical section kept to the increment itself
//   - bounded producer/consumer: half the workers produce into a blocking
//     MPMC queue, half drain it, single-ownership per item
//   - pool load balancing: many tiny identical tasks pushed through the
//     pool's internal scheduling, approximating work stealing
//
// Entry points share the workload signature func(ctx, args) (int64, error)
// with args = [workers, budget]; both default when absent (workers to the
// logical core count).
package parallel
