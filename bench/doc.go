// Package bench is the execution and scoring core of the silibench suite.
//
// A benchmark run is a pass over three catalogues of workload descriptors
// under three execution regimes:
//
//   - single-core: each workload runs once on the calling goroutine
//   - multi-core throughput: each workload is replicated across a worker pool
//     sized to the logical core count and the whole batch is timed
//   - system: each workload manages its own internal parallelism (partitioned
//     maps, contended counters, producer/consumer queues) and is timed with a
//     single call
//
// Measured wall-clock times are normalized against fixed per-workload
// baselines into integer scores (higher is better) and averaged per phase.
//
// The Engine sequences the phases, owns cooperative cancellation, and reports
// through caller-supplied log and progress sinks. Cancellation via Stop is
// observed at descriptor boundaries only: an in-flight workload always
// finishes and is still scored before the run winds down.
package bench
