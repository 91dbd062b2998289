package bench

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/silibench/pool"
)

// sink receives every workload's observable return value so the compiler can
// never prove the computation unused.
var sink atomic.Int64

// invoke runs one workload entry point, converting panics to errors so a
// broken workload drops out of its phase instead of killing the run.
func invoke(ctx context.Context, w Workload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("workload panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	v, err := w.Fn(ctx, w.Args)
	if err != nil {
		return err
	}
	sink.Store(v)
	return nil
}

// runSequential executes the workload list in order on the calling goroutine,
// one invocation per descriptor. Failures are logged and skipped; the phase
// keeps whatever it has scored when cancellation is observed.
func (e *Engine) runSequential(ctx context.Context, workloads []Workload, prog *progressTracker) PhaseResult {
	results := PhaseResult{}
	invokeCtx := context.WithoutCancel(ctx)

	for _, w := range workloads {
		if ctx.Err() != nil {
			break
		}
		e.logf("Running SC %s...", w.Name)

		start := time.Now()
		err := invoke(invokeCtx, w)
		elapsed := time.Since(start)
		prog.step()

		if err != nil {
			e.logf("Error in %s: %v", w.Name, err)
			continue
		}

		score := Score(w.Baseline, elapsed.Seconds(), 1)
		results[w.Name] = score
		e.logf("  > Time: %.4fs | Score: %d", elapsed.Seconds(), score)
		e.cooldown(ctx, e.singleCooldown)
	}
	return results
}

// runThroughput executes the workload list by dispatching one invocation per
// pool worker with identical arguments and timing the whole batch: a
// throughput measurement, not a latency one. One pool serves the entire
// phase; a failed worker invocation skips that descriptor's score but leaves
// the pool in place for the remaining descriptors. Scores are scaled by the
// core count to credit the N units of work completed per batch.
func (e *Engine) runThroughput(ctx context.Context, workloads []Workload, prog *progressTracker) PhaseResult {
	results := PhaseResult{}
	invokeCtx := context.WithoutCancel(ctx)

	opts := []pool.WorkerPoolOption{pool.WithWorkerCount(e.cores)}
	if e.pinWorkers {
		opts = append(opts, pool.WithCPUAffinity())
	}
	workers := pool.NewWorkerPool[Workload, int64](opts...)

	for _, w := range workloads {
		if ctx.Err() != nil {
			break
		}
		e.logf("Running MC %s (x%d)...", w.Name, e.cores)

		start := time.Now()
		batch, err := workers.Replicate(invokeCtx, w, func(ctx context.Context, w Workload) (int64, error) {
			return w.Fn(ctx, w.Args)
		})
		elapsed := time.Since(start)
		prog.step()

		if err != nil {
			e.logf("Error in %s: %v", w.Name, err)
			continue
		}
		for _, v := range batch {
			sink.Store(v)
		}

		score := Score(w.Baseline, elapsed.Seconds(), float64(e.cores))
		results[w.Name] = score
		e.logf("  > Time: %.4fs | Score: %d", elapsed.Seconds(), score)
		e.cooldown(ctx, e.multiCooldown)
	}
	return results
}

// runSystem executes workloads that spawn and coordinate their own workers
// internally. The runner times exactly one call per descriptor and applies no
// scale factor: each baseline already encodes the cost of the workload's
// internal N-way execution.
func (e *Engine) runSystem(ctx context.Context, workloads []Workload, prog *progressTracker) PhaseResult {
	results := PhaseResult{}
	invokeCtx := context.WithoutCancel(ctx)

	for _, w := range workloads {
		if ctx.Err() != nil {
			break
		}
		e.logf("Running Extra %s...", w.Name)

		start := time.Now()
		err := invoke(invokeCtx, w)
		elapsed := time.Since(start)
		prog.step()

		if err != nil {
			e.logf("Error in %s: %v", w.Name, err)
			continue
		}

		score := Score(w.Baseline, elapsed.Seconds(), 1)
		results[w.Name] = score
		e.logf("  > Time: %.4fs | Score: %d", elapsed.Seconds(), score)
		e.cooldown(ctx, e.systemCooldown)
	}
	return results
}

// cooldown pauses between measurements so thermal and cache carry-over from
// one workload does not bias the next. The pause is cut short on cancellation.
func (e *Engine) cooldown(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
