package bench

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func noProgress(n int) *progressTracker {
	return &progressTracker{fn: func(int, int) {}, total: n}
}

func TestRunSequential_CancelObservedAtBoundary(t *testing.T) {
	e := testEngine()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workloads := []Workload{
		fastWorkload("before"),
		{Name: "cancelling", Baseline: 0.1, Fn: func(_ context.Context, _ []int) (int64, error) {
			cancel() // takes effect only after this workload is scored
			return 1, nil
		}},
		fastWorkload("never"),
	}

	results := e.runSequential(ctx, workloads, noProgress(len(workloads)))

	if _, ok := results["before"]; !ok {
		t.Error("workload before cancellation should be scored")
	}
	if _, ok := results["cancelling"]; !ok {
		t.Error("the in-flight workload must finish and still be scored")
	}
	if _, ok := results["never"]; ok {
		t.Error("workloads after cancellation must not run")
	}
}

func TestRunThroughput_OneInvocationPerCore(t *testing.T) {
	const cores = 4
	e := testEngine(WithCores(cores))

	var invocations atomic.Int32
	workloads := []Workload{{
		Name:     "replicated",
		Baseline: 0.1,
		Fn: func(_ context.Context, _ []int) (int64, error) {
			invocations.Add(1)
			return 1, nil
		},
	}}

	results := e.runThroughput(context.Background(), workloads, noProgress(1))

	if got := invocations.Load(); got != cores {
		t.Errorf("expected %d invocations, got %d", cores, got)
	}
	if _, ok := results["replicated"]; !ok {
		t.Error("expected the replicated workload to be scored")
	}
}

func TestRunThroughput_WorkerFailureKeepsPhaseAlive(t *testing.T) {
	e := testEngine(WithCores(2))

	workloads := []Workload{
		{Name: "faulty", Baseline: 0.1, Fn: func(_ context.Context, _ []int) (int64, error) {
			return 0, errors.New("worker blew up")
		}},
		fastWorkload("healthy"),
	}

	results := e.runThroughput(context.Background(), workloads, noProgress(len(workloads)))

	if _, ok := results["faulty"]; ok {
		t.Error("descriptor with a failed worker must not be scored")
	}
	if _, ok := results["healthy"]; !ok {
		t.Error("the pool must survive a failed descriptor and serve the next one")
	}
}

func TestRunSystem_ScoresSingleCall(t *testing.T) {
	e := testEngine()

	var calls atomic.Int32
	workloads := []Workload{{
		Name:     "self-parallel",
		Baseline: 0.1,
		Fn: func(_ context.Context, _ []int) (int64, error) {
			calls.Add(1)
			return 1, nil
		},
	}}

	results := e.runSystem(context.Background(), workloads, noProgress(1))

	if got := calls.Load(); got != 1 {
		t.Errorf("system runner must invoke exactly once, got %d", got)
	}
	if _, ok := results["self-parallel"]; !ok {
		t.Error("expected the workload to be scored")
	}
}

func TestDefaultCatalogues_Shape(t *testing.T) {
	for _, tc := range []struct {
		name string
		list []Workload
	}{
		{"single-core", DefaultSingleCore()},
		{"throughput", DefaultThroughput()},
		{"system", DefaultSystem(4)},
	} {
		if len(tc.list) == 0 {
			t.Errorf("%s catalogue is empty", tc.name)
			continue
		}
		seen := map[string]bool{}
		for _, w := range tc.list {
			if w.Fn == nil {
				t.Errorf("%s: workload %q has no entry point", tc.name, w.Name)
			}
			if w.Baseline <= 0 {
				t.Errorf("%s: workload %q has non-positive baseline %v", tc.name, w.Name, w.Baseline)
			}
			if seen[w.Name] {
				t.Errorf("%s: duplicate workload name %q", tc.name, w.Name)
			}
			seen[w.Name] = true
		}
	}
}
