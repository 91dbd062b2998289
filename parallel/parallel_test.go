package parallel

import (
	"context"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	workers, budget, err := splitArgs([]int{4, 500}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workers != 4 || budget != 500 {
		t.Errorf("expected (4, 500), got (%d, %d)", workers, budget)
	}

	workers, budget, err = splitArgs([]int{8}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workers != 8 || budget != 100 {
		t.Errorf("expected (8, 100), got (%d, %d)", workers, budget)
	}

	if _, _, err := splitArgs([]int{0}, 100); err == nil {
		t.Error("expected error for zero workers")
	}
	if _, _, err := splitArgs([]int{2, -5}, 100); err == nil {
		t.Error("expected error for negative budget")
	}
}

func TestChunkOf(t *testing.T) {
	tests := []struct {
		budget, workers, want int
	}{
		{1000, 4, 250},
		{1000, 3, 333},
		{3, 5, 1}, // never below one iteration per worker
		{7, 7, 1},
	}
	for _, tt := range tests {
		if got := chunkOf(tt.budget, tt.workers); got != tt.want {
			t.Errorf("chunkOf(%d, %d) = %d, want %d", tt.budget, tt.workers, got, tt.want)
		}
	}
}

func TestContention_ExactFinalCount(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		workers, budget int
		want            int64
	}{
		{4, 1000, 1000}, // even split
		{3, 1000, 999},  // floor division truncates the budget
		{5, 3, 5},       // minimum one increment per worker
	}
	for _, tt := range tests {
		got, err := Contention(ctx, []int{tt.workers, tt.budget})
		if err != nil {
			t.Fatalf("Contention(%d, %d): %v", tt.workers, tt.budget, err)
		}
		if got != tt.want {
			t.Errorf("Contention(%d, %d) = %d, want %d", tt.workers, tt.budget, got, tt.want)
		}
	}
}

func TestProducerConsumer_ItemAccounting(t *testing.T) {
	ctx := context.Background()

	// 2 producers x 100 items each, 2 consumers x 100 items each.
	got, err := ProducerConsumer(ctx, []int{4, 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Errorf("expected 200 produced items, got %d", got)
	}

	// 5 workers: 2 producers x 3 items = 6 total, 3 consumers x 2 items.
	got, err = ProducerConsumer(ctx, []int{5, 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 6 {
		t.Errorf("expected 6 produced items, got %d", got)
	}

	// Single worker acts as both the one producer and the one consumer;
	// the queue capacity absorbs the full batch.
	got, err = ProducerConsumer(ctx, []int{1, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("expected 10 produced items, got %d", got)
	}
}

func TestLoadBalance_OneResultPerTask(t *testing.T) {
	got, err := LoadBalance(context.Background(), []int{4, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("expected 100 task results, got %d", got)
	}
}

func TestRayBatch_DeterministicHitCount(t *testing.T) {
	// chunk=50 per worker; hits are i%100 <= 35, so 36 per worker.
	got, err := RayBatch(context.Background(), []int{2, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 72 {
		t.Errorf("expected 72 hits, got %d", got)
	}
}

func TestStreamTriad_SumOfFirstElements(t *testing.T) {
	// c[0] = 1 + 3*2 = 7 per worker.
	got, err := StreamTriad(context.Background(), []int{2, 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 14 {
		t.Errorf("expected 14, got %d", got)
	}
}

func TestMonteCarlo_EstimateWithinBounds(t *testing.T) {
	const (
		workers = 4
		samples = 40_000
	)
	inside, err := MonteCarlo(context.Background(), []int{workers, samples})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// pi/4 of uniform points land inside the quarter circle; with 40k
	// samples the estimate is comfortably within (0.7, 0.9).
	ratio := float64(inside) / float64(samples)
	if ratio < 0.7 || ratio > 0.9 {
		t.Errorf("inside ratio %.4f outside expected band", ratio)
	}
}

func TestPartitionedKernels_Smoke(t *testing.T) {
	ctx := context.Background()
	kernels := []struct {
		name string
		fn   func(ctx context.Context, args []int) (int64, error)
	}{
		{"HashFarm", HashFarm},
		{"ParallelCompress", ParallelCompress},
		{"ImageTiles", ImageTiles},
		{"PointerChase", PointerChase},
	}
	for _, k := range kernels {
		k := k
		t.Run(k.name, func(t *testing.T) {
			t.Parallel()
			if _, err := k.fn(ctx, []int{2, 8}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := k.fn(ctx, []int{-1}); err == nil {
				t.Error("expected error for negative workers")
			}
		})
	}
}
