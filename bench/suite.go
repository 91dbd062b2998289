package bench

import (
	"github.com/utkarsh5026/silibench/parallel"
	"github.com/utkarsh5026/silibench/workloads"
)

// Baselines are rough single-unit timings for a mid-range modern core
// (Zen3/Skylake class). They only need to be stable, not accurate: scores are
// ratios against them.

// DefaultSingleCore returns the stock single-core catalogue. Empty Args
// select each kernel's default iteration count.
func DefaultSingleCore() []Workload {
	return []Workload{
		{Name: "Integer ALU", Fn: workloads.IntegerALU, Baseline: 0.05},
		{Name: "Branching", Fn: workloads.BranchyCode, Baseline: 0.08},
		{Name: "String Proc", Fn: workloads.StringProcessing, Baseline: 0.15},
		{Name: "Hashing", Fn: workloads.Hashing, Baseline: 0.12},
		{Name: "Encryption", Fn: workloads.EncryptionRounds, Baseline: 0.20},
		{Name: "Compression", Fn: workloads.Compression, Baseline: 0.18},
		{Name: "Matrix Math", Fn: workloads.MatrixMath, Baseline: 0.10},
		{Name: "FFT", Fn: workloads.FFT, Baseline: 0.25},
		{Name: "Physics", Fn: workloads.PhysicsNBody, Baseline: 0.30},
		{Name: "Ray Tracing", Fn: workloads.RayTrace, Baseline: 0.15},
		{Name: "Image Blur", Fn: workloads.GaussianBlur, Baseline: 0.40},
		{Name: "Compiler", Fn: workloads.CompilerSim, Baseline: 0.15},
	}
}

// DefaultThroughput returns the stock multi-core catalogue: the same kernels
// as the single-core list but as a distinct slice, so saturation baselines
// can be tuned independently of the single-core ones.
func DefaultThroughput() []Workload {
	return DefaultSingleCore()
}

// DefaultSystem returns the stock system catalogue parameterized by worker
// count. Each workload coordinates its own workers; baselines already encode
// the expected cost of the internal N-way execution.
func DefaultSystem(workers int) []Workload {
	return []Workload{
		{Name: "Hash Farm", Fn: parallel.HashFarm, Args: []int{workers}, Baseline: 0.2},
		{Name: "Compression", Fn: parallel.ParallelCompress, Args: []int{workers}, Baseline: 0.2},
		{Name: "Monte Carlo", Fn: parallel.MonteCarlo, Args: []int{workers}, Baseline: 0.15},
		{Name: "Image Tile", Fn: parallel.ImageTiles, Args: []int{workers}, Baseline: 0.3},
		{Name: "Ray Batch", Fn: parallel.RayBatch, Args: []int{workers}, Baseline: 0.15},
		{Name: "Mem Stream", Fn: parallel.StreamTriad, Args: []int{workers}, Baseline: 0.5},
		{Name: "Pointer Chase", Fn: parallel.PointerChase, Args: []int{workers}, Baseline: 0.4},
		{Name: "Contention", Fn: parallel.Contention, Args: []int{workers}, Baseline: 0.5},
		{Name: "Prod/Cons", Fn: parallel.ProducerConsumer, Args: []int{workers}, Baseline: 0.6},
		{Name: "Work Steal", Fn: parallel.LoadBalance, Args: []int{workers}, Baseline: 0.2},
	}
}
