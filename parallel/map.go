package parallel

import (
	"bytes"
	"compress/zlib"
	"context"
	"crypto/sha256"
	"math/rand"

	"github.com/utkarsh5026/silibench/pool"
)

const (
	defaultHashFarmIterations   = 20_000
	defaultCompressIterations   = 1_000
	defaultMonteCarloIterations = 200_000
	defaultTileIterations       = 100
	defaultRayBatchIterations   = 100_000
	defaultStreamSize           = 100_000
	defaultChaseSize            = 10_000
)

// partitionedMap splits an iteration budget max(1, budget/workers) per worker
// and runs fn once per worker through a pool, share-nothing. The per-worker
// results are summed into the workload's observable value.
func partitionedMap(ctx context.Context, workers, budget int, fn func(worker, chunk int) int64) (int64, error) {
	chunk := chunkOf(budget, workers)
	chunks := make([]int, workers)
	for i := range chunks {
		chunks[i] = i
	}

	p := pool.NewWorkerPool[int, int64](pool.WithWorkerCount(workers))
	results, err := p.Process(ctx, chunks, func(_ context.Context, worker int) (int64, error) {
		return fn(worker, chunk), nil
	})
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, r := range results {
		sum += r
	}
	return sum, nil
}

// HashFarm distributes independent SHA-256 chains across the workers.
func HashFarm(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultHashFarmIterations)
	if err != nil {
		return 0, err
	}

	data := bytes.Repeat([]byte("Benchmarks are parallel!"), 50)
	return partitionedMap(ctx, workers, iterations, func(_, chunk int) int64 {
		var digest []byte
		for i := 0; i < chunk; i++ {
			h := sha256.New()
			h.Write(data)
			h.Write(digest)
			digest = h.Sum(digest[:0])
		}
		return int64(digest[0])
	})
}

// ParallelCompress distributes independent zlib compression across the
// workers and sums the compressed sizes.
func ParallelCompress(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultCompressIterations)
	if err != nil {
		return 0, err
	}

	chunkData := append(
		bytes.Repeat([]byte("RepeatingPattern"), 50),
		bytes.Repeat([]byte("RandomAttributes"), 50)...,
	)
	data := bytes.Repeat(chunkData, 10)

	return partitionedMap(ctx, workers, iterations, func(_, chunk int) int64 {
		var total int64
		var buf bytes.Buffer
		for i := 0; i < chunk; i++ {
			buf.Reset()
			zw := zlib.NewWriter(&buf)
			_, _ = zw.Write(data)
			_ = zw.Close()
			total += int64(buf.Len())
		}
		return total
	})
}

// MonteCarlo estimates pi by random sampling, each worker with its own
// deterministic generator, and sums the inside-circle counts.
func MonteCarlo(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultMonteCarloIterations)
	if err != nil {
		return 0, err
	}

	return partitionedMap(ctx, workers, iterations, func(worker, chunk int) int64 {
		return monteCarloChunk(int64(worker+1), chunk)
	})
}

func monteCarloChunk(seed int64, samples int) int64 {
	rng := rand.New(rand.NewSource(seed))
	var inside int64
	for i := 0; i < samples; i++ {
		x := rng.Float64()
		y := rng.Float64()
		if x*x+y*y <= 1.0 {
			inside++
		}
	}
	return inside
}

// ImageTiles gives every worker a 64x64 tile to repeatedly darken,
// simulating per-tile image processing.
func ImageTiles(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultTileIterations)
	if err != nil {
		return 0, err
	}

	const side = 64
	return partitionedMap(ctx, workers, iterations, func(worker, chunk int) int64 {
		rng := rand.New(rand.NewSource(int64(worker + 1)))
		tile := make([]int64, side*side)
		for i := range tile {
			tile[i] = rng.Int63n(256)
		}

		for pass := 0; pass < chunk; pass++ {
			next := make([]int64, len(tile))
			for i, v := range tile {
				next[i] = v / 2
			}
			tile = next
		}
		return tile[0]
	})
}

// RayBatch runs a simplified ray-hit kernel per worker, pure throughput.
func RayBatch(ctx context.Context, args []int) (int64, error) {
	workers, iterations, err := splitArgs(args, defaultRayBatchIterations)
	if err != nil {
		return 0, err
	}

	return partitionedMap(ctx, workers, iterations, func(_, chunk int) int64 {
		var hits int64
		for i := 0; i < chunk; i++ {
			x := float64(i%100) / 50.0
			if x*x < 0.5 {
				hits++
			}
		}
		return hits
	})
}

// StreamTriad runs the classic read-read-write memory kernel
// (c[i] = a[i] + scalar*b[i]) on a private array per worker. The budget is
// the array size per worker, not split across workers.
func StreamTriad(ctx context.Context, args []int) (int64, error) {
	workers, size, err := splitArgs(args, defaultStreamSize)
	if err != nil {
		return 0, err
	}

	ids := make([]int, workers)
	p := pool.NewWorkerPool[int, int64](pool.WithWorkerCount(workers))
	results, err := p.Process(ctx, ids, func(_ context.Context, _ int) (int64, error) {
		a := make([]float64, size)
		b := make([]float64, size)
		c := make([]float64, size)
		for i := range a {
			a[i] = 1.0
			b[i] = 2.0
		}
		const scalar = 3.0
		for i := range c {
			c[i] = a[i] + scalar*b[i]
		}
		return int64(c[0]), nil
	})
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, r := range results {
		sum += r
	}
	return sum, nil
}

// PointerChase walks a random permutation per worker, a cache-hostile
// dependent-load chain. The budget is the node count per worker.
func PointerChase(ctx context.Context, args []int) (int64, error) {
	workers, size, err := splitArgs(args, defaultChaseSize)
	if err != nil {
		return 0, err
	}

	ids := make([]int, workers)
	for i := range ids {
		ids[i] = i
	}
	p := pool.NewWorkerPool[int, int64](pool.WithWorkerCount(workers))
	results, err := p.Process(ctx, ids, func(_ context.Context, worker int) (int64, error) {
		rng := rand.New(rand.NewSource(int64(worker + 1)))
		next := rng.Perm(size)

		current := 0
		for i := 0; i < size*10; i++ {
			current = next[current]
		}
		return int64(current), nil
	})
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, r := range results {
		sum += r
	}
	return sum, nil
}
