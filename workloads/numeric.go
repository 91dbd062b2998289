package workloads

import (
	"context"
	"math"
	"math/cmplx"
	"math/rand"
)

const (
	defaultMatrixIterations = 10_000
	defaultFFTIterations    = 5_000

	fftSize = 64
)

// MatrixMath multiplies fixed 4x4 integer matrices, the classic small-kernel
// mix of multiply-accumulate and memory access.
func MatrixMath(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultMatrixIterations)
	if err != nil {
		return 0, err
	}

	matA := [4][4]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 1, 2, 3}, {4, 5, 6, 7}}
	matB := [4][4]int64{{2, 0, 1, 2}, {1, 2, 0, 1}, {0, 1, 2, 0}, {2, 1, 0, 2}}

	var final int64
	for it := 0; it < iterations; it++ {
		var c [4][4]int64
		for i := range 4 {
			for j := range 4 {
				for k := range 4 {
					c[i][j] += matA[i][k] * matB[k][j]
				}
			}
		}
		final += c[0][0]
	}
	return final, nil
}

// FFT runs a recursive radix-2 Cooley-Tukey transform over a fixed-seed
// 64-point input every iteration. Small N keeps the recursion depth and
// allocation pattern identical across runs.
func FFT(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultFFTIterations)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(7))
	input := make([]complex128, fftSize)
	for i := range input {
		input[i] = complex(rng.Float64(), 0)
	}

	var out []complex128
	for it := 0; it < iterations; it++ {
		out = fft(input)
	}
	return int64(real(out[0]) * 1e6), nil
}

func fft(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	even = fft(even)
	odd = fft(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		t := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n))) * odd[k]
		out[k] = even[k] + t
		out[k+n/2] = even[k] - t
	}
	return out
}
