package workloads

import (
	"context"
	"math/rand"
)

const (
	defaultALUIterations    = 1_000_000
	defaultBranchIterations = 500_000
)

// IntegerALU stresses the integer units with a mix of add, subtract,
// multiply and bitwise operations chosen to defeat trivial strength
// reduction.
func IntegerALU(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultALUIterations)
	if err != nil {
		return 0, err
	}

	var res int64
	for i := 0; i < iterations; i++ {
		a := int64(i & 0xFFFF)
		b := int64((i >> 3) & 0xFFFF)
		res += (a * b) + (a ^ b) - (a | b)
		res = (res << 1) ^ int64(i&0xFF)
	}
	return res, nil
}

// BranchyCode stresses the branch predictor with an unpredictable condition
// chain driven by a fixed-seed random table.
func BranchyCode(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultBranchIterations)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(42))
	table := make([]int64, 1024)
	for i := range table {
		table[i] = rng.Int63n(101)
	}

	var res int64
	for i := 0; i < iterations; i++ {
		val := table[i%1024]
		switch {
		case val < 20:
			res++
		case val < 40:
			res--
		case val < 50:
			res *= 2
		case val < 70:
			if i%2 == 0 {
				res += 5
			} else {
				res -= 5
			}
		default:
			res ^= val
		}
	}
	return res, nil
}
