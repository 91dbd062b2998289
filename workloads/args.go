package workloads

import "fmt"

// iterArg resolves the iteration count for a kernel: args[0] when supplied,
// def otherwise. Zero or negative counts are rejected rather than silently
// producing a degenerate (and absurdly high-scoring) measurement.
func iterArg(args []int, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	if args[0] <= 0 {
		return 0, fmt.Errorf("iterations must be positive, got %d", args[0])
	}
	return args[0], nil
}
