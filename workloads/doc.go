// Package workloads holds the single-core CPU kernels of the benchmark
// suite: arithmetic and branching mixes, text and regex processing, hashing,
// encryption-round and compression kernels, small numeric transforms, scene
// kernels, and a compiler front-end simulation.
//
// Every kernel is a stateless top-level function with the signature
// func(ctx, args) (int64, error). args[0], when present, overrides the
// kernel's default iteration count; the returned value is derived from the
// computation so the work cannot be optimized away. Kernels that consume
// randomness seed it deterministically, keeping measurements comparable from
// run to run.
package workloads
