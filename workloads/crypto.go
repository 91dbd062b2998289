package workloads

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
)

const (
	defaultHashIterations    = 50_000
	defaultEncryptIterations = 20_000
)

// Hashing chains SHA-256 digests so every iteration depends on the previous
// one and none can be computed ahead of time.
func Hashing(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultHashIterations)
	if err != nil {
		return 0, err
	}

	data := bytes.Repeat([]byte("Benchmarks are fun!"), 100)
	var digest []byte
	for i := 0; i < iterations; i++ {
		h := sha256.New()
		h.Write(data)
		h.Write(digest)
		digest = h.Sum(digest[:0])
	}
	return int64(binary.BigEndian.Uint64(digest[:8])), nil
}

// EncryptionRounds simulates a block cipher: table substitution, row
// rotation, and an XOR-churn mixing step over a 16-byte state, ten rounds
// per iteration. The goal is generic S-box/XOR stress, not real AES.
func EncryptionRounds(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultEncryptIterations)
	if err != nil {
		return 0, err
	}

	var sbox [256]byte
	for i := range sbox {
		sbox[i] = byte(i)
	}
	for i := 0; i < 256; i += 2 {
		sbox[i], sbox[i+1] = sbox[i+1], sbox[i]
	}

	state := make([]byte, 16)
	for i := range state {
		state[i] = byte(i)
	}
	next := make([]byte, 16)

	for it := 0; it < iterations; it++ {
		for round := 0; round < 10; round++ {
			// SubBytes
			for i, b := range state {
				state[i] = sbox[b]
			}
			// ShiftRows: rotate left by one
			first := state[0]
			copy(state, state[1:])
			state[15] = first
			// MixColumns: simplified XOR churn per 4-byte column
			for j := 0; j < 16; j += 4 {
				next[j] = state[j] ^ state[j+1]
				next[j+1] = state[j+1] ^ state[j+2]
				next[j+2] = state[j+2] ^ state[j+3]
				next[j+3] = state[j+3] ^ state[j]
			}
			state, next = next, state
		}
	}
	return int64(state[0]), nil
}
