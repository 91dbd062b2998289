package workloads

import (
	"bytes"
	"compress/zlib"
	"context"
	"fmt"
	"io"
)

const defaultCompressIterations = 200

// compressCorpus is half repetitive, half varied, so the LZ77 matcher and
// the Huffman coder both get real work.
func compressCorpus() []byte {
	chunk := append(
		bytes.Repeat([]byte("RepeatingPattern"), 50),
		bytes.Repeat([]byte("RandomAttributes"), 50)...,
	)
	return bytes.Repeat(chunk, 10)
}

// Compression round-trips a mixed corpus through zlib (LZ77 + Huffman) at
// the default level every iteration.
func Compression(_ context.Context, args []int) (int64, error) {
	iterations, err := iterArg(args, defaultCompressIterations)
	if err != nil {
		return 0, err
	}

	data := compressCorpus()
	var totalLen int64
	var buf bytes.Buffer

	for i := 0; i < iterations; i++ {
		buf.Reset()
		zw, err := zlib.NewWriterLevel(&buf, 6)
		if err != nil {
			return 0, fmt.Errorf("compression workload: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return 0, fmt.Errorf("compression workload: %w", err)
		}
		if err := zw.Close(); err != nil {
			return 0, fmt.Errorf("compression workload: %w", err)
		}

		zr, err := zlib.NewReader(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return 0, fmt.Errorf("decompression workload: %w", err)
		}
		n, err := io.Copy(io.Discard, zr)
		if err != nil {
			return 0, fmt.Errorf("decompression workload: %w", err)
		}
		if err := zr.Close(); err != nil {
			return 0, fmt.Errorf("decompression workload: %w", err)
		}
		totalLen += n
	}
	return totalLen, nil
}
