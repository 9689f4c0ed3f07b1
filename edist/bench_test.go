package edist_test

import (
	"testing"

	"github.com/katalvlaran/diagband/edist"
)

// benchmarkDistance is a helper that runs Distance on sequences of lengths n
// and m using opts. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkDistance(b *testing.B, n, m int, opts edist.Options) {
	// Prepare two sequences over a four-letter alphabet
	const alphabet = "ACGT"
	a := make([]byte, n)
	bSeq := make([]byte, m)
	for i := 0; i < n; i++ {
		a[i] = alphabet[i%4] // periodic pattern
	}
	for j := 0; j < m; j++ {
		bSeq[j] = alphabet[(j*3)%4] // shifted pattern
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, _, err := edist.Distance(a, bSeq, &opts)
		if err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_FullMatrixSmall benchmarks FullMatrix mode on 100×100 sequences.
func BenchmarkDistance_FullMatrixSmall(b *testing.B) {
	opts := edist.DefaultOptions()
	benchmarkDistance(b, 100, 100, opts)
}

// BenchmarkDistance_FullMatrixPath benchmarks FullMatrix mode with path recovery.
func BenchmarkDistance_FullMatrixPath(b *testing.B) {
	opts := edist.DefaultOptions()
	opts.ReturnPath = true
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_TwoRowsLarge benchmarks TwoRows mode on 2000×2000 sequences.
func BenchmarkDistance_TwoRowsLarge(b *testing.B) {
	opts := edist.DefaultOptions()
	opts.MemoryMode = edist.TwoRows
	benchmarkDistance(b, 2000, 2000, opts)
}
