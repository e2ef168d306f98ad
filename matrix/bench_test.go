// Package matrix_test provides benchmarks for the dense kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 1337)
			B := RandDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 7)
			work := A.CloneDense()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for r := 0; r < n; r++ {
					copy(work.RawRow(r), A.RawRow(r))
				}
				if _, _, err := matrix.LU(work); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = work
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n, 11)
			rhs := make([]float64, n)
			for i := range rhs {
				rhs[i] = float64(i % 7)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, err := matrix.Solve(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = x
			}
		})
	}
}

func BenchmarkSVD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDense(b, n, n/2, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				w, _, err := matrix.SVD(A.CloneDense())
				if err != nil {
					b.Fatal(err)
				}
				sinkF = w[0]
			}
		})
	}
}
