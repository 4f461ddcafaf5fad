package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/matrix"
)

// newFilledDense builds an n×n Dense with predictable values for benches.
func newFilledDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err = m.Set(i, j, float64(i+j)); err != nil {
				b.Fatalf("Set failed: %v", err)
			}
		}
	}

	return m
}

// BenchmarkBilinear_Dense64 measures the fused quadratic-form kernel
// on a 64×64 Dense tensor (the metric inner-product hot path).
func BenchmarkBilinear_Dense64(b *testing.B) {
	const n = 64
	m := newFilledDense(b, n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i%7) + 1 // avoid the zero-skip fast exits
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Bilinear(x, m, x); err != nil {
			b.Fatalf("Bilinear failed: %v", err)
		}
	}
}

// BenchmarkMul_Dense64 measures the dense multiplication fast-path.
func BenchmarkMul_Dense64(b *testing.B) {
	m := newFilledDense(b, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(m, m); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
