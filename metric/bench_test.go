package metric_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlgeo/metric"
)

// benchFlatPoints builds n points on a deterministic spiral in dim
// dimensions so the mean solver has real work to do.
func benchFlatPoints(n, dim int) []metric.Point {
	points := make([]metric.Point, n)
	for i := 0; i < n; i++ {
		p := make(metric.Point, dim)
		for j := 0; j < dim; j++ {
			p[j] = float64((i+1)*(j+2)%17) - 8 // predictable spread
		}
		points[i] = p
	}

	return points
}

// benchFlatMetric is the benchmark Euclidean fixture (testing.B variant
// of the flatMetric test helper).
func benchFlatMetric(b *testing.B, dim int) flatMetric {
	b.Helper()
	base, err := metric.NewBase(dim)
	if err != nil {
		b.Fatalf("NewBase failed: %v", err)
	}

	return flatMetric{Base: base}
}

// BenchmarkMean_Flat16x3 measures the Frechet-mean solver on 16 points
// in 3 dimensions under the flat metric.
func BenchmarkMean_Flat16x3(b *testing.B) {
	flat := benchFlatMetric(b, 3)
	points := benchFlatPoints(16, 3)
	ctx := context.Background()

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := metric.Mean(ctx, flat, points, nil); err != nil {
			b.Fatalf("Mean failed: %v", err)
		}
	}
}

// BenchmarkSquaredDist_Flat8 measures the distance kernel in 8 dimensions.
func BenchmarkSquaredDist_Flat8(b *testing.B) {
	flat := benchFlatMetric(b, 8)
	p := benchFlatPoints(2, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := metric.SquaredDist(flat, p[0], p[1]); err != nil {
			b.Fatalf("SquaredDist failed: %v", err)
		}
	}
}
