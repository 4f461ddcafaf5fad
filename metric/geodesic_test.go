package metric_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeodesic_EndpointsFlat checks that the curve reproduces its
// endpoints at t=0 and t=1 and the midpoint at t=0.5 in flat space.
func TestGeodesic_EndpointsFlat(t *testing.T) {
	flat := newFlatMetric(t, 2)
	a := metric.Point{1, 1}
	b := metric.Point{3, 5}

	curve, err := metric.Geodesic(flat, a, b)
	require.NoError(t, err)

	start, err := curve(0)
	require.NoError(t, err)
	assert.InDelta(t, a[0], start[0], floatTol)
	assert.InDelta(t, a[1], start[1], floatTol)

	end, err := curve(1)
	require.NoError(t, err)
	assert.InDelta(t, b[0], end[0], floatTol)
	assert.InDelta(t, b[1], end[1], floatTol)

	mid, err := curve(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mid[0], floatTol, "midpoint x")
	assert.InDelta(t, 3.0, mid[1], floatTol, "midpoint y")
}

// TestGeodesic_CapturesCopies ensures later mutation of the caller's
// slices does not bend an already-built curve.
func TestGeodesic_CapturesCopies(t *testing.T) {
	flat := newFlatMetric(t, 1)
	a := metric.Point{0}
	b := metric.Point{10}

	curve, err := metric.Geodesic(flat, a, b)
	require.NoError(t, err)

	a[0] = 100 // mutate after construction
	b[0] = 200

	mid, err := curve(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, mid[0], floatTol, "the curve must keep its own copies")
}

// TestNormalize_Flat rescales a vector to unit Euclidean length.
func TestNormalize_Flat(t *testing.T) {
	flat := newFlatMetric(t, 2)

	unit, err := metric.Normalize(flat, metric.TangentVec{3, 4}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, unit[0], floatTol)
	assert.InDelta(t, 0.8, unit[1], floatTol)

	n, err := metric.Norm(flat, unit, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n, floatTol, "normalized vector has unit norm")
}

// TestNormalize_Degenerate covers the zero-norm and indefinite failures.
func TestNormalize_Degenerate(t *testing.T) {
	flat := newFlatMetric(t, 2)
	_, err := metric.Normalize(flat, metric.TangentVec{0, 0}, nil)
	assert.ErrorIs(t, err, metric.ErrZeroNorm, "the zero vector has no direction")

	mink := newTensorMetric(t, [][]float64{{1, 0}, {0, -1}})
	_, err = metric.Normalize(mink, metric.TangentVec{0, 1}, nil)
	assert.ErrorIs(t, err, metric.ErrNegativeSquaredNorm, "indefinite direction has no norm")

	// A null direction of the Minkowski tensor: squared norm exactly zero.
	_, err = metric.Normalize(mink, metric.TangentVec{1, 1}, nil)
	assert.ErrorIs(t, err, metric.ErrZeroNorm, "null vectors cannot be normalized")
}
