package metric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// floatTol is the comparison tolerance for inexact float assertions.
const floatTol = 1e-12

// TestNewBase_BadDimension rejects non-positive manifold dimensions.
func TestNewBase_BadDimension(t *testing.T) {
	_, err := metric.NewBase(0)
	assert.ErrorIs(t, err, metric.ErrBadDimension, "zero dimension must error")

	_, err = metric.NewBase(-3)
	assert.ErrorIs(t, err, metric.ErrBadDimension, "negative dimension must error")

	base, err := metric.NewBase(4)
	require.NoError(t, err)
	assert.Equal(t, 4, base.Dimension(), "dimension must round-trip")
}

// TestBase_NotImplemented verifies that an embed-only variant reports
// ErrNotImplemented through every derived algorithm.
func TestBase_NotImplemented(t *testing.T) {
	stub := newStubMetric(t, 2)
	p := metric.Point{0, 0}
	v := metric.TangentVec{1, 0}

	_, err := metric.InnerProduct(stub, v, v, p)
	assert.ErrorIs(t, err, metric.ErrNotImplemented, "inner product without a tensor")

	_, err = metric.SquaredDist(stub, p, p)
	assert.ErrorIs(t, err, metric.ErrNotImplemented, "distance without a logarithm")

	_, err = metric.Geodesic(stub, p, p)
	assert.ErrorIs(t, err, metric.ErrNotImplemented, "geodesic without a logarithm")

	_, err = stub.Exp(v, p)
	assert.ErrorIs(t, err, metric.ErrNotImplemented, "exp straight from Base")
}

// TestInnerProduct_Flat verifies the identity tensor reduces the inner
// product to the plain dot product, with or without a base point.
func TestInnerProduct_Flat(t *testing.T) {
	flat := newFlatMetric(t, 3)
	u := metric.TangentVec{1, 2, 3}
	v := metric.TangentVec{4, 5, 6}

	val, err := metric.InnerProduct(flat, u, v, metric.Point{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 32.0, val, "identity tensor gives the dot product")

	// Position-independent tensors accept a nil base.
	val, err = metric.InnerProduct(flat, u, v, nil)
	require.NoError(t, err)
	assert.Equal(t, 32.0, val, "nil base is legal for a flat tensor")
}

// TestInnerProduct_NilMetric guards the nil-interface path.
func TestInnerProduct_NilMetric(t *testing.T) {
	_, err := metric.InnerProduct(nil, metric.TangentVec{1}, metric.TangentVec{1}, nil)
	assert.ErrorIs(t, err, metric.ErrNilMetric)
}

// TestInnerProduct_ShapeMismatch surfaces the matrix-level sentinel for
// vectors that do not fit the tensor.
func TestInnerProduct_ShapeMismatch(t *testing.T) {
	flat := newFlatMetric(t, 2)

	_, err := metric.InnerProduct(flat, metric.TangentVec{1, 2, 3}, metric.TangentVec{1, 2}, nil)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "3-vector against a 2x2 tensor")
}

// TestSquaredNorm_PositiveDefinite checks that a positive-definite
// tensor keeps every squared norm non-negative and Norm error-free.
func TestSquaredNorm_PositiveDefinite(t *testing.T) {
	spd := newTensorMetric(t, [][]float64{{2, 1}, {1, 2}}) // eigenvalues 1 and 3

	vectors := []metric.TangentVec{
		{1, 0}, {0, 1}, {1, 1}, {1, -1}, {-3, 2}, {0.5, -0.25},
	}
	for _, v := range vectors {
		sq, err := metric.SquaredNorm(spd, v, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sq, 0.0, "SPD tensor must keep squares non-negative: %v", v)

		n, err := metric.Norm(spd, v, nil)
		require.NoError(t, err, "Norm must never fail on an SPD tensor")
		assert.InDelta(t, math.Sqrt(sq), n, floatTol, "norm must be the root of the square")
	}
}

// TestSquaredNorm_IndefiniteNegative exercises the documented indefinite
// outcome: along a negative-eigenvalue direction the squared norm is
// negative (no error) and Norm fails with the domain sentinel.
func TestSquaredNorm_IndefiniteNegative(t *testing.T) {
	mink := newTensorMetric(t, [][]float64{{1, 0}, {0, -1}})
	v := metric.TangentVec{0, 1} // aligned with the -1 eigenvector

	sq, err := metric.SquaredNorm(mink, v, nil)
	require.NoError(t, err, "a negative squared norm is a valid outcome, not an error")
	assert.Equal(t, -1.0, sq)

	_, err = metric.Norm(mink, v, nil)
	assert.ErrorIs(t, err, metric.ErrNegativeSquaredNorm, "norm is undefined on that direction")
}

// TestDist_Flat verifies a classic 3-4-5 distance on the Euclidean fixture.
func TestDist_Flat(t *testing.T) {
	flat := newFlatMetric(t, 2)

	d, err := metric.Dist(flat, metric.Point{0, 0}, metric.Point{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, floatTol, "3-4-5 triangle")

	sq, err := metric.SquaredDist(flat, metric.Point{0, 0}, metric.Point{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, sq, floatTol)
}

// TestDist_IndefiniteNegative checks that a negative squared distance
// passes through SquaredDist untouched and fails Dist with the sentinel.
func TestDist_IndefiniteNegative(t *testing.T) {
	mink := newTensorMetric(t, [][]float64{{1, 0}, {0, -1}})
	a := metric.Point{0, 0}
	b := metric.Point{0, 2} // separated along the timelike axis

	sq, err := metric.SquaredDist(mink, a, b)
	require.NoError(t, err)
	assert.Equal(t, -4.0, sq, "timelike separation squares negative")

	_, err = metric.Dist(mink, a, b)
	assert.ErrorIs(t, err, metric.ErrNegativeSquaredDist)
}

// TestExpLog_RoundTrip asserts log(exp(v, p), p) ≈ v for a consistent
// exp/log pair over a spread of tangent vectors and base points.
func TestExpLog_RoundTrip(t *testing.T) {
	flat := newFlatMetric(t, 3)

	bases := []metric.Point{{0, 0, 0}, {1, -2, 3}, {-0.5, 0.25, 10}}
	vectors := []metric.TangentVec{{1, 0, 0}, {0.1, -0.2, 0.3}, {-4, 5, -6}}
	for _, p := range bases {
		for _, v := range vectors {
			q, err := flat.Exp(v, p)
			require.NoError(t, err)
			back, err := flat.Log(q, p)
			require.NoError(t, err)
			for i := range v {
				assert.InDelta(t, v[i], back[i], floatTol, "round-trip coordinate %d", i)
			}
		}
	}
}

// TestVerifyTensor enforces the symmetric-tensor invariant at runtime.
func TestVerifyTensor(t *testing.T) {
	flat := newFlatMetric(t, 2)
	assert.NoError(t, metric.VerifyTensor(flat, nil), "identity tensor is symmetric")

	mink := newTensorMetric(t, [][]float64{{1, 0}, {0, -1}})
	assert.NoError(t, metric.VerifyTensor(mink, nil), "indefinite but symmetric is valid")

	asym := newTensorMetric(t, [][]float64{{0, 1}, {-1, 0}})
	assert.ErrorIs(t, metric.VerifyTensor(asym, nil), matrix.ErrAsymmetry)

	stub := newStubMetric(t, 2)
	assert.ErrorIs(t, metric.VerifyTensor(stub, nil), metric.ErrNotImplemented)

	assert.ErrorIs(t, metric.VerifyTensor(nil, nil), metric.ErrNilMetric)
}
