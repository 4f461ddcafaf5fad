// Package metric: derived pointwise geometry — inner products, norms
// and geodesic distances. Each function here is a pure combination of
// the Metric capability set and the matrix.Bilinear kernel; none keeps
// state between calls.

package metric

import (
	"math"

	"github.com/katalvlaran/lvlgeo/matrix"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opInnerProductMatrix = "InnerProductMatrix"
	opInnerProduct       = "InnerProduct"
	opSquaredNorm        = "SquaredNorm"
	opNorm               = "Norm"
	opSquaredDist        = "SquaredDist"
	opDist               = "Dist"
	opExp                = "Exp"
	opLog                = "Log"
	opGeodesic           = "Geodesic"
	opNormalize          = "Normalize"
	opVariance           = "Variance"
	opMean               = "Mean"
)

// InnerProduct evaluates ⟨u, v⟩ at base: uᵀ · M(base) · v with M the
// metric tensor there. No validity checks beyond shape compatibility;
// the sign of the result is whatever the tensor dictates.
//
// Implementation:
//   - Stage 1: validate the metric, fetch the tensor at base.
//   - Stage 2: fused quadratic-form kernel matrix.Bilinear(u, M, v).
//
// Errors:
//   - ErrNilMetric, ErrNotImplemented (no tensor capability),
//     matrix.ErrDimensionMismatch / matrix.ErrNilMatrix (vector shapes).
//
// Complexity:
//   - Time O(dim²), Space O(1) beyond the variant's tensor.
func InnerProduct(m Metric, u, v TangentVec, base Point) (float64, error) {
	// Guard the metric.
	if err := validateMetric(m); err != nil {
		return 0, metricErrorf(opInnerProduct, err)
	}
	// Fetch the tensor at base (nil base is the variant's call to accept).
	tensor, err := m.InnerProductMatrix(base)
	if err != nil {
		return 0, metricErrorf(opInnerProduct, err)
	}
	// Evaluate uᵀ·M·v in one fused pass.
	val, err := matrix.Bilinear(u, tensor, v)
	if err != nil {
		return 0, metricErrorf(opInnerProduct, err)
	}

	return val, nil
}

// SquaredNorm is the squared length of v at base: ⟨v, v⟩.
//
// Note: the result may be negative when the metric is not
// positive-definite — that is a valid, documented outcome here, not an
// error. Only Norm insists on a non-negative square.
//
// Errors: as InnerProduct.
// Complexity: Time O(dim²), Space O(1).
func SquaredNorm(m Metric, v TangentVec, base Point) (float64, error) {
	sq, err := InnerProduct(m, v, v, base)
	if err != nil {
		return 0, metricErrorf(opSquaredNorm, err)
	}

	return sq, nil
}

// Norm is the length of v at base: the non-negative square root of
// SquaredNorm.
//
// Errors:
//   - ErrNegativeSquaredNorm when the squared norm is negative (an
//     indefinite direction) — use SquaredNorm and handle sign yourself;
//   - everything SquaredNorm can report.
//
// Complexity: Time O(dim²), Space O(1).
func Norm(m Metric, v TangentVec, base Point) (float64, error) {
	sq, err := SquaredNorm(m, v, base)
	if err != nil {
		return 0, metricErrorf(opNorm, err)
	}
	// The runtime precondition: a negative square has no real root.
	if sq < 0 {
		return 0, metricErrorf(opNorm, ErrNegativeSquaredNorm)
	}

	return math.Sqrt(sq), nil
}

// SquaredDist is the squared geodesic distance from a to b:
// the squared norm of Log(b, a), measured at a.
//
// The base-point choice is deliberate and fixed: the logarithm is taken
// at a toward b. Log is generally not symmetric in its arguments, so
// this formulation must not be flipped.
//
// Note: the result may be negative when the metric is not
// positive-definite; as with SquaredNorm this is not an error.
//
// Errors: ErrNilMetric, ErrNotImplemented (no logarithm capability),
// plus everything SquaredNorm can report.
// Complexity: Time O(dim²) plus the variant's Log, Space O(dim).
func SquaredDist(m Metric, a, b Point) (float64, error) {
	// Guard the metric.
	if err := validateMetric(m); err != nil {
		return 0, metricErrorf(opSquaredDist, err)
	}
	// Pull b into the tangent space at a.
	direction, err := m.Log(b, a)
	if err != nil {
		return 0, metricErrorf(opSquaredDist, err)
	}
	// Measure the tangent vector at the same base point a.
	sq, err := SquaredNorm(m, direction, a)
	if err != nil {
		return 0, metricErrorf(opSquaredDist, err)
	}

	return sq, nil
}

// Dist is the geodesic distance from a to b: the non-negative square
// root of SquaredDist.
//
// Errors:
//   - ErrNegativeSquaredDist when the squared distance is negative —
//     indefinite metrics must use SquaredDist instead;
//   - everything SquaredDist can report.
//
// Complexity: Time O(dim²) plus the variant's Log, Space O(dim).
func Dist(m Metric, a, b Point) (float64, error) {
	sq, err := SquaredDist(m, a, b)
	if err != nil {
		return 0, metricErrorf(opDist, err)
	}
	// The runtime precondition: a negative square has no real root.
	if sq < 0 {
		return 0, metricErrorf(opDist, ErrNegativeSquaredDist)
	}

	return math.Sqrt(sq), nil
}
