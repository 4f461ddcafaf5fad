// Package metric: canonical validation helpers.
//
// Purpose:
//  - Keep algorithms minimal by delegating nil/shape/weight checks here.
//  - Return plain sentinels so call sites can wrap uniformly with an
//    operation tag and callers still match via errors.Is.
//
// All checks are pure, deterministic and allocate nothing.

package metric

import (
	"fmt"

	"github.com/katalvlaran/lvlgeo/matrix"
)

// metricErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func metricErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMetric ensures the metric reference is non-nil.
// Errors: ErrNilMetric.
// Complexity: O(1).
func validateMetric(m Metric) error {
	if m == nil {
		return ErrNilMetric
	}

	return nil
}

// validatePointSet ensures the collection holds at least one point.
// Errors: ErrNoPoints.
// Complexity: O(1).
func validatePointSet(points []Point) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	return nil
}

// validateWeights ensures weights align one-to-one with points.
// A nil weight slice is the caller's signal for all-ones and passes.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func validateWeights(points []Point, weights []float64) error {
	if weights != nil && len(weights) != len(points) {
		return ErrDimensionMismatch
	}

	return nil
}

// VerifyTensor checks the metric-tensor invariant at base: the tensor
// must be a square dim×dim matrix, symmetric within DefaultSymmetryTol.
// Positive-definiteness is NOT required — indefinite metrics are valid.
//
// Implementation:
//   - Stage 1: validate the metric and fetch the tensor at base.
//   - Stage 2: shape check against Dimension(), then
//     matrix.ValidateSymmetric at DefaultSymmetryTol.
//
// Errors:
//   - ErrNilMetric, ErrNotImplemented (propagated from the variant),
//     ErrDimensionMismatch (tensor shape vs Dimension),
//     matrix.ErrAsymmetry (symmetry violation).
//
// Complexity:
//   - Time O(dim²), Space O(1) beyond the variant's tensor.
func VerifyTensor(m Metric, base Point) error {
	const op = "VerifyTensor"
	// Guard the metric itself.
	if err := validateMetric(m); err != nil {
		return metricErrorf(op, err)
	}
	// Fetch the tensor; a variant without one reports ErrNotImplemented.
	tensor, err := m.InnerProductMatrix(base)
	if err != nil {
		return metricErrorf(op, err)
	}
	// The tensor must act on tangent vectors of the declared dimension.
	if tensor == nil {
		return metricErrorf(op, matrix.ErrNilMatrix)
	}
	if tensor.Rows() != m.Dimension() || tensor.Cols() != m.Dimension() {
		return metricErrorf(op, ErrDimensionMismatch)
	}
	// Symmetry within the package-wide tolerance.
	if err = matrix.ValidateSymmetric(tensor, DefaultSymmetryTol); err != nil {
		return metricErrorf(op, err)
	}

	return nil
}
