// Package metric: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with an
// operation tag via %w) and tests check them via errors.Is. No
// algorithm panics on user-triggered error conditions.

package metric

import "errors"

var (
	// ErrNilMetric indicates that a nil Metric was passed to an algorithm.
	ErrNilMetric = errors.New("metric: nil metric")

	// ErrBadDimension indicates a non-positive manifold dimension at
	// construction time.
	ErrBadDimension = errors.New("metric: dimension must be > 0")

	// ErrNotImplemented marks a capability the concrete metric variant
	// does not provide (inner product matrix, exp or log). Base returns
	// it from every capability; variants override what they support.
	ErrNotImplemented = errors.New("metric: operation not implemented")

	// ErrNegativeSquaredNorm is returned by Norm (and Normalize) when the
	// squared norm of the vector is negative. This happens on indefinite
	// (pseudo-Riemannian) metrics; use SquaredNorm and handle the sign
	// yourself in that setting.
	ErrNegativeSquaredNorm = errors.New("metric: squared norm is negative; norm is undefined")

	// ErrNegativeSquaredDist is returned by Dist when the squared
	// distance between the points is negative. As with norms, indefinite
	// metrics must use SquaredDist instead.
	ErrNegativeSquaredDist = errors.New("metric: squared distance is negative; dist is undefined")

	// ErrZeroNorm is returned by Normalize for a vector of exactly zero
	// norm (a null or zero vector cannot be scaled to unit length).
	ErrZeroNorm = errors.New("metric: cannot normalize a zero-norm vector")

	// ErrNoPoints indicates an empty point collection where at least one
	// point is required (Variance, Mean).
	ErrNoPoints = errors.New("metric: point set must be non-empty")

	// ErrDimensionMismatch indicates a length mismatch between points and
	// weights, or between vectors and the tensor shape.
	ErrDimensionMismatch = errors.New("metric: dimension mismatch")

	// ErrBadOptions indicates nonsensical solver options: a negative
	// iteration cap, a non-finite or negative tolerance, or weights
	// summing to zero.
	ErrBadOptions = errors.New("metric: invalid options")
)
