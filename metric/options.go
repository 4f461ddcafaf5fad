// Package metric: solver options and documented defaults.
package metric

import "go.uber.org/zap"

// Defaults (single source of truth).
const (
	// DefaultMaxIterations caps the Frechet-mean fixed-point loop.
	DefaultMaxIterations = 100

	// DefaultTolerance is the relative convergence threshold of Mean:
	// the loop stops once the squared step is below
	// Tolerance * weighted variance.
	DefaultTolerance = 1e-5

	// DefaultSymmetryTol is the tolerance VerifyTensor uses when
	// checking the symmetric-tensor invariant.
	DefaultSymmetryTol = 1e-9
)

// MeanOptions configures the iterative Frechet mean.
//
// Fields:
//   - Weights       — per-point weights; nil means all-ones. The tangent
//     average divides by sum(Weights), not by the point count, so
//     uniform weights of any magnitude behave identically.
//   - MaxIterations — iteration cap; 0 selects DefaultMaxIterations,
//     negative values are rejected with ErrBadOptions.
//   - Tolerance     — relative convergence threshold; 0 selects
//     DefaultTolerance, negative or non-finite values are rejected
//     with ErrBadOptions.
//   - Logger        — receives the single non-fatal convergence warning
//     emitted when the cap is hit; nil means a nop logger (silent).
//
// Example:
//
//	opts := metric.DefaultMeanOptions()
//	opts.Weights = []float64{1, 3}
//	opts.MaxIterations = 50
//	mean, err := metric.Mean(ctx, m, points, &opts)
type MeanOptions struct {
	Weights       []float64
	MaxIterations int
	Tolerance     float64
	Logger        *zap.Logger
}

// DefaultMeanOptions returns MeanOptions with default settings:
// nil Weights (all-ones), MaxIterations=100, Tolerance=1e-5 and no
// logger (the convergence warning is dropped unless one is supplied).
func DefaultMeanOptions() MeanOptions {
	return MeanOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}
