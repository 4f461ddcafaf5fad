// Package metric: intrinsic weighted statistics — Variance and the
// iterative weighted Frechet (Karcher) mean.

package metric

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Variance is the weighted sum of squared geodesic distances from base
// to each point: Σᵢ weights[i] · SquaredDist(base, points[i]).
//
// Implementation:
//   - Stage 1: fail-fast validation — non-nil metric, non-empty points,
//     weights aligned one-to-one with points (nil weights are rejected
//     here; Mean owns the all-ones defaulting).
//   - Stage 2: fixed-order accumulation over i = 0..n-1.
//
// Behavior highlights:
//   - No positive-definiteness assumption: squared distances feed the
//     sum with whatever sign the metric produces.
//
// Errors:
//   - ErrNilMetric, ErrNoPoints, ErrDimensionMismatch (weights length),
//     plus everything SquaredDist can report.
//
// Determinism:
//   - Fixed i-ascending accumulation order; stable result across runs.
//
// Complexity:
//   - Time O(n·dim²) plus n variant Log calls, Space O(dim).
func Variance(m Metric, base Point, points []Point, weights []float64) (float64, error) {
	// Eager validation, before any geometry runs.
	if err := validateMetric(m); err != nil {
		return 0, metricErrorf(opVariance, err)
	}
	if err := validatePointSet(points); err != nil {
		return 0, metricErrorf(opVariance, err)
	}
	if weights == nil || len(weights) != len(points) {
		return 0, metricErrorf(opVariance, ErrDimensionMismatch)
	}

	// Accumulate weighted squared distances in fixed order.
	var total float64
	for i := 0; i < len(points); i++ {
		sq, err := SquaredDist(m, base, points[i])
		if err != nil {
			return 0, metricErrorf(opVariance, fmt.Errorf("point %d: %w", i, err))
		}
		total += weights[i] * sq
	}

	return total, nil
}

// Mean computes the weighted Frechet (Karcher) mean of points: the
// point minimizing the total weighted squared geodesic distance to
// them. It iterates three steps from mean₀ = points[0]:
//
//  1. project every point into the tangent space at the current mean
//     with Log;
//  2. average the tangent vectors, weighted, divided by sum(weights);
//  3. shoot the average back onto the manifold with Exp.
//
// The loop stops once the squared step SquaredDist(meanNext, mean)
// drops below Tolerance times the weighted variance at meanNext, or at
// MaxIterations — in the latter case a non-fatal warning carrying the
// configured cap is logged and the latest estimate is still returned.
//
// Implementation:
//   - Stage 1: fail-fast validation (metric, points, options, weights);
//     all-ones weights are filled in when opts.Weights is nil.
//   - Stage 2: one-point short-circuit — a single point is returned
//     immediately, no iteration and no weight applied even when
//     weights[0] != 1 (a deliberate, documented special case).
//   - Stage 3: the fixed-point loop with immutable per-iteration
//     bindings (mean, tangentMean, meanNext are fresh values each
//     round); ctx is checked once per iteration so long batch solves
//     stay cancellable.
//
// Behavior highlights:
//   - The shaped zero accumulator comes from Log(mean, mean), which a
//     consistent variant returns as an exactly-zero tangent vector.
//   - The tangent average divides by sum(weights), not by the point
//     count; all-ones defaults therefore behave like uniform weights
//     of any magnitude.
//   - If the weighted variance is zero the strict inequality never
//     holds and the loop deliberately runs to MaxIterations.
//   - On convergence and at the cap the UPDATED iterate is returned,
//     mean being reassigned to meanNext every round.
//
// Inputs:
//   - ctx    — cancellation for long solves; ctx.Err() is returned with
//     the current best estimate when the context ends mid-loop.
//   - m      — the metric; must provide Exp and Log.
//   - points — at least one manifold point.
//   - opts   — nil selects DefaultMeanOptions(); zero MaxIterations and
//     Tolerance select their defaults, negative values are rejected.
//
// Returns:
//   - Point: the mean estimate (always a fresh slice, never aliasing
//     points), even when the convergence warning fires.
//
// Errors:
//   - ErrNilMetric, ErrNoPoints, ErrDimensionMismatch (weights length
//     or a variant returning misshaped tangents), ErrBadOptions
//     (negative cap, bad tolerance, zero weight sum), ctx.Err(),
//     plus everything Log/Exp/SquaredDist/Variance can report.
//
// Determinism:
//   - Fixed iteration and accumulation orders; ties resolved by input
//     order; identical inputs produce identical iterates.
//
// Complexity:
//   - Time O(iterations · n · dim²) plus the variant's Exp/Log, Space
//     O(dim) per iteration.
func Mean(ctx context.Context, m Metric, points []Point, opts *MeanOptions) (Point, error) {
	// Stage 1: validation, all of it before any geometry runs.
	if err := validateMetric(m); err != nil {
		return nil, metricErrorf(opMean, err)
	}
	if err := validatePointSet(points); err != nil {
		return nil, metricErrorf(opMean, err)
	}
	n := len(points)

	// Apply options or defaults.
	o := DefaultMeanOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations < 0 {
		return nil, metricErrorf(opMean, fmt.Errorf("negative MaxIterations: %w", ErrBadOptions))
	}
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return nil, metricErrorf(opMean, fmt.Errorf("bad Tolerance: %w", ErrBadOptions))
	}
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Default weights are all-ones; the division by sum(weights) below
	// makes this equivalent to uniform weights of any magnitude.
	weights := o.Weights
	if weights == nil {
		weights = make([]float64, n)
		for i := range weights {
			weights[i] = 1.0
		}
	}
	if err := validateWeights(points, weights); err != nil {
		return nil, metricErrorf(opMean, err)
	}
	var sumWeights float64
	for i := 0; i < n; i++ {
		sumWeights += weights[i]
	}
	if sumWeights == 0 {
		return nil, metricErrorf(opMean, fmt.Errorf("zero weight sum: %w", ErrBadOptions))
	}

	// Stage 2: initialization with the first point, and the one-point
	// short-circuit: no iteration, weights[0] deliberately ignored.
	mean := clonePoint(points[0])
	if n == 1 {
		return mean, nil
	}

	// Stage 3: the fixed-point loop.
	var it int
	for it = 1; ; it++ {
		// Per-iteration cancellation point for long batch solves.
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return mean, metricErrorf(opMean, err)
			}
		}

		// A correctly-shaped zero accumulator: Log of a point at itself.
		zeroTangent, err := m.Log(mean, mean)
		if err != nil {
			return nil, metricErrorf(opMean, err)
		}
		tangentMean := make(TangentVec, len(zeroTangent))
		copy(tangentMean, zeroTangent)

		// Accumulate weighted tangent projections in fixed point order.
		for i := 0; i < n; i++ {
			projected, errLog := m.Log(points[i], mean)
			if errLog != nil {
				return nil, metricErrorf(opMean, fmt.Errorf("point %d: %w", i, errLog))
			}
			if len(projected) != len(tangentMean) {
				return nil, metricErrorf(opMean, fmt.Errorf("point %d: %w", i, ErrDimensionMismatch))
			}
			for j := range tangentMean {
				tangentMean[j] += weights[i] * projected[j]
			}
		}
		// Normalize by the weight sum, not the point count.
		for j := range tangentMean {
			tangentMean[j] /= sumWeights
		}

		// Retract the tangent average back onto the manifold.
		meanNext, err := m.Exp(tangentMean, mean)
		if err != nil {
			return nil, metricErrorf(opMean, err)
		}

		// Step size and spread, both measured after the update.
		sqDist, err := SquaredDist(m, meanNext, mean)
		if err != nil {
			return nil, metricErrorf(opMean, err)
		}
		spread, err := Variance(m, meanNext, points, weights)
		if err != nil {
			return nil, metricErrorf(opMean, err)
		}

		// Converged: the squared step fell below the relative threshold.
		// Strict inequality — a zero spread keeps the loop running.
		if sqDist < o.Tolerance*spread {
			return meanNext, nil
		}

		// Cap reached: warn (non-fatal) and hand back the best estimate.
		if it == o.MaxIterations {
			logger.Warn("maximum number of iterations reached; the mean may be inaccurate",
				zap.Int("max_iterations", o.MaxIterations),
				zap.Float64("squared_step", sqDist),
				zap.Float64("variance", spread),
			)

			return meanNext, nil
		}

		// Advance the iterate; meanNext is a fresh value from Exp.
		mean = meanNext
	}
}
