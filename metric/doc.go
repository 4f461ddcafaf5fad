// Package metric defines the Riemannian-metric capability contract and
// the generic geometry and statistics algorithms built on it.
//
// A concrete metric (Euclidean, hyperbolic, SPD-manifold, ...) supplies
// three capabilities:
//
//   - InnerProductMatrix(base) — the metric tensor at a point, a
//     symmetric (not necessarily positive-definite) matrix;
//   - Exp(vec, base) — the Riemannian exponential map, shooting a
//     tangent vector onto the manifold;
//   - Log(point, base) — the Riemannian logarithm map, the local
//     inverse of Exp.
//
// Everything else in this package is derived from exactly that
// capability set and works for any implementation:
//
//	InnerProduct, SquaredNorm, Norm    — the tensor as a bilinear form
//	SquaredDist, Dist                  — geodesic distances via Log
//	Geodesic, Normalize                — curves and unit directions
//	Variance, Mean                     — intrinsic weighted statistics
//
// Mean is the one iterative algorithm: a fixed-point solver for the
// weighted Frechet (Karcher) mean that alternates Log-projection,
// tangent averaging and Exp-retraction until the step size drops below
// Tolerance times the weighted variance, or MaxIterations is reached
// (in which case a non-fatal warning is logged and the best estimate
// is still returned).
//
// Sub- and pseudo-Riemannian metrics are first-class: SquaredNorm and
// SquaredDist may legitimately be negative and never error on sign;
// only Norm, Dist and Normalize insist on non-negative squared
// quantities and fail with ErrNegativeSquaredNorm /
// ErrNegativeSquaredDist otherwise.
//
// Embed Base to get the dimension bookkeeping plus ErrNotImplemented
// defaults for capabilities a variant does not support:
//
//	type Euclidean struct{ metric.Base }
//
//	func (e Euclidean) InnerProductMatrix(_ metric.Point) (matrix.Matrix, error) {
//		return matrix.Identity(e.Dimension())
//	}
//	// Exp, Log likewise; anything left unimplemented reports
//	// ErrNotImplemented through every derived algorithm.
//
// All algorithms are pure functions of their arguments: no global
// state, fixed loop orders, operands never mutated. The only side
// channel is the convergence warning in Mean, routed through the
// zap logger supplied in MeanOptions (a nop logger by default).
package metric
