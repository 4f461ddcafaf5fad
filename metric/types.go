// Package metric: domain types — manifold points, tangent vectors, the
// Metric capability interface and the embeddable Base. Errors live in
// errors.go and solver options in options.go, per the package-wide
// file conventions.
package metric

import "github.com/katalvlaran/lvlgeo/matrix"

// Point is a point on a manifold, stored as ambient coordinates.
// The algorithms in this package treat it as an opaque numeric vector;
// its internal structure belongs to the concrete metric variant.
type Point []float64

// TangentVec is a tangent vector at some base point of a manifold,
// stored in the same ambient coordinates as Point. Like Point it is
// opaque to the generic algorithms.
type TangentVec []float64

// Metric is the capability bundle every concrete Riemannian (or sub-
// and pseudo-Riemannian) metric must provide. All generic algorithms
// in this package — inner products, norms, distances, geodesics,
// variance and the Frechet mean — are derived purely from these four
// methods.
//
// A metric value is stateless with respect to the algorithms: it is
// created once and reused across arbitrarily many calls. Variants may
// cache derived data internally, the contract does not require it.
type Metric interface {
	// Dimension returns the dimension of the manifold's tangent spaces.
	// Positive, fixed at construction, immutable afterward.
	// Complexity: O(1).
	Dimension() int

	// InnerProductMatrix returns the metric tensor at base: the
	// (possibly indefinite) symmetric bilinear form of the tangent
	// space there. A nil base is legal for metrics whose tensor does
	// not depend on position (flat metrics); each variant decides
	// whether to accept it.
	// Returns ErrNotImplemented when the variant has no tensor.
	InnerProductMatrix(base Point) (matrix.Matrix, error)

	// Exp is the Riemannian exponential map: the point reached by
	// following the geodesic from base in direction vec for unit time.
	// Returns ErrNotImplemented when the variant has no exponential.
	Exp(vec TangentVec, base Point) (Point, error)

	// Log is the Riemannian logarithm map, the local inverse of Exp:
	// the tangent vector at base pointing toward point.
	// Returns ErrNotImplemented when the variant has no logarithm.
	Log(point, base Point) (TangentVec, error)
}

// Base is an embeddable partial Metric implementation. It carries the
// immutable manifold dimension and answers every capability with
// ErrNotImplemented, so a concrete variant embeds Base and overrides
// only what it actually supports — the unsupported remainder then
// surfaces as ErrNotImplemented through every derived algorithm.
type Base struct {
	dim int // tangent-space dimension, positive, fixed at construction
}

// NewBase validates the manifold dimension and returns a Base to embed.
// Errors: ErrBadDimension when dim <= 0.
// Complexity: O(1).
func NewBase(dim int) (Base, error) {
	// Reject non-positive dimensions eagerly.
	if dim <= 0 {
		return Base{}, ErrBadDimension
	}

	return Base{dim: dim}, nil
}

// Dimension returns the tangent-space dimension fixed at construction.
// Complexity: O(1).
func (b Base) Dimension() int {
	return b.dim // immutable after NewBase
}

// InnerProductMatrix reports the capability as unsupported.
func (Base) InnerProductMatrix(Point) (matrix.Matrix, error) {
	return nil, metricErrorf(opInnerProductMatrix, ErrNotImplemented)
}

// Exp reports the capability as unsupported.
func (Base) Exp(TangentVec, Point) (Point, error) {
	return nil, metricErrorf(opExp, ErrNotImplemented)
}

// Log reports the capability as unsupported.
func (Base) Log(Point, Point) (TangentVec, error) {
	return nil, metricErrorf(opLog, ErrNotImplemented)
}

// clonePoint returns an independent copy of p, preserving nil.
// Algorithms hand out fresh slices so callers never share backing
// arrays with their inputs.
func clonePoint(p Point) Point {
	if p == nil {
		return nil
	}
	out := make(Point, len(p))
	copy(out, p)

	return out
}
