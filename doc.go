// Package lvlgeo is your in-memory toolkit for statistics and
// optimization on curved spaces — Riemannian metrics, geodesics and
// intrinsic means, written in plain Go.
//
// 🚀 What is lvlgeo?
//
//	A small, deterministic library that brings together:
//		• Metric contract: a point-dependent inner product plus the
//		  exponential and logarithm maps, as one capability interface
//		• Derived geometry: inner products, norms, geodesic distances,
//		  geodesic curves and tangent-vector normalization
//		• Intrinsic statistics: weighted variance and the iterative
//		  weighted Frechet (Karcher) mean
//		• Dense kernels: the row-major matrix/vector routines the
//		  geometry runs on
//
// ✨ Why choose lvlgeo?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no global state, no randomness
//   - Honest errors – sentinel errors matched with errors.Is; indefinite
//     metrics are first-class, not silently clamped
//   - Extensible – plug in any manifold by implementing three methods
//
// Everything is organized under two subpackages:
//
//	matrix/ — Dense row-major matrices, linear-algebra kernels & validators
//	metric/ — the Metric capability contract and the generic algorithms
//	          built on it (norm, dist, geodesic, variance, mean)
//
// Quick sketch:
//
//	     exp(v, p)
//	  p ───────────▶ q          tangent space at p holds v = log(q, p)
//
//	exp shoots a tangent vector onto the manifold; log pulls a point
//	back into the tangent space. Every algorithm here is built from
//	exactly those two maps plus the metric tensor.
//
// Dive into metric/doc.go for the full contract and worked examples.
//
//	go get github.com/katalvlaran/lvlgeo/metric
package lvlgeo
