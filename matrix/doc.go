// Package matrix offers dense row-major matrices and the small set of
// linear-algebra kernels the metric package is built on.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major float64 matrix behind the
//     minimal Matrix interface (Rows/Cols/At/Set/Clone).
//   - Kernels: Add, Scale, Mul, Transpose, MatVec, and Bilinear — the
//     quadratic form xᵀ·M·y that evaluates inner products under a
//     metric tensor.
//   - Central validators (nil/shape/symmetry) returning sentinel
//     errors, so every kernel fails fast and callers match conditions
//     via errors.Is.
//
// All kernels are pure: operands are never mutated, results are fresh
// Dense values, loop orders are fixed, and no global state is touched.
// Dense inputs unlock flat-slice fast-paths; any other Matrix
// implementation falls back to the At/Set interface path.
//
// See the examples in this package and metric for usage patterns.
package matrix
