// Package metric: geodesic curves and tangent-vector normalization.
// These are the primitives downstream consumers (plotting layers,
// samplers) read from the metric; both are derived purely from the
// Exp/Log capability pair.

package metric

// Curve is a parameterized curve on the manifold. For geodesics the
// parameter is affine: t=0 is the initial point, t=1 the end point,
// values outside [0,1] extrapolate along the same geodesic.
type Curve func(t float64) (Point, error)

// Geodesic builds the geodesic curve from initial to end:
//
//	γ(t) = Exp(t · Log(end, initial), initial)
//
// The logarithm is computed once at construction; each evaluation then
// costs one Exp call plus a vector scale.
//
// Behavior highlights:
//   - The returned Curve captures copies of its inputs, so callers may
//     reuse or mutate their slices afterward.
//   - γ(0) reproduces initial and γ(1) reproduces end up to the
//     variant's Exp/Log consistency.
//
// Errors:
//   - ErrNilMetric, ErrNotImplemented (no logarithm capability) at
//     construction; per-evaluation errors come from the variant's Exp.
//
// Complexity:
//   - Construction: one Log, O(dim). Evaluation: one Exp plus O(dim).
func Geodesic(m Metric, initial, end Point) (Curve, error) {
	// Guard the metric before touching its capabilities.
	if err := validateMetric(m); err != nil {
		return nil, metricErrorf(opGeodesic, err)
	}
	// The initial velocity: end pulled into the tangent space at initial.
	velocity, err := m.Log(end, initial)
	if err != nil {
		return nil, metricErrorf(opGeodesic, err)
	}
	// Capture stable copies; the closure must not alias caller slices.
	base := clonePoint(initial)
	direction := make(TangentVec, len(velocity))
	copy(direction, velocity)

	return func(t float64) (Point, error) {
		// Scale the initial velocity by the curve parameter.
		scaled := make(TangentVec, len(direction))
		for i := range direction {
			scaled[i] = t * direction[i]
		}
		// Shoot from the base point.
		p, errExp := m.Exp(scaled, base)
		if errExp != nil {
			return nil, metricErrorf(opGeodesic, errExp)
		}

		return p, nil
	}, nil
}

// Normalize rescales v to unit length at base: v / Norm(v, base).
//
// Errors:
//   - ErrNegativeSquaredNorm for indefinite directions (propagated from
//     Norm), ErrZeroNorm for a vector of exactly zero norm, plus
//     everything Norm can report.
//
// Complexity: Time O(dim²), Space O(dim) for the result.
func Normalize(m Metric, v TangentVec, base Point) (TangentVec, error) {
	// Length at the base point; sign problems surface here.
	length, err := Norm(m, v, base)
	if err != nil {
		return nil, metricErrorf(opNormalize, err)
	}
	// A null/zero vector cannot be scaled to unit length.
	if length == 0 {
		return nil, metricErrorf(opNormalize, ErrZeroNorm)
	}
	// Fresh output slice; the input is never mutated.
	out := make(TangentVec, len(v))
	for i := range v {
		out[i] = v[i] / length
	}

	return out, nil
}
