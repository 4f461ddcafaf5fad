package metric_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/matrix"
	"github.com/katalvlaran/lvlgeo/metric"
	"github.com/stretchr/testify/require"
)

// flatMetric is the Euclidean test fixture: identity tensor at every
// point, exp(v, p) = p + v and log(q, p) = q - p. The space is flat, so
// the Frechet mean is the arithmetic centroid.
type flatMetric struct {
	metric.Base
}

func newFlatMetric(t *testing.T, dim int) flatMetric {
	t.Helper()
	base, err := metric.NewBase(dim)
	require.NoError(t, err, "fixture dimension must be valid")

	return flatMetric{Base: base}
}

// InnerProductMatrix accepts a nil base: the tensor is position-independent.
func (f flatMetric) InnerProductMatrix(_ metric.Point) (matrix.Matrix, error) {
	return matrix.Identity(f.Dimension())
}

func (f flatMetric) Exp(vec metric.TangentVec, base metric.Point) (metric.Point, error) {
	out := make(metric.Point, len(base))
	for i := range base {
		out[i] = base[i] + vec[i]
	}

	return out, nil
}

func (f flatMetric) Log(point, base metric.Point) (metric.TangentVec, error) {
	out := make(metric.TangentVec, len(base))
	for i := range base {
		out[i] = point[i] - base[i]
	}

	return out, nil
}

// tensorMetric carries an arbitrary constant tensor (possibly indefinite
// or degenerate) over a flat exp/log pair. Used to exercise negative and
// zero squared quantities.
type tensorMetric struct {
	flatMetric
	tensor matrix.Matrix
}

func newTensorMetric(t *testing.T, rows [][]float64) tensorMetric {
	t.Helper()
	g, err := matrix.FromRows(rows)
	require.NoError(t, err, "fixture tensor must be rectangular")

	return tensorMetric{flatMetric: newFlatMetric(t, g.Rows()), tensor: g}
}

func (c tensorMetric) InnerProductMatrix(_ metric.Point) (matrix.Matrix, error) {
	return c.tensor, nil
}

// stubMetric embeds Base only: every capability reports ErrNotImplemented
// through the derived algorithms.
type stubMetric struct {
	metric.Base
}

func newStubMetric(t *testing.T, dim int) stubMetric {
	t.Helper()
	base, err := metric.NewBase(dim)
	require.NoError(t, err)

	return stubMetric{Base: base}
}
