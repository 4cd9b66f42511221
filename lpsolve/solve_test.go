package lpsolve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/planforge/planforge/lpsolve"
)

// TestEqualityOnly solves min x0+2·x1 s.t. x0+x1 = 4, x ≥ 0.
// Cheapest point puts everything on x0.
func TestEqualityOnly(t *testing.T) {
	sol, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{1, 2},
		AEq: mat.NewDense(1, 2, []float64{1, 1}),
		BEq: []float64{4},
	}, lpsolve.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 4.0, sol.X[0], 1e-8)
	require.InDelta(t, 0.0, sol.X[1], 1e-8)
	require.InDelta(t, 4.0, sol.Objective, 1e-8)
}

// TestInequalityslack solves min -x0 s.t. x0 ≤ 3, x ≥ 0.
func TestInequalitySlack(t *testing.T) {
	sol, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{-1},
		AUb: mat.NewDense(1, 1, []float64{1}),
		BUb: []float64{3},
	}, lpsolve.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 3.0, sol.X[0], 1e-8)
	require.InDelta(t, -3.0, sol.Objective, 1e-8)
}

// TestMixedConstraints solves a small production-shaped LP:
// min x0+x1 s.t. x0+x1 = 10, x0 ≤ 4 → x = (4, 6) is forced on x1.
func TestMixedConstraints(t *testing.T) {
	sol, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{1, 3},
		AEq: mat.NewDense(1, 2, []float64{1, 1}),
		BEq: []float64{10},
		AUb: mat.NewDense(1, 2, []float64{1, 0}),
		BUb: []float64{4},
	}, lpsolve.DefaultOptions())
	require.NoError(t, err)
	require.InDelta(t, 4.0, sol.X[0], 1e-8)
	require.InDelta(t, 6.0, sol.X[1], 1e-8)
}

// TestInfeasible detects contradictory constraints as the sentinel,
// not a generic failure.
func TestInfeasible(t *testing.T) {
	_, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{1},
		AEq: mat.NewDense(1, 1, []float64{1}),
		BEq: []float64{5},
		AUb: mat.NewDense(1, 1, []float64{1}),
		BUb: []float64{3},
	}, lpsolve.DefaultOptions())
	require.True(t, errors.Is(err, lpsolve.ErrInfeasible))
}

// TestUnbounded detects an objective that can fall forever.
func TestUnbounded(t *testing.T) {
	_, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{-1, -1},
		AEq: mat.NewDense(1, 2, []float64{1, -1}),
		BEq: []float64{0},
	}, lpsolve.DefaultOptions())
	require.True(t, errors.Is(err, lpsolve.ErrUnbounded))
}

// TestShapeValidation rejects mismatched dimensions before the solve.
func TestShapeValidation(t *testing.T) {
	_, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{1, 2},
		AEq: mat.NewDense(1, 1, []float64{1}),
		BEq: []float64{1},
	}, lpsolve.DefaultOptions())
	require.True(t, errors.Is(err, lpsolve.ErrBadShape))

	_, err = lpsolve.Solve(lpsolve.Problem{C: nil}, lpsolve.DefaultOptions())
	require.True(t, errors.Is(err, lpsolve.ErrBadShape))
}

// TestDegenerateShapeRecovered turns a simplex panic (more equality rows
// than columns) into an ordinary error.
func TestDegenerateShapeRecovered(t *testing.T) {
	_, err := lpsolve.Solve(lpsolve.Problem{
		C:   []float64{1},
		AEq: mat.NewDense(2, 1, []float64{1, 1}),
		BEq: []float64{1, 2},
	}, lpsolve.DefaultOptions())
	require.Error(t, err)
}
