package lpsolve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve minimizes p.C over p's constraint set.
//
// Steps:
//  1. Validate shapes (every constraint block must match len(p.C)).
//  2. Canonicalize: append one slack variable per inequality row, stacking
//     [AEq 0; AUb I]·[x; s] = [BEq; BUb] with zero objective on slacks.
//  3. Run gonum's simplex and map its outcome: ErrInfeasible and
//     ErrUnbounded become this package's sentinels; any other error, and
//     any panic from a degenerate shape, surfaces as a solver failure.
//  4. Return the decision variables (slacks stripped) and the objective.
func Solve(p Problem, opts Options) (sol *Solution, err error) {
	nVar := len(p.C)
	nEq, err := blockRows(p.AEq, p.BEq, nVar)
	if err != nil {
		return nil, err
	}
	nUb, err := blockRows(p.AUb, p.BUb, nVar)
	if err != nil {
		return nil, err
	}
	if nVar == 0 {
		return nil, fmt.Errorf("%w: no decision variables", ErrBadShape)
	}

	// 2) Stack the canonical system.
	nTotal := nVar + nUb
	c := make([]float64, nTotal)
	copy(c, p.C)

	b := make([]float64, nEq+nUb)
	copy(b, p.BEq)
	copy(b[nEq:], p.BUb)

	a := mat.NewDense(nEq+nUb, nTotal, nil)
	if nEq > 0 {
		a.Slice(0, nEq, 0, nVar).(*mat.Dense).Copy(p.AEq)
	}
	if nUb > 0 {
		a.Slice(nEq, nEq+nUb, 0, nVar).(*mat.Dense).Copy(p.AUb)
		slack := a.Slice(nEq, nEq+nUb, nVar, nTotal).(*mat.Dense)
		for i := 0; i < nUb; i++ {
			slack.Set(i, i, 1)
		}
	}

	// 3) Simplex panics on shapes it cannot pivot (e.g. more rows than
	// columns); convert that to an ordinary error at this boundary.
	defer func() {
		if r := recover(); r != nil {
			sol = nil
			err = fmt.Errorf("lpsolve: simplex failed: %v", r)
		}
	}()

	objective, x, err := lp.Simplex(c, a, b, opts.Tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
	case errors.Is(err, lp.ErrUnbounded):
		return nil, fmt.Errorf("%w: %v", ErrUnbounded, err)
	case err != nil:
		return nil, fmt.Errorf("lpsolve: simplex failed: %w", err)
	}

	return &Solution{X: x[:nVar], Objective: objective}, nil
}

// blockRows validates one constraint block and returns its row count.
func blockRows(a *mat.Dense, b []float64, nVar int) (int, error) {
	if a == nil {
		if len(b) != 0 {
			return 0, fmt.Errorf("%w: rhs without constraint matrix", ErrBadShape)
		}

		return 0, nil
	}
	rows, cols := a.Dims()
	if cols != nVar {
		return 0, fmt.Errorf("%w: %d columns for %d variables", ErrBadShape, cols, nVar)
	}
	if rows != len(b) {
		return 0, fmt.Errorf("%w: %d rows for %d rhs entries", ErrBadShape, rows, len(b))
	}

	return rows, nil
}
