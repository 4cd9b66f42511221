package lpsolve

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrInfeasible is returned when the constraint set admits no solution.
// It is an expected, reportable outcome, not a failure.
var ErrInfeasible = errors.New("lpsolve: problem is infeasible")

// ErrUnbounded is returned when the objective can decrease without bound.
var ErrUnbounded = errors.New("lpsolve: problem is unbounded")

// ErrBadShape is returned when objective and constraint dimensions disagree.
var ErrBadShape = errors.New("lpsolve: dimension mismatch")

// Problem is a general-form LP over implicitly non-negative variables.
// Either constraint block may be nil (with a nil right-hand side).
type Problem struct {
	// C is the objective coefficient vector; its length fixes the number
	// of decision variables.
	C []float64

	// AEq·x = BEq.
	AEq *mat.Dense
	BEq []float64

	// AUb·x ≤ BUb.
	AUb *mat.Dense
	BUb []float64
}

// Solution is an optimal point of a feasible, bounded problem.
type Solution struct {
	// X holds the decision variables, in the order of Problem.C.
	X []float64
	// Objective is the optimal objective value cᵀ·x.
	Objective float64
}

// Options configures a Solve call.
//   - Tol: simplex optimality tolerance; 0 selects gonum's default.
type Options struct {
	Tol float64
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{}
}
