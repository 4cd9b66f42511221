// Package lpsolve solves general-form linear programs with non-negative
// variables. It is the numeric collaborator consumed by the factory solver.
//
// The accepted form is:
//
//	minimize    cᵀ·x
//	subject to  AEq·x  = BEq
//	            AUb·x ≤ BUb
//	            x ≥ 0
//
// Canonicalization introduces one slack variable per inequality row and
// stacks the system into the standard form gonum's simplex expects:
//
//	minimize    [c, 0]ᵀ·[x; s]
//	subject to  [AEq 0; AUb I]·[x; s] = [BEq; BUb],   x ≥ 0, s ≥ 0
//
// The solve itself is gonum.org/v1/gonum/optimize/convex/lp.Simplex. Its
// outcome is mapped onto this package's explicit variants:
//
//	lp.ErrInfeasible → ErrInfeasible (a valid, reportable outcome)
//	lp.ErrUnbounded  → ErrUnbounded
//	anything else    → a wrapped solver-failure error
//
// Simplex panics on degenerate shapes (for example more equality rows than
// columns); those are recovered and surfaced as ordinary solver-failure
// errors so a malformed model can never crash a request.
package lpsolve
