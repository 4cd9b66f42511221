// Package verify independently checks solver results against their
// problems.
//
// The checkers share no code with the solvers beyond the public types:
// effective rates and balances are re-derived from first principles, so a
// solver bug cannot hide behind its own bookkeeping. Each checker returns
// a list of human-readable violations; an empty list means the result is
// consistent with the problem.
//
//	if violations := verify.Belts(problem, result, verify.DefaultOptions()); len(violations) > 0 {
//		// result does not satisfy the problem's constraints
//	}
//
// Only StatusOK results carry a full plan to check; any other status is
// reported as a single violation, matching the callers' expectation that
// verification applies to claimed solutions.
package verify
