// Package numeric centralizes the floating-point tolerance conventions
// shared by every planforge solver.
//
// All feasibility decisions in this module compare numbers that passed
// through an iterative solver (max-flow augmentation or simplex pivoting),
// so exact equality is never meaningful. Every boundary test goes through
// the helpers here, parameterized by an epsilon that callers thread in via
// their Options structs; DefaultEpsilon (1e-9) is the module-wide default.
//
// The comparisons delegate to gonum's floats package so that solver and
// interpreter agree on the same absolute-tolerance semantics.
package numeric
