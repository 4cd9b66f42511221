// Package belts decides whether a bounded belt network can carry its
// declared supply, and reports how — or why not.
//
// A Problem names zero or more source nodes (each with a supply rate), one
// sink node, directed edges with mandatory minimum (lo) and maximum (hi)
// throughput, and optional per-node throughput caps. Solve answers with one
// of three outcomes:
//
//   - feasible: a per-edge flow assignment routing every unit of supply to
//     the sink while respecting all bounds and caps,
//   - infeasible: the min-cut bottleneck node set and the exact deficit
//     (how much mandatory flow cannot be routed),
//   - unbounded: the degenerate case where the circulation itself has no
//     finite bound (reported as infeasible with the Unbounded flag set).
//
// # Reduction
//
// The problem is transformed into a plain max-flow instance in three
// classical steps, then handed to the maxflow package:
//
//  1. Node splitting — every capped non-source/non-sink node becomes an
//     (in, out) pair joined by one capacity-limited arc; every original
//     edge u→v is rewritten to out(u)→in(v).
//  2. Lower-bound elimination — each edge's mandatory minimum is pre-routed:
//     the residual arc keeps capacity hi−lo, and the per-node balance
//     accounts for the committed flow.
//  3. Super-source/super-sink circulation — nodes left with positive balance
//     receive an arc from the super-source, nodes with negative balance an
//     arc to the super-sink. The instance is feasible iff the max flow
//     saturates every super-sink arc, i.e. equals the total demand
//     imbalance.
//
// On success true edge flows are reconstructed by adding each edge's lower
// bound back onto its residual flow. On failure the residual reachable set
// is folded back to original node identifiers and reported as the
// bottleneck, together with the deficit.
//
// # Usage
//
//	res, err := belts.Solve(problem, belts.DefaultOptions())
//	switch {
//	case err != nil:            // malformed problem or solver failure
//	case res.Status == belts.StatusOK:
//	case res.Unbounded:
//	default:                    // res.CutReachable, res.Deficit
//	}
//
// Solve is a pure function of its input: no I/O, no shared state, safe to
// call concurrently from independent goroutines.
package belts
