// Package planforge is a toolkit for production-network planning:
// it answers "is this layout feasible, and if not, why not?" for two
// classic planning questions.
//
// 🚀 What does planforge solve?
//
//   - belts   — route material through a directed belt network whose edges
//     carry mandatory minimum and maximum throughput bounds and
//     whose nodes may be capped. Reduced to a max-flow feasibility
//     circulation (lower-bound elimination + node splitting +
//     super-source/super-sink).
//   - factory — pick crafting rates for a set of recipes so that a target
//     item is produced at a requested rate under raw-supply and
//     machine-count caps, at minimum weighted machine time.
//     Reduced to a linear program; on infeasibility a secondary
//     LP reports the best achievable fraction of the target.
//
// ✨ Design principles
//
//   - Explicit outcomes – feasible / infeasible / unbounded are result
//     variants you can switch on, never panics or sentinel strings.
//   - Referential transparency – every solve is a pure function of its
//     input; tolerances and contexts travel in per-call Options.
//   - Diagnosable failure – infeasible flow problems come back with the
//     min-cut bottleneck node set and the exact deficit; infeasible
//     factories come back with the maximum achievable rate.
//
// Package map:
//
//	numeric/  — shared floating-point tolerance helpers
//	maxflow/  — Dinic max-flow over a capacity network (the flow collaborator)
//	belts/    — bounded-flow model builder + result interpreter
//	lpsolve/  — slack-variable canonicalization over gonum's simplex (the LP collaborator)
//	factory/  — production-planning model builder + result interpreter
//	verify/   — independent validators re-deriving answers from first principles
//	probgen/  — seeded random problem generators for testing and demos
//	cmd/      — the planforge command-line front end
package planforge
