// Package factory plans production: which recipes to run, at what rates,
// to hit a target output under raw-supply and machine-count limits.
//
// A Problem declares machines (base crafting speed), recipes (machine,
// duration, input/output item quantities), optional per-machine module
// effects (speed multiplies throughput; productivity multiplies output
// quantities without touching inputs), limits (raw supply caps, machine
// count caps) and a target item with a requested rate per minute.
//
// # Reduction
//
// The single decision variable set is "crafts per minute" per recipe,
// continuous and non-negative. The problem becomes a linear program:
//
//   - one mass-balance equality per item: the target item nets the
//     requested rate, intermediates net zero; raw items are governed by a
//     cap inequality instead (supply is a ceiling, not an exact balance),
//   - one inequality per capped raw item bounding net consumption,
//   - one inequality per capped machine bounding Σ rate/effective-rate
//     (a continuous machine-count relaxation),
//   - a cost of 1/effective-crafts-per-minute per recipe — a machine-time
//     proxy whose only job is deterministic tie-breaking; a strictly
//     increasing 1e-9·(index+1) perturbation fixes the preference order
//     among equal-cost recipes.
//
// When the primary LP is infeasible a secondary LP maximizes y ∈ [0,1],
// the achievable fraction of the target rate, and the result reports
// y·rate as the best feasible throughput.
//
// # Usage
//
//	res, err := factory.Solve(problem, factory.DefaultOptions())
//	switch {
//	case err != nil:                   // malformed problem or solver failure
//	case res.Status == factory.StatusOK:
//	default:                           // res.MaxFeasibleTargetPerMin
//	}
//
// Solve is a pure function of its input and safe to call concurrently
// from independent goroutines.
package factory
