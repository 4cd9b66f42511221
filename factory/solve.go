package factory

import (
	"errors"
	"fmt"

	"github.com/planforge/planforge/lpsolve"
)

// Solve plans production for p.
//
// Steps:
//  1. Validate the problem (structural defects are fatal).
//  2. Precompute the plan: sorted universes, effective rates, objective.
//  3. Solve the primary LP (meet the target rate at minimum machine time).
//     A feasible optimum is interpreted into a StatusOK result.
//  4. On infeasibility, solve the secondary LP maximizing the achievable
//     fraction y of the target. A secondary optimum at y = 1 means the
//     primary verdict was a numerical artifact and its point is the plan;
//     otherwise the result reports y·rate. A secondary failure means not
//     even a zero-rate plan satisfies the caps, which reports as zero
//     achievable throughput.
//
// Complexity is dominated by the simplex iterations; assembly is
// O(items × recipes).
func Solve(p *Problem, opts Options) (*Result, error) {
	opts.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pl := newPlan(p)
	rate := p.Target.RatePerMin
	lpOpts := lpsolve.Options{Tol: opts.LPTol}

	primary := pl.buildModel(rate, opts.Epsilon, false)
	switch {
	case primary.triviallyInfeasible:
		// A required rate with no recipe left to deliver it; skip straight
		// to the fraction-maximizing solve.
	case len(primary.freeVars) == 0:
		// Presolve fixed every recipe at zero and no balance demands
		// otherwise: the all-zero plan is the optimum.
		return pl.interpret(make([]float64, len(pl.recipeNames)), opts.Epsilon), nil
	default:
		sol, err := lpsolve.Solve(primary.prob, lpOpts)
		switch {
		case err == nil:
			return pl.interpret(primary.expand(sol.X), opts.Epsilon), nil
		case errors.Is(err, lpsolve.ErrInfeasible), errors.Is(err, lpsolve.ErrUnbounded):
			// Fall through to the fraction-maximizing solve.
		default:
			return nil, fmt.Errorf("factory: primary solve: %w", err)
		}
	}

	if err := opts.Ctx.Err(); err != nil {
		return nil, err
	}

	maxRate := 0.0
	secondary := pl.buildModel(rate, opts.Epsilon, true)
	if !secondary.triviallyInfeasible {
		sol, err := lpsolve.Solve(secondary.prob, lpOpts)
		switch {
		case err == nil:
			y := sol.X[secondary.fractionVar]
			if y >= 1-opts.Epsilon {
				// The whole target is achievable after all: the primary's
				// infeasible verdict was degenerate-pivot noise. The
				// secondary point meets the target within tolerance.
				return pl.interpret(secondary.expand(sol.X[:secondary.fractionVar]), opts.Epsilon), nil
			}
			if y < 0 {
				y = 0
			} else if y > 1 {
				y = 1
			}
			maxRate = y * rate
		case errors.Is(err, lpsolve.ErrInfeasible), errors.Is(err, lpsolve.ErrUnbounded):
			// Even y = 0 violates the caps: nothing is achievable.
		default:
			return nil, fmt.Errorf("factory: secondary solve: %w", err)
		}
	}

	return &Result{
		Status:                  StatusInfeasible,
		MaxFeasibleTargetPerMin: maxRate,
		BottleneckHint:          []string{BottleneckHintGeneric},
	}, nil
}

// interpret turns an optimal primary point into the reported plan:
// every recipe appears in the rate map (sub-epsilon rates flushed to
// zero), machine counts aggregate over running recipes, and raw draw is
// net consumption per raw item, reported only when material.
func (pl *plan) interpret(x []float64, eps float64) *Result {
	perRecipe := make(map[string]float64, len(pl.recipeNames))
	machines := make(map[string]float64)
	for i, name := range pl.recipeNames {
		rate := x[i]
		if rate < eps {
			rate = 0
		}
		perRecipe[name] = rate
		if rate > 0 {
			machines[pl.problem.Recipes[name].Machine] += pl.machineCount(name, rate)
		}
	}

	raw := make(map[string]float64)
	for item := range pl.rawItems {
		idx, used := pl.itemIndex[item]
		if !used {
			continue
		}
		consumed := 0.0
		for r := range pl.recipeNames {
			consumed -= pl.netCoef[idx][r] * x[r]
		}
		if consumed > eps {
			raw[item] = consumed
		}
	}

	return &Result{
		Status:                StatusOK,
		PerRecipeCraftsPerMin: perRecipe,
		PerMachineCounts:      machines,
		RawConsumptionPerMin:  raw,
	}
}
