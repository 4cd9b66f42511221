package factory

import (
	"math"
	"sort"
)

// tieBreakScale is the per-recipe objective perturbation forcing a
// deterministic preference ordering among otherwise-equal-cost recipes.
// It sits well below the solver's feasibility tolerance for the intended
// problem sizes, so it never moves the true optimum.
const tieBreakScale = 1e-9

// plan is the precomputed, immutable core of a production model: sorted
// name universes, effective rates after module multipliers, and the
// objective vector. Both the primary and the secondary LP are assembled
// from the same plan.
type plan struct {
	problem *Problem

	recipeNames []string       // sorted; fixes variable order
	itemNames   []string       // sorted; fixes constraint-row order
	itemIndex   map[string]int // item → row in netCoef
	rawItems    map[string]bool

	effCrafts map[string]float64            // recipe → crafts/min after speed modules
	effOut    map[string]map[string]float64 // recipe → item → quantity after prod modules
	objective []float64                     // 1/effCrafts + tie-break, per recipe
	pinned    []int                         // recipes with no positive effective rate: forced to zero

	// netCoef[item][recipe] = effective output − input per craft.
	netCoef [][]float64
}

// newPlan classifies items and precomputes effective values for a
// validated problem.
//
// Effective crafting rate: base_speed × (1 + speed_module) × 60 / time_s;
// a non-positive time_s means an instantaneous recipe (infinite rate, zero
// machine usage). Effective output: out_quantity × (1 + prod_module) —
// productivity never alters input consumption.
func newPlan(p *Problem) *plan {
	pl := &plan{
		problem:   p,
		rawItems:  make(map[string]bool, len(p.Limits.RawSupplyPerMin)),
		effCrafts: make(map[string]float64, len(p.Recipes)),
		effOut:    make(map[string]map[string]float64, len(p.Recipes)),
		itemIndex: make(map[string]int),
	}

	for name := range p.Recipes {
		pl.recipeNames = append(pl.recipeNames, name)
	}
	sort.Strings(pl.recipeNames)

	// The item universe is whatever the recipes mention. Raw items are by
	// definition the ones with a declared external supply.
	items := make(map[string]bool)
	for _, r := range p.Recipes {
		for item := range r.In {
			items[item] = true
		}
		for item := range r.Out {
			items[item] = true
		}
	}
	for item := range items {
		pl.itemNames = append(pl.itemNames, item)
	}
	sort.Strings(pl.itemNames)
	for i, item := range pl.itemNames {
		pl.itemIndex[item] = i
	}
	for item := range p.Limits.RawSupplyPerMin {
		pl.rawItems[item] = true
	}

	// Effective rates, objective and the net production matrix.
	pl.objective = make([]float64, len(pl.recipeNames))
	pl.netCoef = make([][]float64, len(pl.itemNames))
	for i := range pl.netCoef {
		pl.netCoef[i] = make([]float64, len(pl.recipeNames))
	}

	for i, name := range pl.recipeNames {
		r := p.Recipes[name]
		machine := p.Machines[r.Machine]
		mods := p.Modules[r.Machine]

		eff := math.Inf(1)
		if r.TimeS > 0 {
			eff = machine.CraftsPerMin * (1 + mods.Speed) * 60 / r.TimeS
		}
		pl.effCrafts[name] = eff

		if eff > 0 {
			// 1/eff is 0 for instantaneous recipes: they cost no machine time.
			pl.objective[i] = 1/eff + tieBreakScale*float64(i+1)
		} else {
			// No positive rate means the recipe can never run; it is pinned
			// to zero by an explicit constraint rather than an infinite cost.
			pl.objective[i] = tieBreakScale * float64(i+1)
			pl.pinned = append(pl.pinned, i)
		}

		out := make(map[string]float64, len(r.Out))
		for item, qty := range r.Out {
			out[item] = qty * (1 + mods.Prod)
		}
		pl.effOut[name] = out

		for item, qty := range out {
			pl.netCoef[pl.itemIndex[item]][i] += qty
		}
		for item, qty := range r.In {
			pl.netCoef[pl.itemIndex[item]][i] -= qty
		}
	}

	return pl
}

// forcedZero returns, per recipe index, whether the recipe can never run:
// the pinned ones, plus every recipe caught in a cascade of single-signed
// balance rows. A non-raw, non-target item whose remaining coefficients all
// share one sign has a zero-balance row only x = 0 can satisfy (every term
// is non-negative or every term is non-positive), so those recipes are
// fixed at zero and their columns removed before the LP is assembled.
// Simplex implementations degrade badly on such degenerate rows, so this
// runs to fixpoint: zeroing a recipe can leave another row single-signed.
func (pl *plan) forcedZero(eps float64) []bool {
	forced := make([]bool, len(pl.recipeNames))
	for _, r := range pl.pinned {
		forced[r] = true
	}

	for changed := true; changed; {
		changed = false
		for i, item := range pl.itemNames {
			if pl.rawItems[item] || item == pl.problem.Target.Item {
				continue // cap rows and the target row are not zero-balance rows
			}
			pos, neg := false, false
			for r := range pl.recipeNames {
				if forced[r] {
					continue
				}
				switch c := pl.netCoef[i][r]; {
				case c > eps:
					pos = true
				case c < -eps:
					neg = true
				}
			}
			if pos == neg {
				continue // mixed signs or nothing left: the row forces nothing
			}
			for r := range pl.recipeNames {
				if forced[r] {
					continue
				}
				if c := pl.netCoef[i][r]; c > eps || c < -eps {
					forced[r] = true
					changed = true
				}
			}
		}
	}

	return forced
}

// machineCount returns the continuous number of machines recipe name needs
// to sustain rate crafts per minute.
func (pl *plan) machineCount(name string, rate float64) float64 {
	eff := pl.effCrafts[name]
	if eff <= 0 || math.IsInf(eff, 1) {
		return 0
	}

	return rate / eff
}
