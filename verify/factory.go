package verify

import (
	"fmt"
	"math"
	"sort"

	"github.com/planforge/planforge/factory"
)

// Factory checks a production result against its problem.
//
// Effective rates are re-derived here from the raw machine, module and
// recipe data rather than taken from the solver. Checks, in order:
//  1. Mass balance per item: the target nets its requested rate,
//     raw items are never net-produced, intermediates net zero.
//  2. Reported raw consumption stays within its supply cap.
//  3. Reported machine counts stay within their caps.
func Factory(p *factory.Problem, r *factory.Result, opts Options) []string {
	opts.normalize()
	eps := opts.Epsilon

	if r.Status != factory.StatusOK {
		return []string{fmt.Sprintf("result status is %q, not %q", r.Status, factory.StatusOK)}
	}

	var violations []string

	effOut := effectiveOutputs(p)
	items := make(map[string]bool)
	for _, rec := range p.Recipes {
		for item := range rec.In {
			items[item] = true
		}
		for item := range rec.Out {
			items[item] = true
		}
	}

	itemNames := make([]string, 0, len(items))
	for item := range items {
		itemNames = append(itemNames, item)
	}
	sort.Strings(itemNames)

	recipeNames := make([]string, 0, len(p.Recipes))
	for name := range p.Recipes {
		recipeNames = append(recipeNames, name)
	}
	sort.Strings(recipeNames)

	for _, item := range itemNames {
		net := 0.0
		for _, name := range recipeNames {
			crafts := r.PerRecipeCraftsPerMin[name]
			net += effOut[name][item] * crafts
			net -= p.Recipes[name].In[item] * crafts
		}

		_, isRaw := p.Limits.RawSupplyPerMin[item]
		switch {
		case item == p.Target.Item:
			if math.Abs(net-p.Target.RatePerMin) > eps {
				violations = append(violations,
					fmt.Sprintf("target %q mismatch: net %g, expected %g", item, net, p.Target.RatePerMin))
			}
		case isRaw:
			if net > eps {
				violations = append(violations,
					fmt.Sprintf("raw item %q has net production: %g", item, net))
			}
		default:
			if math.Abs(net) > eps {
				violations = append(violations,
					fmt.Sprintf("intermediate %q not balanced: net %g", item, net))
			}
		}
	}

	for _, item := range sortedKeys(r.RawConsumptionPerMin) {
		consumed := r.RawConsumptionPerMin[item]
		if cap, capped := p.Limits.RawSupplyPerMin[item]; capped && consumed > cap+eps {
			violations = append(violations,
				fmt.Sprintf("raw item %q cap exceeded: used %g, cap %g", item, consumed, cap))
		}
	}

	for _, name := range sortedKeys(r.PerMachineCounts) {
		used := r.PerMachineCounts[name]
		if cap, capped := p.Limits.MaxMachines[name]; capped && used > cap+eps {
			violations = append(violations,
				fmt.Sprintf("machine %q cap exceeded: used %g, cap %g", name, used, cap))
		}
	}

	return violations
}

// effectiveOutputs re-derives per-recipe productivity-adjusted output
// quantities: out × (1 + prod). Inputs are never module-adjusted.
func effectiveOutputs(p *factory.Problem) map[string]map[string]float64 {
	eff := make(map[string]map[string]float64, len(p.Recipes))
	for name, rec := range p.Recipes {
		mods := p.Modules[rec.Machine]
		out := make(map[string]float64, len(rec.Out))
		for item, qty := range rec.Out {
			out[item] = qty * (1 + mods.Prod)
		}
		eff[name] = out
	}

	return eff
}
