package factory

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/planforge/planforge/lpsolve"
	"github.com/planforge/planforge/numeric"
)

// lpModel is one assembled linear program plus the bookkeeping the solver
// loop needs: the recipe indices that survived presolve (the LP columns),
// the fraction-variable index (secondary only) and whether the assembly
// already proved the model infeasible (a mass-balance row with no
// variables but a non-zero requirement).
type lpModel struct {
	prob                lpsolve.Problem
	freeVars            []int // recipe index per LP column
	nRecipes            int
	fractionVar         int // index of y in the secondary model, -1 in the primary
	triviallyInfeasible bool
}

// buildModel assembles the production LP for a given plan.
//
// Presolve comes first: pinned recipes and recipes forced to zero by
// single-signed zero-balance rows (see plan.forcedZero) are dropped from
// the variable set entirely, keeping degenerate rows away from the simplex.
//
// With secondary == false the decision variables are the per-recipe craft
// rates and the target item's mass-balance row is pinned to the requested
// rate. With secondary == true one extra variable y is appended, the target
// row becomes net − rate·y = 0, the objective switches to maximizing y, and
// a y ≤ 1 cap completes the fraction semantics.
//
// Constraint rows, all over the free columns:
//   - equality per non-raw item (target rate / zero balance); raw items are
//     excluded here because their supply is a ceiling, not a balance,
//   - inequality per raw item appearing in recipes: net consumption ≤ cap,
//   - inequality per capped machine: Σ rate/effective-rate ≤ cap.
//
// All-zero rows are dropped: with a zero requirement they are vacuous,
// with a non-zero one the model is infeasible by inspection and flagged
// instead of being handed to the solver.
func (pl *plan) buildModel(targetRate, eps float64, secondary bool) *lpModel {
	forced := pl.forcedZero(eps)
	var free []int
	for r := range pl.recipeNames {
		if !forced[r] {
			free = append(free, r)
		}
	}

	nFree := len(free)
	nVars := nFree
	yIdx := -1
	if secondary {
		yIdx = nFree
		nVars++
	}

	m := &lpModel{freeVars: free, nRecipes: len(pl.recipeNames), fractionVar: yIdx}

	// Objective.
	c := make([]float64, nVars)
	if secondary {
		c[yIdx] = -1 // maximize the achievable fraction
	} else {
		for j, r := range free {
			c[j] = pl.objective[r]
		}
	}

	// Equality block: mass balance per non-raw item.
	var eqRows [][]float64
	var beq []float64
	for i, item := range pl.itemNames {
		isTarget := item == pl.problem.Target.Item
		if pl.rawItems[item] && !isTarget {
			continue
		}

		row := make([]float64, nVars)
		for j, r := range free {
			row[j] = pl.netCoef[i][r]
		}
		rhs := 0.0
		if isTarget {
			if secondary {
				row[yIdx] = -targetRate
			} else {
				rhs = targetRate
			}
		}

		if zeroRow(row, eps) {
			if !numeric.Zero(rhs, eps) {
				m.triviallyInfeasible = true
			}
			continue
		}
		eqRows = append(eqRows, row)
		beq = append(beq, rhs)
	}

	// Inequality block.
	var ubRows [][]float64
	var bub []float64

	// Raw-supply caps, in sorted item order for deterministic assembly.
	rawNames := make([]string, 0, len(pl.rawItems))
	for item := range pl.rawItems {
		rawNames = append(rawNames, item)
	}
	sort.Strings(rawNames)
	for _, item := range rawNames {
		idx, used := pl.itemIndex[item]
		if !used || item == pl.problem.Target.Item {
			continue // raw items no recipe touches constrain nothing
		}
		row := make([]float64, nVars)
		for j, r := range free {
			row[j] = -pl.netCoef[idx][r] // net consumption
		}
		if zeroRow(row, eps) {
			continue // every consumer was presolved away
		}
		ubRows = append(ubRows, row)
		bub = append(bub, pl.problem.Limits.RawSupplyPerMin[item]+eps)
	}

	// Machine-count caps, in sorted machine order.
	machineNames := make([]string, 0, len(pl.problem.Limits.MaxMachines))
	for name := range pl.problem.Limits.MaxMachines {
		machineNames = append(machineNames, name)
	}
	sort.Strings(machineNames)
	for _, machine := range machineNames {
		row := make([]float64, nVars)
		hit := false
		for j, r := range free {
			recipe := pl.recipeNames[r]
			if pl.problem.Recipes[recipe].Machine != machine {
				continue
			}
			if eff := pl.effCrafts[recipe]; eff > 0 && !math.IsInf(eff, 1) {
				row[j] = 1 / eff
				hit = true
			}
		}
		if !hit {
			continue // no finite-rate recipe uses this machine
		}
		ubRows = append(ubRows, row)
		bub = append(bub, pl.problem.Limits.MaxMachines[machine]+eps)
	}

	// The fraction variable is capped at 1.
	if secondary {
		row := make([]float64, nVars)
		row[yIdx] = 1
		ubRows = append(ubRows, row)
		bub = append(bub, 1)
	}

	m.prob = lpsolve.Problem{
		C:   c,
		AEq: denseFromRows(eqRows, nVars),
		BEq: beq,
		AUb: denseFromRows(ubRows, nVars),
		BUb: bub,
	}

	return m
}

// expand maps the LP's compressed solution back onto the full recipe
// universe, with presolved recipes at zero.
func (m *lpModel) expand(x []float64) []float64 {
	full := make([]float64, m.nRecipes)
	for j, r := range m.freeVars {
		full[r] = x[j]
	}

	return full
}

// zeroRow reports whether every coefficient sits inside the tolerance band.
func zeroRow(row []float64, eps float64) bool {
	for _, v := range row {
		if !numeric.Zero(v, eps) {
			return false
		}
	}

	return true
}

// denseFromRows packs constraint rows into a matrix, or nil when empty.
func denseFromRows(rows [][]float64, nVars int) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	a := mat.NewDense(len(rows), nVars, nil)
	for i, row := range rows {
		a.SetRow(i, row)
	}

	return a
}
