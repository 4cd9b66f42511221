package verify

import (
	"fmt"
	"math"
	"sort"

	"github.com/planforge/planforge/belts"
)

// arcKey is an ordered node pair. Parallel edges between the same pair are
// verified in aggregate: their bounds sum, and so do their reported flows.
type arcKey struct {
	from, to string
}

// Belts checks a routing result against its problem.
//
// Checks, in order:
//  1. Per edge pair: summed lo − ε ≤ flow ≤ summed hi + ε.
//  2. Per capped node: total inflow ≤ cap + ε.
//  3. Conservation: each source nets −supply, the sink nets the total
//     supply, every other node nets zero.
//
// Flow never reported for a declared pair counts as zero; flow reported
// for an undeclared pair is a violation.
func Belts(p *belts.Problem, r *belts.Result, opts Options) []string {
	opts.normalize()
	eps := opts.Epsilon

	if r.Status != belts.StatusOK {
		return []string{fmt.Sprintf("result status is %q, not %q", r.Status, belts.StatusOK)}
	}

	var violations []string

	// Declared bounds per pair, keeping first-seen order for reporting.
	loSum := make(map[arcKey]float64)
	hiSum := make(map[arcKey]float64)
	var pairs []arcKey
	for _, e := range p.Edges {
		k := arcKey{e.From, e.To}
		if _, seen := loSum[k]; !seen {
			pairs = append(pairs, k)
		}
		loSum[k] += e.Lo
		hiSum[k] += e.Hi
	}

	flow := make(map[arcKey]float64, len(r.Flows))
	for _, f := range r.Flows {
		k := arcKey{f.From, f.To}
		if _, declared := loSum[k]; !declared {
			violations = append(violations,
				fmt.Sprintf("flow %g on undeclared edge %s -> %s", f.Flow, f.From, f.To))
			continue
		}
		flow[k] += f.Flow
	}

	netFlow := make(map[string]float64)
	for _, k := range pairs {
		f := flow[k]
		netFlow[k.from] -= f
		netFlow[k.to] += f

		if f < loSum[k]-eps {
			violations = append(violations,
				fmt.Sprintf("edge %s -> %s violates lower bound: flow %g, min %g", k.from, k.to, f, loSum[k]))
		}
		if f > hiSum[k]+eps {
			violations = append(violations,
				fmt.Sprintf("edge %s -> %s violates upper bound: flow %g, max %g", k.from, k.to, f, hiSum[k]))
		}
	}

	for _, node := range sortedKeys(p.NodeCaps) {
		inflow := 0.0
		for _, k := range pairs {
			if k.to == node {
				inflow += flow[k]
			}
		}
		if cap := p.NodeCaps[node]; inflow > cap+eps {
			violations = append(violations,
				fmt.Sprintf("node %q cap exceeded: inflow %g, cap %g", node, inflow, cap))
		}
	}

	totalSupply := 0.0
	for node, supply := range p.Sources {
		totalSupply += supply
		netFlow[node] += 0 // a source no edge touches still must balance
	}
	netFlow[p.Sink] += 0

	for _, node := range sortedKeys(netFlow) {
		net := netFlow[node]
		switch supply, isSource := p.Sources[node]; {
		case isSource:
			if math.Abs(net+supply) > eps {
				violations = append(violations,
					fmt.Sprintf("source %q mismatch: net flow %g, expected %g", node, net, -supply))
			}
		case node == p.Sink:
			if math.Abs(net-totalSupply) > eps {
				violations = append(violations,
					fmt.Sprintf("sink %q mismatch: net flow %g, expected %g", node, net, totalSupply))
			}
		default:
			if math.Abs(net) > eps {
				violations = append(violations,
					fmt.Sprintf("node %q not conserved: net flow %g", node, net))
			}
		}
	}

	return violations
}

// sortedKeys returns m's keys in lexical order for deterministic reports.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
