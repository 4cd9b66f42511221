package maxflow

import "sort"

// Result holds the outcome of a max-flow computation. It retains the
// original and residual capacity maps so callers can reconstruct per-arc
// flows and min-cut reachability without re-running the solver.
type Result struct {
	// MaxFlow is the total flow value pushed from source to sink.
	MaxFlow float64

	source, sink string
	epsilon      float64
	flows        map[string]map[string]float64
	residual     map[string]map[string]float64
}

// Flow returns the net flow carried by the arc from→to, clamped at zero
// when the pair ended up carrying net reverse flow. Parallel input arcs
// were aggregated, so this is the flow of the whole ordered pair.
func (r *Result) Flow(from, to string) float64 {
	net := r.flows[from][to]
	if net < 0 {
		return 0
	}

	return net
}

// SourceSide returns the vertices reachable from the source in the residual
// graph, sorted. After a maximum flow this is the source side of a minimum
// cut, which is exactly the bottleneck diagnosis an infeasible circulation
// needs.
func (r *Result) SourceSide() []string {
	seen := map[string]bool{r.source: true}
	queue := []string{r.source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for v, capUV := range r.residual[u] {
			if capUV > r.epsilon && !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
