package maxflow

import (
	"context"
	"math"
)

// Dinic computes the maximum flow from source to sink in network n using
// Dinic's algorithm (level graph + blocking flows).
//
// It returns a *Result carrying the flow value, per-pair flow lookups and
// the min-cut reachable side, or an error: ErrSourceNotFound,
// ErrSinkNotFound, ErrUnbounded, or a context cancellation error.
//
// Steps:
//  1. Normalize options and snapshot the capacity map (O(V + E));
//     the input network is never mutated.
//  2. Validate that source and sink exist (O(1)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS from source to compute vertex levels (O(V + E)).
//     c. Build the level-graph adjacency next[u] (O(E)).
//     d. DFS-push blocking flows until none remains, optionally
//     rebuilding the level graph every LevelRebuildInterval pushes.
//     A push with infinite bottleneck aborts with ErrUnbounded.
//  4. Wrap the residual map into a Result for interpretation.
func Dinic(n *Network, source, sink string, opts Options) (*Result, error) {
	// 1) Normalize options and copy capacities so n stays intact.
	opts.normalize()
	ctx := opts.Ctx

	// 2) Validate presence of source and sink.
	if !n.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !n.HasVertex(sink) {
		return nil, ErrSinkNotFound
	}

	capMap := n.cloneCaps(opts.Epsilon)

	// flowMap tracks net flow per ordered pair. Kept separately from the
	// residual capacities so that uncapped (+Inf) arcs still yield exact
	// per-arc flows.
	flowMap := make(map[string]map[string]float64, len(capMap))
	for u := range capMap {
		flowMap[u] = make(map[string]float64)
	}

	// 3) Main loop: level graph + blocking flows.
	var maxFlow float64
	augmentCount := 0
	for {
		// 3a) Cancellation check before BFS.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 3b) BFS to compute levels.
		level := make(map[string]int, len(capMap))
		for u := range capMap {
			level[u] = -1
		}
		queue := []string{source}
		level[source] = 0
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for v, capUV := range capMap[u] {
				if capUV > opts.Epsilon && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		// Sink unreachable in the level graph: maximum flow reached.
		if level[sink] < 0 {
			break
		}

		// 3c) Level-graph adjacency: next[u] holds neighbors one level deeper.
		next := make(map[string][]string, len(capMap))
		for u, nbrs := range capMap {
			for v, capUV := range nbrs {
				if capUV > opts.Epsilon && level[v] == level[u]+1 {
					next[u] = append(next[u], v)
				}
			}
		}

		// 3d) DFS-based blocking flow.
		iter := make(map[string]int, len(next))
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pushed := dfsPush(ctx, capMap, flowMap, next, iter, source, sink, math.Inf(1), opts.Epsilon)
			if math.IsInf(pushed, 1) {
				// Every arc on the augmenting path was uncapped.
				return nil, ErrUnbounded
			}
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 4) Package the residual state for interpretation.
	return &Result{
		MaxFlow:  maxFlow,
		source:   source,
		sink:     sink,
		epsilon:  opts.Epsilon,
		flows:    flowMap,
		residual: capMap,
	}, nil
}

// dfsPush recursively pushes flow along the level graph, updating capMap and
// flowMap in place, and returns the amount actually sent. The iter map
// implements the standard current-arc optimization so each arc is scanned
// once per blocking-flow phase.
func dfsPush(
	ctx context.Context,
	capMap, flowMap map[string]map[string]float64,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available float64,
	eps float64,
) float64 {
	if err := ctx.Err(); err != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		iter[u] = i + 1
		v := next[u][i]
		capUV := capMap[u][v]
		if capUV <= eps {
			continue
		}
		send := available
		if capUV < send {
			send = capUV
		}
		pushed := dfsPush(ctx, capMap, flowMap, next, iter, v, sink, send, eps)
		if pushed > 0 {
			capMap[u][v] -= pushed
			capMap[v][u] += pushed
			flowMap[u][v] += pushed
			flowMap[v][u] -= pushed

			return pushed
		}
	}

	return 0
}
