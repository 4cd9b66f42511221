// Package maxflow computes maximum flows on directed capacity networks.
// It is the numeric collaborator consumed by the belts solver: given a
// Network with non-negative (possibly infinite) arc capacities and two
// distinguished vertices, it returns the maximum flow value, per-arc flow
// assignments, and the min-cut side needed for bottleneck diagnosis.
//
// The algorithm is Dinic's: BFS builds a level graph, DFS pushes blocking
// flows along it, repeated until the sink becomes unreachable.
//
//	Time:   O(E · √V) on unit-capacity networks, O(V² · E) worst case.
//	Memory: O(V + E) for the residual capacity map and level/iterator maps.
//
// # Network model
//
//   - Vertices are opaque string identifiers.
//   - Parallel arcs between the same ordered pair are aggregated.
//   - Self-loops are ignored.
//   - Capacities are float64; math.Inf(1) marks an uncapped arc. If an
//     augmenting path consists solely of uncapped arcs the problem is
//     unbounded and Dinic returns ErrUnbounded.
//   - Capacities at or below Options.Epsilon are treated as absent.
//
// # API
//
//	n := maxflow.NewNetwork()
//	n.AddArc("s", "a", 10)
//	n.AddArc("a", "t", 10)
//	res, err := maxflow.Dinic(n, "s", "t", maxflow.DefaultOptions())
//	// res.MaxFlow, res.Flow("s","a"), res.SourceSide()
//
// Options carries the cancellation context and the epsilon; DefaultOptions()
// returns production-safe defaults (Background context, 1e-9). Dinic never
// mutates the input Network, so a Network may be solved repeatedly or shared
// across goroutines as long as no AddArc runs concurrently.
//
// # Errors
//
//	ErrSourceNotFound — the source vertex is missing from the network.
//	ErrSinkNotFound   — the sink vertex is missing.
//	ErrUnbounded      — an augmenting path with infinite bottleneck exists.
//	ArcError          — an arc was added with negative capacity.
//	context.Canceled / context.DeadlineExceeded — Options.Ctx expired.
package maxflow
