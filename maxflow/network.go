package maxflow

import "sort"

// Network is a directed capacity graph over string vertex identifiers.
// Parallel arcs between the same ordered pair are aggregated into a single
// capacity; self-loops carry no flow and are dropped on insertion.
// The zero value is not usable; construct with NewNetwork.
type Network struct {
	caps map[string]map[string]float64
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{caps: make(map[string]map[string]float64)}
}

// AddVertex ensures the vertex exists, with no incident arcs.
// Adding an existing vertex is a no-op.
func (n *Network) AddVertex(id string) {
	if _, ok := n.caps[id]; !ok {
		n.caps[id] = make(map[string]float64)
	}
}

// AddArc adds capacity c on the arc from→to, aggregating with any capacity
// already present. Negative capacities are rejected with an ArcError.
// Self-loops are ignored. math.Inf(1) marks an uncapped arc.
func (n *Network) AddArc(from, to string, c float64) error {
	if c < 0 {
		return ArcError{From: from, To: to, Cap: c}
	}
	n.AddVertex(from)
	n.AddVertex(to)
	if from == to {
		return nil
	}
	n.caps[from][to] += c

	return nil
}

// HasVertex reports whether id is a vertex of the network.
func (n *Network) HasVertex(id string) bool {
	_, ok := n.caps[id]

	return ok
}

// Capacity returns the aggregated capacity on the arc from→to,
// or 0 when no such arc exists.
func (n *Network) Capacity(from, to string) float64 {
	return n.caps[from][to]
}

// Vertices returns all vertex identifiers in sorted order.
func (n *Network) Vertices() []string {
	out := make([]string, 0, len(n.caps))
	for id := range n.caps {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// cloneCaps deep-copies the capacity map, filtering entries ≤ eps.
// Dinic mutates the copy, keeping the Network itself reusable.
func (n *Network) cloneCaps(eps float64) map[string]map[string]float64 {
	capMap := make(map[string]map[string]float64, len(n.caps))
	for u := range n.caps {
		capMap[u] = make(map[string]float64, len(n.caps[u]))
	}
	for u, nbrs := range n.caps {
		for v, c := range nbrs {
			if c > eps {
				capMap[u][v] = c
			}
		}
	}

	return capMap
}
