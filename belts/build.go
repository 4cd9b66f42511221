package belts

import (
	"github.com/planforge/planforge/maxflow"
	"github.com/planforge/planforge/numeric"
)

// Internal identifiers of the augmented graph. Split halves and the two
// super vertices use the '#' marker, which never appears in reconstruction:
// the fold map, not string surgery, translates mapped identifiers back.
const (
	superSource = "#super-source"
	superSink   = "#super-sink"
	inSuffix    = "#in"
	outSuffix   = "#out"
)

// mappedArc links one original edge to its arc in the augmented network.
type mappedArc struct {
	edge     Edge
	from, to string  // mapped endpoints: out(edge.From) → in(edge.To)
	residual float64 // hi − lo, the capacity left after pre-routing lo
}

// flowModel is the output of the model-building phase: the augmented
// max-flow instance plus the bookkeeping needed to interpret its solution.
type flowModel struct {
	net  *maxflow.Network
	fold map[string]string // mapped identifier → original identifier
	arcs []mappedArc       // one entry per original edge, input order

	totalSupply float64 // sum of all source supplies
	demand      float64 // total demand imbalance the circulation must resolve
}

// buildFlowModel reduces a validated Problem to a plain max-flow instance.
//
// Steps (classical lower-bound elimination over a split-node graph):
//  1. Collect every node referenced by sources, sink or edge endpoints.
//  2. Split each capped non-source/non-sink node into an (in, out) pair
//     joined by a cap-limited arc; other nodes map to themselves.
//  3. Credit each source's supply to the balance of its out-mapped node;
//     debit the sink's in-mapped node by the total supply.
//  4. For each edge, add a residual arc of capacity hi−lo between the
//     mapped endpoints and shift lo through the endpoint balances.
//  5. Wire the super-source into every node with positive balance and every
//     node with negative balance into the super-sink; the sum of negative
//     magnitudes is the demand imbalance a feasible circulation must match.
func buildFlowModel(p *Problem, eps float64) (*flowModel, error) {
	m := &flowModel{
		net:  maxflow.NewNetwork(),
		fold: make(map[string]string),
		arcs: make([]mappedArc, 0, len(p.Edges)),
	}

	// 1) The node set is whatever the problem references.
	nodes := make(map[string]bool, len(p.Sources)+1)
	for node := range p.Sources {
		nodes[node] = true
	}
	nodes[p.Sink] = true
	for i := range p.Edges {
		nodes[p.Edges[i].From] = true
		nodes[p.Edges[i].To] = true
	}

	// 2) Node splitting. mapIn/mapOut give the vertex an edge enters/leaves.
	mapIn := make(map[string]string, len(nodes))
	mapOut := make(map[string]string, len(nodes))
	for node := range nodes {
		_, isSource := p.Sources[node]
		isSink := node == p.Sink
		nodeCap, capped := p.NodeCaps[node]

		if capped && !isSource && !isSink {
			in, out := node+inSuffix, node+outSuffix
			mapIn[node], mapOut[node] = in, out
			m.fold[in], m.fold[out] = node, node
			if err := m.net.AddArc(in, out, nodeCap); err != nil {
				return nil, err
			}
		} else {
			mapIn[node], mapOut[node] = node, node
			m.fold[node] = node
			m.net.AddVertex(node)
		}
	}

	balance := make(map[string]float64, len(nodes))

	// 3) Sources push supply into the system; the sink absorbs all of it.
	for node, supply := range p.Sources {
		balance[mapOut[node]] += supply
		m.totalSupply += supply
	}
	balance[mapIn[p.Sink]] -= m.totalSupply

	// 4) Lower-bound elimination per edge.
	for i := range p.Edges {
		e := p.Edges[i]
		from, to := mapOut[e.From], mapIn[e.To]
		if err := m.net.AddArc(from, to, e.Hi-e.Lo); err != nil {
			return nil, err
		}
		balance[from] -= e.Lo
		balance[to] += e.Lo
		m.arcs = append(m.arcs, mappedArc{edge: e, from: from, to: to, residual: e.Hi - e.Lo})
	}

	// 5) Super-source/super-sink circulation arcs.
	for _, v := range m.net.Vertices() {
		bal := balance[v]
		switch {
		case numeric.Positive(bal, eps):
			if err := m.net.AddArc(superSource, v, bal); err != nil {
				return nil, err
			}
		case numeric.Negative(bal, eps):
			if err := m.net.AddArc(v, superSink, -bal); err != nil {
				return nil, err
			}
			m.demand += -bal
		}
	}
	// Both super vertices must exist even in a degenerate balanced problem.
	m.net.AddVertex(superSource)
	m.net.AddVertex(superSink)

	return m, nil
}
