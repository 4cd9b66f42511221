package belts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/planforge/planforge/maxflow"
	"github.com/planforge/planforge/numeric"
)

// Solve decides feasibility of a bounded-flow problem.
//
// The pipeline is Model Builder → max-flow solve → Result Interpreter:
// validate the input, reduce it to a super-source/super-sink circulation,
// run Dinic, and read the answer back in terms of the original network.
//
// Errors are ModelBuildError-class validation failures or solver failures
// (including context cancellation); infeasibility and unboundedness are not
// errors but Result variants.
func Solve(p *Problem, opts Options) (*Result, error) {
	opts.normalize()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	model, err := buildFlowModel(p, opts.Epsilon)
	if err != nil {
		return nil, fmt.Errorf("belts: building flow model: %w", err)
	}

	res, err := maxflow.Dinic(model.net, superSource, superSink, maxflow.Options{
		Ctx:     opts.Ctx,
		Epsilon: opts.Epsilon,
	})
	if errors.Is(err, maxflow.ErrUnbounded) {
		// No finite circulation bound exists; no deficit is meaningful.
		return &Result{Status: StatusInfeasible, Unbounded: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("belts: max-flow solve: %w", err)
	}

	if numeric.EqualWithin(res.MaxFlow, model.demand, opts.Epsilon) {
		return interpretFeasible(model, res, opts.Epsilon), nil
	}

	return interpretInfeasible(model, res), nil
}

// interpretFeasible reconstructs true edge flows from the residual problem.
// Parallel edges between the same pair shared one aggregated arc, so the
// pair's flow is apportioned across them in input order, each edge taking
// at most its residual range before the next one fills.
func interpretFeasible(model *flowModel, res *maxflow.Result, eps float64) *Result {
	type pair struct{ from, to string }
	pairFlow := make(map[pair]float64, len(model.arcs))
	for i := range model.arcs {
		a := &model.arcs[i]
		key := pair{a.from, a.to}
		if _, seen := pairFlow[key]; !seen {
			pairFlow[key] = res.Flow(a.from, a.to)
		}
	}

	flows := make([]EdgeFlow, 0, len(model.arcs))
	for i := range model.arcs {
		a := &model.arcs[i]
		key := pair{a.from, a.to}
		take := pairFlow[key]
		if take > a.residual {
			take = a.residual
		}
		pairFlow[key] -= take

		total := take + a.edge.Lo
		if numeric.Positive(total, eps) {
			flows = append(flows, EdgeFlow{From: a.edge.From, To: a.edge.To, Flow: total})
		}
	}

	// A feasible circulation redistributes all pre-routed flow plus every
	// unit of supply to the sink, so the overall max flow is the supply.
	return &Result{
		Status:        StatusOK,
		MaxFlowPerMin: model.totalSupply,
		Flows:         flows,
	}
}

// interpretInfeasible folds the min-cut reachable side back to original
// node identifiers and reports the routing deficit.
func interpretInfeasible(model *flowModel, res *maxflow.Result) *Result {
	seen := make(map[string]bool)
	cut := make([]string, 0)
	for _, v := range res.SourceSide() {
		orig, ok := model.fold[v]
		if !ok || seen[orig] {
			continue // super vertices have no original counterpart
		}
		seen[orig] = true
		cut = append(cut, orig)
	}
	sort.Strings(cut)

	return &Result{
		Status:       StatusInfeasible,
		CutReachable: cut,
		Deficit:      &Deficit{DemandBalance: model.demand - res.MaxFlow},
	}
}
