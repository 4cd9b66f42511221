package belts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/planforge/planforge/numeric"
)

// Uncapped is the Hi value of an edge with no upper throughput bound.
// JSON input reaches it by omitting the "hi" field.
var Uncapped = math.Inf(1)

// ErrMissingSink is returned when the problem declares no sink node.
var ErrMissingSink = errors.New("belts: problem has no sink")

// ErrBadBounds is returned when an edge declares lo > hi.
var ErrBadBounds = errors.New("belts: edge lower bound exceeds upper bound")

// ErrInvalidProblem wraps structural validation failures
// (negative supplies, caps, or bounds; missing edge endpoints).
var ErrInvalidProblem = errors.New("belts: invalid problem")

// Edge is a directed belt segment from From to To carrying at least Lo and
// at most Hi units per minute. Hi defaults to +Inf (uncapped) when absent
// from the input document. Multiple edges between the same pair are
// permitted and independent.
type Edge struct {
	From string  `json:"from" validate:"required"`
	To   string  `json:"to" validate:"required"`
	Lo   float64 `json:"lo" validate:"gte=0"`
	Hi   float64 `json:"hi"`
}

// edgeDoc is the wire shape of Edge; a missing "hi" means uncapped.
type edgeDoc struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Lo   float64  `json:"lo"`
	Hi   *float64 `json:"hi,omitempty"`
}

// UnmarshalJSON decodes an edge, defaulting Hi to +Inf when absent.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var doc edgeDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	e.From, e.To, e.Lo = doc.From, doc.To, doc.Lo
	if doc.Hi != nil {
		e.Hi = *doc.Hi
	} else {
		e.Hi = math.Inf(1)
	}

	return nil
}

// MarshalJSON encodes an edge, omitting "hi" when the edge is uncapped
// (JSON has no representation for +Inf).
func (e Edge) MarshalJSON() ([]byte, error) {
	doc := edgeDoc{From: e.From, To: e.To, Lo: e.Lo}
	if !numeric.Unbounded(e.Hi) {
		hi := e.Hi
		doc.Hi = &hi
	}

	return json.Marshal(doc)
}

// Problem is a bounded-flow feasibility question: can every source's supply
// reach the sink while every edge carries at least its lower bound and no
// node exceeds its cap?
//
// Node identifiers are opaque strings; the node set is the union of
// everything referenced by Sources, Sink and edge endpoints (the optional
// Nodes list is informational only). Caps on source or sink nodes are
// meaningless and ignored.
type Problem struct {
	Nodes    []string           `json:"nodes,omitempty"`
	Edges    []Edge             `json:"edges" validate:"dive"`
	NodeCaps map[string]float64 `json:"node_caps,omitempty" validate:"dive,gte=0"`
	Sources  map[string]float64 `json:"sources,omitempty" validate:"dive,gte=0"`
	Sink     string             `json:"sink"`
}

// problemValidator holds the struct-tag rules shared by all Solve calls.
// The instance is configuration-only and safe for concurrent use.
var problemValidator = validator.New()

// Validate checks the problem for structural defects: a missing sink,
// negative supplies, caps or lower bounds, edges without endpoints, and
// edges with lo > hi. All defects are ModelBuildError-class: fatal for the
// request, never retried.
func (p *Problem) Validate() error {
	if p.Sink == "" {
		return ErrMissingSink
	}
	if err := problemValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	for i := range p.Edges {
		e := &p.Edges[i]
		if e.Lo > e.Hi {
			return fmt.Errorf("%w: edge %q→%q lo=%g hi=%g", ErrBadBounds, e.From, e.To, e.Lo, e.Hi)
		}
	}

	return nil
}

// Status tags the outcome of a solve.
type Status string

const (
	// StatusOK marks a feasible problem with a full flow assignment.
	StatusOK Status = "ok"
	// StatusInfeasible marks a problem whose mandatory flow cannot be routed.
	StatusInfeasible Status = "infeasible"
)

// EdgeFlow reports the flow carried by one original edge in a feasible solution.
type EdgeFlow struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Flow float64 `json:"flow"`
}

// Deficit quantifies an infeasibility: how much of the mandatory demand
// imbalance the network failed to route.
type Deficit struct {
	DemandBalance float64 `json:"demand_balance"`
}

// Result is the interpreted outcome of a belts solve.
//
// StatusOK populates MaxFlowPerMin and Flows. StatusInfeasible populates
// either Unbounded (no finite circulation bound exists; no deficit is
// meaningful) or CutReachable and Deficit.
type Result struct {
	Status        Status
	MaxFlowPerMin float64
	Flows         []EdgeFlow
	CutReachable  []string
	Deficit       *Deficit
	Unbounded     bool
}

// MarshalJSON emits the canonical result document: exactly the fields
// meaningful for the status, never a partial mix.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Status == StatusOK {
		flows := r.Flows
		if flows == nil {
			flows = []EdgeFlow{}
		}

		return json.Marshal(struct {
			Status        Status     `json:"status"`
			MaxFlowPerMin float64    `json:"max_flow_per_min"`
			Flows         []EdgeFlow `json:"flows"`
		}{r.Status, r.MaxFlowPerMin, flows})
	}

	if r.Unbounded {
		return json.Marshal(struct {
			Status    Status `json:"status"`
			Unbounded bool   `json:"unbounded"`
		}{r.Status, true})
	}

	cut := r.CutReachable
	if cut == nil {
		cut = []string{}
	}

	return json.Marshal(struct {
		Status       Status   `json:"status"`
		CutReachable []string `json:"cut_reachable"`
		Deficit      *Deficit `json:"deficit"`
	}{r.Status, cut, r.Deficit})
}

// UnmarshalJSON reads back any of the canonical result documents.
func (r *Result) UnmarshalJSON(data []byte) error {
	var doc struct {
		Status        Status     `json:"status"`
		MaxFlowPerMin float64    `json:"max_flow_per_min"`
		Flows         []EdgeFlow `json:"flows"`
		CutReachable  []string   `json:"cut_reachable"`
		Deficit       *Deficit   `json:"deficit"`
		Unbounded     bool       `json:"unbounded"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Result(doc)

	return nil
}

// Options configures a Solve call.
//   - Ctx: cancellation / deadline passed through to the max-flow solver.
//   - Epsilon: absolute tolerance for every feasibility comparison.
type Options struct {
	Ctx     context.Context
	Epsilon float64
}

// DefaultOptions returns production-safe defaults
// (Background context, epsilon 1e-9).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: numeric.DefaultEpsilon,
	}
}

// normalize fills zero-valued fields with their defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = numeric.DefaultEpsilon
	}
}
