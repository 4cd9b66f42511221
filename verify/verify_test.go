package verify_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/planforge/planforge/belts"
	"github.com/planforge/planforge/factory"
	"github.com/planforge/planforge/verify"
)

// VerifySuite covers both checkers against hand-built results: clean
// plans pass, and each class of violation produces a report.
type VerifySuite struct {
	suite.Suite
}

func beltsProblem() *belts.Problem {
	return &belts.Problem{
		Edges: []belts.Edge{
			{From: "s1", To: "a", Hi: 1000},
			{From: "a", To: "k1", Lo: 50, Hi: 1000},
		},
		NodeCaps: map[string]float64{"a": 500},
		Sources:  map[string]float64{"s1": 400},
		Sink:     "k1",
	}
}

// TestBeltsCleanResult accepts a conserved, in-bounds flow assignment.
func (s *VerifySuite) TestBeltsCleanResult() {
	r := &belts.Result{
		Status:        belts.StatusOK,
		MaxFlowPerMin: 400,
		Flows: []belts.EdgeFlow{
			{From: "s1", To: "a", Flow: 400},
			{From: "a", To: "k1", Flow: 400},
		},
	}
	require.Empty(s.T(), verify.Belts(beltsProblem(), r, verify.DefaultOptions()))
}

// TestBeltsSolverRoundTrip verifies what the solver itself produces.
func (s *VerifySuite) TestBeltsSolverRoundTrip() {
	p := beltsProblem()
	r, err := belts.Solve(p, belts.DefaultOptions())
	require.NoError(s.T(), err)
	require.Empty(s.T(), verify.Belts(p, r, verify.DefaultOptions()))
}

// TestBeltsViolations triggers one report per violated constraint class.
func (s *VerifySuite) TestBeltsViolations() {
	p := beltsProblem()

	// Lower bound broken on a -> k1, conservation broken at a and k1.
	r := &belts.Result{
		Status:        belts.StatusOK,
		MaxFlowPerMin: 400,
		Flows: []belts.EdgeFlow{
			{From: "s1", To: "a", Flow: 400},
			{From: "a", To: "k1", Flow: 10},
		},
	}
	violations := verify.Belts(p, r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "edge a -> k1 violates lower bound: flow 10, min 50")
	require.Contains(s.T(), violations, "node \"a\" not conserved: net flow 390")

	// Node cap exceeded.
	r = &belts.Result{
		Status:        belts.StatusOK,
		MaxFlowPerMin: 600,
		Flows: []belts.EdgeFlow{
			{From: "s1", To: "a", Flow: 600},
			{From: "a", To: "k1", Flow: 600},
		},
	}
	p.Sources["s1"] = 600
	violations = verify.Belts(p, r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "node \"a\" cap exceeded: inflow 600, cap 500")

	// Flow on an edge the problem never declared.
	r = &belts.Result{
		Status: belts.StatusOK,
		Flows:  []belts.EdgeFlow{{From: "x", To: "y", Flow: 5}},
	}
	violations = verify.Belts(beltsProblem(), r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "flow 5 on undeclared edge x -> y")
}

// TestBeltsNonOKStatus reports a single status violation and stops.
func (s *VerifySuite) TestBeltsNonOKStatus() {
	r := &belts.Result{Status: belts.StatusInfeasible}
	violations := verify.Belts(beltsProblem(), r, verify.DefaultOptions())
	require.Len(s.T(), violations, 1)
}

// TestBeltsParallelEdgesAggregated sums bounds and flows per node pair.
func (s *VerifySuite) TestBeltsParallelEdgesAggregated() {
	p := &belts.Problem{
		Edges: []belts.Edge{
			{From: "s", To: "k", Hi: 10},
			{From: "s", To: "k", Hi: 10},
		},
		Sources: map[string]float64{"s": 15},
		Sink:    "k",
	}
	r := &belts.Result{
		Status:        belts.StatusOK,
		MaxFlowPerMin: 15,
		Flows: []belts.EdgeFlow{
			{From: "s", To: "k", Flow: 10},
			{From: "s", To: "k", Flow: 5},
		},
	}
	require.Empty(s.T(), verify.Belts(p, r, verify.DefaultOptions()))
}

func factoryProblem() *factory.Problem {
	return &factory.Problem{
		Machines: map[string]factory.Machine{"asm": {CraftsPerMin: 30}},
		Recipes: map[string]factory.Recipe{
			"plate": {
				Machine: "asm", TimeS: 1,
				In:  map[string]float64{"ore": 2},
				Out: map[string]float64{"plate": 1},
			},
		},
		Limits: factory.Limits{
			RawSupplyPerMin: map[string]float64{"ore": 100},
			MaxMachines:     map[string]float64{"asm": 1},
		},
		Target: factory.Target{Item: "plate", RatePerMin: 40},
	}
}

// TestFactorySolverRoundTrip verifies what the solver itself produces.
func (s *VerifySuite) TestFactorySolverRoundTrip() {
	p := factoryProblem()
	r, err := factory.Solve(p, factory.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), factory.StatusOK, r.Status)
	require.Empty(s.T(), verify.Factory(p, r, verify.DefaultOptions()))
}

// TestFactoryViolations triggers each factory violation class.
func (s *VerifySuite) TestFactoryViolations() {
	p := factoryProblem()

	// Target under-produced.
	r := &factory.Result{
		Status:                factory.StatusOK,
		PerRecipeCraftsPerMin: map[string]float64{"plate": 30},
		PerMachineCounts:      map[string]float64{"asm": 30.0 / 1800.0},
		RawConsumptionPerMin:  map[string]float64{"ore": 60},
	}
	violations := verify.Factory(p, r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "target \"plate\" mismatch: net 30, expected 40")

	// Raw cap exceeded (both the balance-derived draw and the report).
	p.Limits.RawSupplyPerMin["ore"] = 50
	r = &factory.Result{
		Status:                factory.StatusOK,
		PerRecipeCraftsPerMin: map[string]float64{"plate": 40},
		PerMachineCounts:      map[string]float64{"asm": 40.0 / 1800.0},
		RawConsumptionPerMin:  map[string]float64{"ore": 80},
	}
	violations = verify.Factory(p, r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "raw item \"ore\" cap exceeded: used 80, cap 50")

	// Machine cap exceeded.
	p = factoryProblem()
	p.Limits.MaxMachines["asm"] = 0.01
	r = &factory.Result{
		Status:                factory.StatusOK,
		PerRecipeCraftsPerMin: map[string]float64{"plate": 40},
		PerMachineCounts:      map[string]float64{"asm": 40.0 / 1800.0},
		RawConsumptionPerMin:  map[string]float64{"ore": 80},
	}
	violations = verify.Factory(p, r, verify.DefaultOptions())
	require.Contains(s.T(), violations, "machine \"asm\" cap exceeded: used 0.022222222222222223, cap 0.01")
}

// TestFactoryProductivityInBalance confirms the checker re-derives module
// effects instead of trusting the solver.
func (s *VerifySuite) TestFactoryProductivityInBalance() {
	p := factoryProblem()
	p.Modules = map[string]factory.ModuleEffects{"asm": {Prod: 0.25}}

	// 32 crafts × 1.25 = 40 plates/min, drawing 64 ore/min.
	r := &factory.Result{
		Status:                factory.StatusOK,
		PerRecipeCraftsPerMin: map[string]float64{"plate": 32},
		PerMachineCounts:      map[string]float64{"asm": 32.0 / 1800.0},
		RawConsumptionPerMin:  map[string]float64{"ore": 64},
	}
	require.Empty(s.T(), verify.Factory(p, r, verify.DefaultOptions()))
}

// Entry point for running the suite.
func TestVerifySuite(t *testing.T) {
	suite.Run(t, new(VerifySuite))
}
