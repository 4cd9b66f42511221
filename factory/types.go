package factory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/planforge/planforge/numeric"
)

// ErrInvalidProblem wraps structural validation failures
// (negative rates, quantities or caps; recipes without a machine).
var ErrInvalidProblem = errors.New("factory: invalid problem")

// ErrMissingTarget is returned when the problem names no target item.
var ErrMissingTarget = errors.New("factory: problem has no target item")

// ErrUnknownMachine is returned when a recipe references an undeclared machine.
var ErrUnknownMachine = errors.New("factory: recipe references unknown machine")

// ErrTargetNotProduced is returned when no recipe outputs the target item,
// so no crafting mix could ever satisfy the request.
var ErrTargetNotProduced = errors.New("factory: no recipe produces the target item")

// BottleneckHintGeneric is the diagnostic attached to every infeasible
// production result. Constraint-level attribution (which cap binds) is
// deliberately not attempted.
const BottleneckHintGeneric = "Review machine or raw material caps"

// Machine is a crafting station with a base speed in crafts per minute.
type Machine struct {
	CraftsPerMin float64 `json:"crafts_per_min" validate:"gte=0"`
}

// ModuleEffects are the multipliers installed on one machine type.
// Speed scales throughput; Prod scales output quantities only — module
// effects never alter input consumption.
type ModuleEffects struct {
	Speed float64 `json:"speed"`
	Prod  float64 `json:"prod"`
}

// Recipe crafts Out from In on one machine type in TimeS seconds.
// A non-positive TimeS denotes a degenerate, instantaneous recipe.
type Recipe struct {
	Machine string             `json:"machine" validate:"required"`
	TimeS   float64            `json:"time_s"`
	In      map[string]float64 `json:"in,omitempty" validate:"dive,gte=0"`
	Out     map[string]float64 `json:"out,omitempty" validate:"dive,gte=0"`
}

// Limits caps external raw-item supply and machine counts. Items listed in
// RawSupplyPerMin are the raw items: they may be consumed up to their cap
// and never manufactured. Machines listed in MaxMachines bound the
// continuous machine count Σ rate/effective-rate.
type Limits struct {
	RawSupplyPerMin map[string]float64 `json:"raw_supply_per_min,omitempty" validate:"dive,gte=0"`
	MaxMachines     map[string]float64 `json:"max_machines,omitempty" validate:"dive,gte=0"`
}

// Target is the single optimized output: produce Item at RatePerMin.
type Target struct {
	Item       string  `json:"item"`
	RatePerMin float64 `json:"rate_per_min" validate:"gte=0"`
}

// Problem is a complete production-planning request.
type Problem struct {
	Machines map[string]Machine       `json:"machines" validate:"dive"`
	Recipes  map[string]Recipe        `json:"recipes" validate:"dive"`
	Modules  map[string]ModuleEffects `json:"modules,omitempty"`
	Limits   Limits                   `json:"limits"`
	Target   Target                   `json:"target"`
}

// problemValidator holds the struct-tag rules shared by all Solve calls.
// The instance is configuration-only and safe for concurrent use.
var problemValidator = validator.New()

// Validate checks the problem for structural defects. All defects are
// ModelBuildError-class: fatal for the request, never retried.
func (p *Problem) Validate() error {
	if p.Target.Item == "" {
		return ErrMissingTarget
	}
	if err := problemValidator.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	produced := false
	for name, r := range p.Recipes {
		if _, ok := p.Machines[r.Machine]; !ok {
			return fmt.Errorf("%w: recipe %q wants machine %q", ErrUnknownMachine, name, r.Machine)
		}
		if _, ok := r.Out[p.Target.Item]; ok {
			produced = true
		}
	}
	if !produced {
		return fmt.Errorf("%w: %q", ErrTargetNotProduced, p.Target.Item)
	}

	return nil
}

// Status tags the outcome of a solve.
type Status string

const (
	// StatusOK marks a plan meeting the target rate exactly.
	StatusOK Status = "ok"
	// StatusInfeasible marks a target rate the constraints cannot support.
	StatusInfeasible Status = "infeasible"
)

// Result is the interpreted outcome of a factory solve.
//
// StatusOK populates the three per-entity maps. StatusInfeasible populates
// MaxFeasibleTargetPerMin (the secondary solve's best achievable rate,
// possibly zero) and BottleneckHint.
type Result struct {
	Status                  Status
	PerRecipeCraftsPerMin   map[string]float64
	PerMachineCounts        map[string]float64
	RawConsumptionPerMin    map[string]float64
	MaxFeasibleTargetPerMin float64
	BottleneckHint          []string
}

// MarshalJSON emits the canonical result document: exactly the fields
// meaningful for the status, never a partial mix.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Status == StatusOK {
		return json.Marshal(struct {
			Status                Status             `json:"status"`
			PerRecipeCraftsPerMin map[string]float64 `json:"per_recipe_crafts_per_min"`
			PerMachineCounts      map[string]float64 `json:"per_machine_counts"`
			RawConsumptionPerMin  map[string]float64 `json:"raw_consumption_per_min"`
		}{r.Status, orEmpty(r.PerRecipeCraftsPerMin), orEmpty(r.PerMachineCounts), orEmpty(r.RawConsumptionPerMin)})
	}

	hint := r.BottleneckHint
	if hint == nil {
		hint = []string{BottleneckHintGeneric}
	}

	return json.Marshal(struct {
		Status                  Status   `json:"status"`
		MaxFeasibleTargetPerMin float64  `json:"max_feasible_target_per_min"`
		BottleneckHint          []string `json:"bottleneck_hint"`
	}{r.Status, r.MaxFeasibleTargetPerMin, hint})
}

// UnmarshalJSON reads back either of the canonical result documents.
func (r *Result) UnmarshalJSON(data []byte) error {
	var doc struct {
		Status                  Status             `json:"status"`
		PerRecipeCraftsPerMin   map[string]float64 `json:"per_recipe_crafts_per_min"`
		PerMachineCounts        map[string]float64 `json:"per_machine_counts"`
		RawConsumptionPerMin    map[string]float64 `json:"raw_consumption_per_min"`
		MaxFeasibleTargetPerMin float64            `json:"max_feasible_target_per_min"`
		BottleneckHint          []string           `json:"bottleneck_hint"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Result(doc)

	return nil
}

func orEmpty(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}

	return m
}

// Options configures a Solve call.
//   - Ctx: checked between the primary and secondary LP solves.
//   - Epsilon: absolute tolerance for classification and reporting.
//   - LPTol: simplex optimality tolerance; 0 selects the solver default.
type Options struct {
	Ctx     context.Context
	Epsilon float64
	LPTol   float64
}

// DefaultOptions returns production-safe defaults
// (Background context, epsilon 1e-9, solver-default LP tolerance).
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
