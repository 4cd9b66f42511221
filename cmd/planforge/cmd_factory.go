package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/planforge/planforge/factory"
)

var factoryCmd = &cobra.Command{
	Use:   "factory [problem-file]",
	Short: "Solve a factory production-planning problem",
	Long: `Reads a production problem (machines, recipes, module effects,
limits, target) from a JSON or YAML document and prints the result
document: "ok" with per-recipe rates, machine counts and raw draw, or
"infeasible" with the maximum achievable target rate.

Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFactory,
}

func runFactory(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	var p factory.Problem
	if err := readDocument(path, &p); err != nil {
		return emitError(err)
	}

	logger.Debug("solving factory problem",
		zap.Int("recipes", len(p.Recipes)),
		zap.String("target", p.Target.Item),
		zap.Float64("rate_per_min", p.Target.RatePerMin))

	res, err := factory.Solve(&p, factory.DefaultOptions())
	if err != nil {
		return emitError(err)
	}

	return emit(res)
}
