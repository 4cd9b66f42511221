package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/planforge/planforge/belts"
)

var beltsCmd = &cobra.Command{
	Use:   "belts [problem-file]",
	Short: "Solve a belt-routing feasibility problem",
	Long: `Reads a routing problem (edges with [lo,hi] bounds, node caps,
sources, sink) from a JSON or YAML document and prints the result
document: "ok" with per-edge flows, or "infeasible" with the bottleneck
cut and demand deficit.

Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBelts,
}

func runBelts(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	var p belts.Problem
	if err := readDocument(path, &p); err != nil {
		return emitError(err)
	}

	logger.Debug("solving belts problem",
		zap.Int("edges", len(p.Edges)),
		zap.Int("sources", len(p.Sources)),
		zap.String("sink", p.Sink))

	res, err := belts.Solve(&p, belts.DefaultOptions())
	if err != nil {
		return emitError(err)
	}

	return emit(res)
}
