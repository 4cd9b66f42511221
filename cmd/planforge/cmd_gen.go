package main

import (
	"github.com/spf13/cobra"

	"github.com/planforge/planforge/probgen"
)

var genSeed int64

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random, reproducible problem document",
	Long: `Generates a randomized problem biased toward feasibility and prints
it as a JSON document. The same seed always yields the same problem.`,
}

var genBeltsCmd = &cobra.Command{
	Use:   "belts",
	Short: "Generate a belt-routing problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(probgen.Belts(genSeed))
	},
}

var genFactoryCmd = &cobra.Command{
	Use:   "factory",
	Short: "Generate a production-planning problem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return emit(probgen.Factory(genSeed))
	},
}

func init() {
	genCmd.PersistentFlags().Int64Var(&genSeed, "seed", 1, "generation seed")
	genCmd.AddCommand(genBeltsCmd)
	genCmd.AddCommand(genFactoryCmd)
}
