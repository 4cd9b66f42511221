package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/planforge/planforge/belts"
	"github.com/planforge/planforge/factory"
	"github.com/planforge/planforge/verify"
)

// verdictDoc is the verification answer.
type verdictDoc struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a solver result against its problem",
	Long: `Independently re-derives every constraint from the problem document
and checks the result document against it. Prints a verdict document with
the list of violations (empty when the result is consistent).`,
}

var verifyBeltsCmd = &cobra.Command{
	Use:   "belts <problem-file> <result-file>",
	Short: "Check a belt-routing result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p belts.Problem
		if err := readDocument(args[0], &p); err != nil {
			return emitError(err)
		}
		var r belts.Result
		if err := readDocument(args[1], &r); err != nil {
			return emitError(err)
		}

		violations := verify.Belts(&p, &r, verify.DefaultOptions())
		logger.Debug("belts verification done", zap.Int("violations", len(violations)))

		return emit(verdict(violations))
	},
}

var verifyFactoryCmd = &cobra.Command{
	Use:   "factory <problem-file> <result-file>",
	Short: "Check a production-planning result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p factory.Problem
		if err := readDocument(args[0], &p); err != nil {
			return emitError(err)
		}
		var r factory.Result
		if err := readDocument(args[1], &r); err != nil {
			return emitError(err)
		}

		violations := verify.Factory(&p, &r, verify.DefaultOptions())
		logger.Debug("factory verification done", zap.Int("violations", len(violations)))

		return emit(verdict(violations))
	},
}

func verdict(violations []string) verdictDoc {
	if violations == nil {
		violations = []string{}
	}

	return verdictDoc{Valid: len(violations) == 0, Violations: violations}
}

func init() {
	verifyCmd.AddCommand(verifyBeltsCmd)
	verifyCmd.AddCommand(verifyFactoryCmd)
}
