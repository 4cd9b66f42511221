// Command planforge solves logistics routing and production planning
// problems from JSON or YAML documents.
//
// Request-level failures (malformed documents, impossible models, solver
// breakdowns) are reported as an error document on stdout with exit code 0:
// a request that cannot be answered is still an answered request. Only
// usage errors exit non-zero.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "planforge",
	Short: "Batch solvers for belt routing and factory production planning",
	Long: `planforge answers two kinds of questions about item logistics:

  belts    can the network route all supply to the sink within belt
           bounds and node caps? (max-flow with lower bounds)
  factory  which recipes, at what rates, hit a target output within raw
           and machine limits? (linear programming)

Problems are single JSON or YAML documents read from a file or stdin;
answers are single JSON documents on stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(beltsCmd)
	rootCmd.AddCommand(factoryCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(genCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
