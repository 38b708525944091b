package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZAXBIE/vacplan/internal/logging"
	"github.com/ZAXBIE/vacplan/search"
	"github.com/ZAXBIE/vacplan/world"
)

// Algorithm names accepted as the first argument.
const (
	algoDepthFirst  = "depth-first"
	algoUniformCost = "uniform-cost"
)

var rootCmd = &cobra.Command{
	Use:   "planner <algorithm> <world-file>",
	Short: "Plan a vacuum route through a grid world",
	Long: `planner parses a grid world file and searches it for a sequence of
moves and vacuum actions that clears every dirty cell.

The algorithm argument selects the strategy:

  depth-first   stack search; finds a plan, not necessarily a shortest one
  uniform-cost  cost-ordered search; every action costs 1, the plan is shortest

On success the plan is printed one action label per line (N, S, E, W, V),
followed by the generated and expanded counters. A world with no solution
produces no output and still exits 0.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlanner,
}

// newLogger builds the process logger, filtered by PLANNER_LOG_LEVEL.
// Command tests swap it for a silent logger.
var newLogger = func() *slog.Logger {
	return logging.New(logging.ParseLevel(os.Getenv("PLANNER_LOG_LEVEL"), slog.LevelWarn))
}

// Execute runs the root command and maps failure to a non-zero exit.
// Cobra already printed the error by the time Execute returns it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlanner(cmd *cobra.Command, args []string) error {
	algorithm, path := args[0], args[1]

	var strategy func(*world.World, search.State, ...search.Option) (*search.Result, error)
	switch algorithm {
	case algoDepthFirst:
		strategy = search.DepthFirst
	case algoUniformCost:
		strategy = search.UniformCost
	default:
		return fmt.Errorf("unknown algorithm %q (want %q or %q)", algorithm, algoDepthFirst, algoUniformCost)
	}

	// Arguments are sound past this point; later failures are not usage
	// mistakes, so stop echoing the usage block with them.
	cmd.SilenceUsage = true

	log := newLogger()

	w, err := world.ParseFile(path)
	if err != nil {
		return err
	}
	log.Debug("world parsed",
		"rows", w.Rows(), "cols", w.Cols(), "dirty", w.DirtCount())

	res, err := strategy(w, search.StartState(w), search.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	if !res.Found {
		log.Warn("no plan clears this world",
			"algorithm", algorithm,
			"generated", res.Generated,
			"expanded", res.Expanded)

		return nil
	}

	return res.Report(cmd.OutOrStdout())
}
