// Command mapfmsolve is the CLI driver for the MAPFM solver: it loads a
// map file, builds mapfm.Options from flags, runs mapfm.Solve, and prints
// the resulting paths or a "no solution" diagnostic. It is a thin
// consumer of the mapfm package's public API only.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nimblegrid/mapfm/gridfile"
	"github.com/nimblegrid/mapfm/mapflog"
	"github.com/nimblegrid/mapfm/mapfm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "mapfmsolve",
		Short: "Solve a multi-agent pathfinding-with-matching problem from a map file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("map", "", "path to the map/scenario file (required)")
	flags.String("heuristic", "color", `matching mode: "color" or "exhaustive"`)
	flags.Bool("matching-id", false, "seed the ID layer by color class instead of per-agent singletons")
	flags.Bool("sorting", true, "in exhaustive mode, stop trying matchings once none left can beat the best found")
	flags.Bool("cat", false, "enable the collision-avoidance tie-breaking table")
	flags.Bool("assignment-heuristic", false, "use the colored min-cost assignment heuristic where it applies")
	flags.Int("max-cost", -1, "reject solutions above this total cost; negative means unbounded")
	flags.Duration("timeout", 0, "cancel the solve after this duration; zero means no timeout")
	flags.Bool("verbose", false, "log solver progress to stderr")

	cobra.CheckErr(v.BindPFlags(flags))
	v.SetEnvPrefix("MAPFMSOLVE")
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	mapPath := v.GetString("map")
	if mapPath == "" {
		return fmt.Errorf("mapfmsolve: --map is required")
	}

	f, err := os.Open(mapPath)
	if err != nil {
		return fmt.Errorf("mapfmsolve: opening map file: %w", err)
	}
	defer f.Close()

	problem, err := gridfile.Load(f)
	if err != nil {
		return fmt.Errorf("mapfmsolve: %w", err)
	}

	mode := mapfm.ColorMode
	if v.GetString("heuristic") == "exhaustive" {
		mode = mapfm.ExhaustiveMode
	}

	opts := mapfm.Options{
		HeuristicMode:          mode,
		EnableMatchingID:       v.GetBool("matching-id"),
		EnableSorting:          v.GetBool("sorting"),
		EnableCAT:              v.GetBool("cat"),
		UseAssignmentHeuristic: v.GetBool("assignment-heuristic"),
		MaxCost:                v.GetInt("max-cost"),
	}
	if v.GetBool("verbose") {
		opts.Logger = mapflog.New(cmd.ErrOrStderr())
	}

	ctx := context.Background()
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	solution, err := mapfm.Solve(ctx, problem, opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}

	out := cmd.OutOrStdout()
	for agentID, seq := range solution {
		fmt.Fprintf(out, "agent %d:", agentID)
		for _, c := range seq {
			fmt.Fprintf(out, " %s", c)
		}
		fmt.Fprintln(out)
	}
	return nil
}
