package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	// diff
	at    float64
	order int
	// integrate
	from     float64
	to       float64
	step     float64
	rule     string
	allRules bool
	// interp
	xs   []float64
	ys   []float64
	flat bool
	// minimize, action, watch
	configFile string
	preset     string
	grid       bool
	starts     int
	asJSON     bool
	plot       bool
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// main registers the lagrangian commands and runs the root command, exiting
// with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "lagrangian",
		Short:         "dual-number calculus, quadrature and simplex optimization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	diffCmd := &cobra.Command{
		Use:   "diff [function]",
		Short: "evaluate a derivative of a named function",
		Args:  cobra.ExactArgs(1),
		RunE:  runDiff,
	}
	diffCmd.Flags().Float64Var(&at, "at", 0, "evaluation point")
	diffCmd.Flags().IntVar(&order, "order", 1, "derivative order")

	integrateCmd := &cobra.Command{
		Use:   "integrate [function]",
		Short: "integrate a named function",
		Args:  cobra.ExactArgs(1),
		RunE:  runIntegrate,
	}
	integrateCmd.Flags().Float64Var(&from, "from", 0, "lower limit")
	integrateCmd.Flags().Float64Var(&to, "to", 1, "upper limit")
	integrateCmd.Flags().Float64Var(&step, "step", 0.1, "panel width")
	integrateCmd.Flags().StringVar(&rule, "rule", "simpson", "quadrature rule")
	integrateCmd.Flags().BoolVar(&allRules, "all", false, "compare every rule")

	interpCmd := &cobra.Command{
		Use:   "interp",
		Short: "evaluate the Lagrange interpolant through points",
		Args:  cobra.NoArgs,
		RunE:  runInterp,
	}
	interpCmd.Flags().Float64SliceVar(&xs, "xs", nil, "node abscissas")
	interpCmd.Flags().Float64SliceVar(&ys, "ys", nil, "node values")
	interpCmd.Flags().Float64Var(&at, "at", 0, "evaluation point")
	interpCmd.Flags().BoolVar(&flat, "flat", false, "use the flattened basis")
	interpCmd.MarkFlagRequired("xs")
	interpCmd.MarkFlagRequired("ys")

	lerpCmd := &cobra.Command{
		Use:   "lerp [a] [b] [n]",
		Short: "n evenly spaced steps from a to b",
		Args:  cobra.ExactArgs(3),
		RunE:  runLerp,
	}

	minimizeCmd := &cobra.Command{
		Use:   "minimize [problem]",
		Short: "minimize a named objective with nelder-mead",
		Args:  cobra.ExactArgs(1),
		RunE:  runMinimize,
	}
	minimizeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	minimizeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	minimizeCmd.Flags().BoolVar(&grid, "grid", false, "pick the start with a coarse grid search")
	minimizeCmd.Flags().IntVar(&starts, "starts", 1, "number of concurrent starts")
	minimizeCmd.Flags().BoolVar(&asJSON, "json", false, "print the run as json")
	minimizeCmd.Flags().BoolVar(&plot, "plot", false, "plot convergence")

	actionCmd := &cobra.Command{
		Use:   "action",
		Short: "find a least-action path",
		Args:  cobra.NoArgs,
		RunE:  runAction,
	}
	actionCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	actionCmd.Flags().StringVar(&preset, "preset", "", "oscillator preset")
	actionCmd.Flags().BoolVar(&plot, "plot", false, "plot the path")

	watchCmd := &cobra.Command{
		Use:   "watch [problem]",
		Short: "replay a minimization in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	watchCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list named problems, functions, lagrangians and rules",
		Args:  cobra.NoArgs,
		RunE:  listNames,
	}

	rootCmd.AddCommand(diffCmd, integrateCmd, interpCmd, lerpCmd, minimizeCmd,
		actionCmd, newMotionCmd(), watchCmd, presetsCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
