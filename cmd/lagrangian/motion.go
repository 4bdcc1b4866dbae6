package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjlewis/lagrangian/internal/integrators"
	"github.com/wjlewis/lagrangian/internal/mechanics"
	"github.com/wjlewis/lagrangian/internal/problems"
	"github.com/wjlewis/lagrangian/internal/report"
)

var (
	mass       float64
	stiffness  float64
	q0         float64
	v0         float64
	duration   float64
	steps      int
	integrator string
	tableRows  int
)

func newMotionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motion [lagrangian]",
		Short: "integrate the equations of motion of a named lagrangian",
		Args:  cobra.ExactArgs(1),
		RunE:  runMotion,
	}
	cmd.Flags().Float64Var(&mass, "mass", 1, "mass")
	cmd.Flags().Float64Var(&stiffness, "stiffness", 1, "spring constant (gravity for pendulum)")
	cmd.Flags().Float64Var(&q0, "q0", 1, "initial position")
	cmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity")
	cmd.Flags().Float64Var(&duration, "time", 10, "duration")
	cmd.Flags().IntVar(&steps, "steps", 1000, "integration steps")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().IntVar(&tableRows, "rows", 10, "table rows")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot q(t)")
	return cmd
}

func runMotion(cmd *cobra.Command, args []string) error {
	L, err := problems.NewRegistry().Lagrangian(args[0], mass, stiffness)
	if err != nil {
		return err
	}
	integ, err := integrators.ByName(integrator)
	if err != nil {
		return err
	}

	ts, qs, vs := mechanics.TrajectoryWith(integ, L, 0, q0, v0, duration, steps)
	logger.Debug("integrated motion", "lagrangian", args[0], "integrator", integrator, "steps", steps)

	stride := max(len(ts)/max(tableRows, 1), 1)
	table := make([][]string, 0, tableRows+1)
	for i := 0; i < len(ts); i += stride {
		table = append(table, motionRow(ts[i], qs[i], vs[i]))
	}
	if last := len(ts) - 1; last%stride != 0 {
		table = append(table, motionRow(ts[last], qs[last], vs[last]))
	}

	fmt.Printf("%s with %s, %d steps\n\n", args[0], integrator, steps)
	if err := report.Table(os.Stdout, []string{"T", "Q", "QDOT"}, table); err != nil {
		return err
	}
	fmt.Printf("\nenergy drift: %.3e\n", mechanics.EnergyDrift(L, ts, qs, vs))

	if plot {
		fmt.Println()
		fmt.Println(report.Plot(qs, "q(t)"))
	}
	return nil
}

func motionRow(t, q, v float64) []string {
	return []string{
		strconv.FormatFloat(t, 'f', 4, 64),
		strconv.FormatFloat(q, 'f', 6, 64),
		strconv.FormatFloat(v, 'f', 6, 64),
	}
}
