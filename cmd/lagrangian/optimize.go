package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wjlewis/lagrangian/internal/config"
	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/integrators"
	"github.com/wjlewis/lagrangian/internal/mechanics"
	"github.com/wjlewis/lagrangian/internal/optim"
	"github.com/wjlewis/lagrangian/internal/problems"
	"github.com/wjlewis/lagrangian/internal/quad"
	"github.com/wjlewis/lagrangian/internal/report"
	"github.com/wjlewis/lagrangian/internal/tui"
	"github.com/wjlewis/lagrangian/internal/vec"
)

const (
	gridHalfWidth = 5.0
	gridPoints    = 21
	// Extra starts are spread on a circle of this radius around the center.
	startRadius = 2.0
	plotSamples = 60
)

// loadConfig layers defaults, the --config file and the --preset for key.
func loadConfig(key string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(key, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s", preset, key)
		}
		cfg = cfg.Overlay(p)
	}
	return cfg, nil
}

func runMinimize(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}
	obj, err := problems.NewRegistry().Objective(name)
	if err != nil {
		return err
	}

	center := obj.Start
	if len(cfg.Start.Center) > 0 {
		center = vec.Vector(cfg.Start.Center)
	}
	if grid {
		center = gridStart(obj.Func, center)
		logger.Info("grid search picked start", "center", report.FormatVector(center))
	}

	opts := cfg.Options()
	opts.Logger = logger
	rec := report.NewRecorder()

	var res *optim.Result
	started := time.Now()
	if starts > 1 {
		res, err = optim.MultiStart(context.Background(), obj.Func, startSimplices(center, cfg.Start.Size, starts), opts)
	} else {
		opts.Observer = rec
		res, err = optim.NewNelderMead(opts).Run(obj.Func, optim.SimplexAround(center, cfg.Start.Size))
	}
	if err != nil {
		return fmt.Errorf("failed to minimize %s: %w", name, err)
	}
	logger.Debug("minimize done", "problem", name, "elapsed", time.Since(started))

	if asJSON {
		return report.WriteJSON(os.Stdout, report.NewRun(name, opts, res, rec))
	}

	fmt.Printf("%s: %s\n\n", obj.Name, obj.Description)
	rows := [][]string{
		{"point", report.FormatVector(res.Point)},
		{"value", strconv.FormatFloat(res.Value, 'g', 12, 64)},
		{"known minimum", report.FormatVector(obj.Minimum)},
		{"distance", strconv.FormatFloat(res.Point.Sub(obj.Minimum).Norm(), 'g', 6, 64)},
		{"iterations", strconv.Itoa(res.Iterations)},
		{"evaluations", strconv.Itoa(res.Evaluations)},
		{"status", res.Status.String()},
	}
	if err := report.Table(os.Stdout, []string{"FIELD", "RESULT"}, rows); err != nil {
		return err
	}

	if plot {
		if len(rec.Iterations) == 0 {
			fmt.Println("\nno trace to plot (multi-start runs are not traced)")
			return nil
		}
		fmt.Println()
		fmt.Println(report.Plot(report.LogSeries(rec.BestValues()), "log10 best value per iteration"))
	}
	return nil
}

// gridStart samples a square around center and returns the best sample.
// Only the first two axes are searched; the rest stay at center.
func gridStart(f optim.Func, center vec.Vector) vec.Vector {
	ranges := make([][]float64, len(center))
	for i, c := range center {
		if i < 2 {
			ranges[i] = vec.LerpScalar(c-gridHalfWidth, c+gridHalfWidth, gridPoints-2)
		} else {
			ranges[i] = []float64{c}
		}
	}
	best, _ := optim.NewGridSearch(ranges).Search(f)
	if best == nil {
		return center
	}
	return best
}

func startSimplices(center vec.Vector, size float64, n int) [][]vec.Vector {
	out := make([][]vec.Vector, n)
	out[0] = optim.SimplexAround(center, size)
	for i := 1; i < n; i++ {
		c := center.Clone()
		angle := 2 * math.Pi * float64(i-1) / float64(n-1)
		c[0] += startRadius * math.Cos(angle)
		if len(c) > 1 {
			c[1] += startRadius * math.Sin(angle)
		}
		out[i] = optim.SimplexAround(c, size)
	}
	return out
}

func runAction(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig("oscillator")
	if err != nil {
		return err
	}
	m := cfg.Mechanics
	L, err := problems.NewRegistry().Lagrangian(m.Lagrangian, m.Mass, m.Stiffness)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	opts.Logger = logger
	p := cfg.MechanicsProblem(L)
	sol, err := p.Solve(opts)
	if err != nil {
		return fmt.Errorf("failed to solve least-action path: %w", err)
	}

	basis := "lagrange"
	if p.Flat {
		basis = "flat lagrange"
	}
	fmt.Printf("%s path q(%g)=%g to q(%g)=%g, %d knots, %s basis\n\n",
		m.Lagrangian, p.T0, p.Q0, p.T1, p.Q1, p.Knots, basis)

	rows := make([][]string, len(sol.Times))
	for i := range sol.Times {
		rows[i] = []string{
			strconv.FormatFloat(sol.Times[i], 'f', 6, 64),
			strconv.FormatFloat(sol.Values[i], 'f', 6, 64),
		}
	}
	if err := report.Table(os.Stdout, []string{"T", "Q"}, rows); err != nil {
		return err
	}
	fmt.Printf("\naction: %.9g\n", sol.Action)
	fmt.Printf("iterations: %d, status: %s\n", sol.Result.Iterations, sol.Result.Status)

	v0 := mechanics.Gamma(sol.Path)(p.T0).QDot
	landed := p.Shoot(sol, mechanics.DefaultShootSteps)
	fmt.Printf("shooting check: from q̇(%g)=%.6g the motion reaches q(%g)=%.6g (target %g)\n",
		p.T0, v0, p.T1, landed, p.Q1)
	logger.Debug("shooting check", "v0", v0, "landed", landed, "miss", landed-p.Q1)

	if plot {
		path := make([]float64, plotSamples)
		for i, t := range vec.LerpScalar(p.T0, p.T1, plotSamples-2) {
			path[i] = dual.Float(sol.Path(dual.Scalar(t)))
		}
		_, motion, _ := mechanics.Trajectory(p.L, p.T0, p.Q0, v0, p.T1, plotSamples-1)
		fmt.Println()
		fmt.Println(report.PlotMany([][]float64{path, motion}, "q(t): least-action path and integrated motion"))
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := loadConfig(name)
	if err != nil {
		return err
	}
	obj, err := problems.NewRegistry().Objective(name)
	if err != nil {
		return err
	}

	center := obj.Start
	if len(cfg.Start.Center) > 0 {
		center = vec.Vector(cfg.Start.Center)
	}

	rec := report.NewRecorder()
	opts := cfg.Options()
	opts.Observer = rec
	if _, err := optim.NewNelderMead(opts).Run(obj.Func, optim.SimplexAround(center, cfg.Start.Size)); err != nil {
		return fmt.Errorf("failed to minimize %s: %w", name, err)
	}

	prog := tea.NewProgram(tui.NewReplay(name, rec.Iterations), tea.WithAltScreen())
	_, err = prog.Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for problem: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func listNames(cmd *cobra.Command, args []string) error {
	reg := problems.NewRegistry()

	rows := make([][]string, 0)
	for _, name := range reg.ListObjectives() {
		obj, _ := reg.Objective(name)
		rows = append(rows, []string{"objective", name, obj.Description})
	}
	for _, name := range reg.ListFunctions() {
		rows = append(rows, []string{"function", name, ""})
	}
	for _, name := range reg.ListLagrangians() {
		rows = append(rows, []string{"lagrangian", name, ""})
	}
	for _, name := range quad.ListRules() {
		rows = append(rows, []string{"rule", name, ""})
	}
	for _, name := range integrators.List() {
		rows = append(rows, []string{"integrator", name, ""})
	}
	return report.Table(os.Stdout, []string{"KIND", "NAME", "DESCRIPTION"}, rows)
}
