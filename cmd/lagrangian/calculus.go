package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/interp"
	"github.com/wjlewis/lagrangian/internal/problems"
	"github.com/wjlewis/lagrangian/internal/quad"
	"github.com/wjlewis/lagrangian/internal/report"
	"github.com/wjlewis/lagrangian/internal/vec"
)

func runDiff(cmd *cobra.Command, args []string) error {
	if order < 0 {
		return fmt.Errorf("order must be non-negative, got %d", order)
	}

	f, err := problems.NewRegistry().Function(args[0])
	if err != nil {
		return err
	}

	g := f
	for i := 0; i < order; i++ {
		g = dual.Derivative(g)
	}
	logger.Debug("differentiating", "function", args[0], "order", order, "at", at)

	fmt.Printf("f(%g) = %.12g\n", at, dual.Float(f(dual.Scalar(at))))
	if order > 0 {
		fmt.Printf("d^%d f/dx^%d at %g = %.12g\n", order, order, at, dual.Float(g(dual.Scalar(at))))
	}
	return nil
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	f, err := problems.NewRegistry().Function(args[0])
	if err != nil {
		return err
	}
	fx := func(x float64) float64 { return dual.Float(f(dual.Scalar(x))) }

	names := []string{rule}
	if allRules {
		names = quad.ListRules()
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		r, err := quad.RuleByName(name, step)
		if err != nil {
			return err
		}
		v := r.Integrate(fx, from, to)
		logger.Debug("integrated", "rule", name, "from", from, "to", to, "step", step, "value", v)
		rows = append(rows, []string{name, strconv.FormatFloat(v, 'g', 12, 64)})
	}

	fmt.Printf("∫ %s over [%g, %g], step %g\n\n", args[0], from, to, step)
	return report.Table(os.Stdout, []string{"RULE", "VALUE"}, rows)
}

func runInterp(cmd *cobra.Command, args []string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("got %d xs but %d ys", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return fmt.Errorf("need at least 2 nodes, got %d", len(xs))
	}

	build := interp.Lagrange
	if flat {
		build = interp.FlatLagrange
	}
	p := build(dual.Scalars(xs...), dual.Scalars(ys...))

	fmt.Printf("p(%g)  = %.12g\n", at, dual.Float(p(dual.Scalar(at))))
	fmt.Printf("p'(%g) = %.12g\n", at, dual.Float(dual.Derivative(p)(dual.Scalar(at))))
	return nil
}

func runLerp(cmd *cobra.Command, args []string) error {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("failed to parse a: %w", err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("failed to parse b: %w", err)
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("failed to parse n: %w", err)
	}

	for _, x := range vec.LerpScalar(a, b, n) {
		fmt.Println(strconv.FormatFloat(x, 'g', -1, 64))
	}
	return nil
}
