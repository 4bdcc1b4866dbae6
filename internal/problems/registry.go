// Package problems names the objectives, scalar functions and Lagrangians
// the command line can refer to.
package problems

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/mechanics"
	"github.com/wjlewis/lagrangian/internal/optim"
	"github.com/wjlewis/lagrangian/internal/vec"
)

var ErrUnknown = errors.New("problems: unknown name")

// Objective is a test problem for the optimizer with a known minimizer.
type Objective struct {
	Name        string
	Description string
	Func        optim.Func
	Minimum     vec.Vector
	Start       vec.Vector
}

type Registry struct {
	objectives  map[string]Objective
	functions   map[string]dual.Fn
	lagrangians map[string]func(mass, stiffness float64) mechanics.Lagrangian
}

func NewRegistry() *Registry {
	r := &Registry{
		objectives:  make(map[string]Objective),
		functions:   make(map[string]dual.Fn),
		lagrangians: make(map[string]func(float64, float64) mechanics.Lagrangian),
	}

	r.addObjective(Objective{
		Name: "bowl", Description: "(x-1)² + (y-2)²",
		Func: Bowl, Minimum: vec.Vector{1, 2}, Start: vec.Vector{0, 0},
	})
	r.addObjective(Objective{
		Name: "rosenbrock", Description: "(1-x)² + 100(y-x²)²",
		Func: Rosenbrock, Minimum: vec.Vector{1, 1}, Start: vec.Vector{-1.2, 1},
	})
	r.addObjective(Objective{
		Name: "himmelblau", Description: "(x²+y-11)² + (x+y²-7)²",
		Func: Himmelblau, Minimum: vec.Vector{3, 2}, Start: vec.Vector{1, 1},
	})
	r.addObjective(Objective{
		Name: "booth", Description: "(x+2y-7)² + (2x+y-5)²",
		Func: Booth, Minimum: vec.Vector{1, 3}, Start: vec.Vector{0, 0},
	})

	r.functions["square"] = func(x dual.Num) dual.Num { return dual.Mul(x, x) }
	r.functions["cube"] = func(x dual.Num) dual.Num { return dual.Pow(x, 3) }
	r.functions["sin"] = dual.Sin
	r.functions["cos"] = dual.Cos
	r.functions["exp"] = dual.Exp
	r.functions["gaussian"] = func(x dual.Num) dual.Num {
		return dual.Exp(dual.Neg(dual.Mul(x, x)))
	}
	r.functions["logistic"] = func(x dual.Num) dual.Num {
		return dual.Inv(dual.Add(dual.Scalar(1), dual.Exp(dual.Neg(x))))
	}

	r.lagrangians["free"] = func(mass, _ float64) mechanics.Lagrangian {
		return mechanics.FreeParticle(mass)
	}
	r.lagrangians["oscillator"] = mechanics.HarmonicOscillator
	// stiffness doubles as gravitational acceleration for the pendulum
	r.lagrangians["pendulum"] = mechanics.Pendulum

	return r
}

func (r *Registry) addObjective(o Objective) {
	r.objectives[o.Name] = o
}

func (r *Registry) Objective(name string) (Objective, error) {
	o, ok := r.objectives[name]
	if !ok {
		return Objective{}, fmt.Errorf("%w: objective %s", ErrUnknown, name)
	}
	return o, nil
}

func (r *Registry) Function(name string) (dual.Fn, error) {
	fn, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: function %s", ErrUnknown, name)
	}
	return fn, nil
}

func (r *Registry) Lagrangian(name string, mass, stiffness float64) (mechanics.Lagrangian, error) {
	fn, ok := r.lagrangians[name]
	if !ok {
		return nil, fmt.Errorf("%w: lagrangian %s", ErrUnknown, name)
	}
	return fn(mass, stiffness), nil
}

func (r *Registry) ListObjectives() []string  { return sortedKeys(r.objectives) }
func (r *Registry) ListFunctions() []string   { return sortedKeys(r.functions) }
func (r *Registry) ListLagrangians() []string { return sortedKeys(r.lagrangians) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
