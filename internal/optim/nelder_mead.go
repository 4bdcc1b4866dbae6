package optim

import (
	"sort"

	"github.com/wjlewis/lagrangian/internal/vec"
)

// Func is a scalar objective over real vectors.
type Func func(x []float64) float64

// Vertex is a simplex point together with its objective value.
type Vertex struct {
	Point vec.Vector
	Value float64
}

type Status int

const (
	Converged Status = iota
	IterationLimit
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration_limit"
	}
	return "unknown"
}

// Step names the move taken in one iteration.
type Step int

const (
	StepReflect Step = iota
	StepExpand
	StepContractOutside
	StepContractInside
	StepShrink
)

func (s Step) String() string {
	switch s {
	case StepReflect:
		return "reflect"
	case StepExpand:
		return "expand"
	case StepContractOutside:
		return "contract_outside"
	case StepContractInside:
		return "contract_inside"
	case StepShrink:
		return "shrink"
	}
	return "unknown"
}

// Iteration describes the simplex after one update.
type Iteration struct {
	Index   int
	Step    Step
	Best    Vertex
	Spread  float64
	Simplex []Vertex
}

type Observer interface {
	OnIteration(it Iteration)
}

type Result struct {
	Point       vec.Vector
	Value       float64
	Iterations  int
	Evaluations int
	Status      Status
	// Simplex is the final vertex set, best first.
	Simplex []Vertex
}

type NelderMead struct {
	opts Options
}

func NewNelderMead(opts Options) *NelderMead {
	return &NelderMead{opts: opts.withDefaults()}
}

// Minimize runs Nelder-Mead from simplex and returns the best point found.
// A nil opts uses DefaultOptions.
func Minimize(f Func, simplex []vec.Vector, opts *Options) (vec.Vector, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	res, err := NewNelderMead(o).Run(f, simplex)
	if err != nil {
		return nil, err
	}
	return res.Point, nil
}

// Run minimizes f starting from simplex, which must hold at least 3 points.
// It stops when the spread of vertex values falls below Epsilon or after
// MaxIter iterations, whichever comes first.
func (nm *NelderMead) Run(f Func, simplex []vec.Vector) (*Result, error) {
	if len(simplex) < 3 {
		return nil, ErrDimensionTooSmall
	}
	o := nm.opts

	evals := 0
	eval := func(x vec.Vector) Vertex {
		evals++
		return Vertex{Point: x, Value: f(x)}
	}

	vs := make([]Vertex, len(simplex))
	for i, x := range simplex {
		vs[i] = eval(x.Clone())
	}
	last := len(vs) - 1

	status := IterationLimit
	iter := 0
	for ; iter < o.MaxIter; iter++ {
		order(vs)
		spread := vec.StdDev(values(vs))
		if spread < o.Epsilon {
			status = Converged
			break
		}

		x0, err := vec.Centroid(points(vs[:last])...)
		if err != nil {
			return nil, err
		}
		best, second, worst := vs[0], vs[last-1], vs[last]

		xR := x0.Add(x0.Sub(worst.Point).Scale(o.Alpha))
		r := eval(xR)

		var step Step
		switch {
		case r.Value < second.Value && r.Value >= best.Value:
			vs[last], step = r, StepReflect

		case r.Value < best.Value:
			e := eval(x0.Add(xR.Sub(x0).Scale(o.Gamma)))
			if e.Value < r.Value {
				vs[last], step = e, StepExpand
			} else {
				vs[last], step = r, StepReflect
			}

		case r.Value < worst.Value:
			c := eval(x0.Add(xR.Sub(x0).Scale(o.Rho)))
			if c.Value < r.Value {
				vs[last], step = c, StepContractOutside
			} else {
				step = StepShrink
			}

		default:
			c := eval(x0.Add(worst.Point.Sub(x0).Scale(o.Rho)))
			if c.Value < worst.Value {
				vs[last], step = c, StepContractInside
			} else {
				step = StepShrink
			}
		}

		if step == StepShrink {
			xB := vs[0].Point
			for i := 1; i < len(vs); i++ {
				vs[i] = eval(xB.Add(vs[i].Point.Sub(xB).Scale(o.Sigma)))
			}
		}

		if o.Observer != nil {
			o.Observer.OnIteration(snapshot(iter, step, vs, spread))
		}
	}

	order(vs)
	res := &Result{
		Point:       vs[0].Point.Clone(),
		Value:       vs[0].Value,
		Iterations:  iter,
		Evaluations: evals,
		Status:      status,
		Simplex:     vs,
	}

	o.Logger.Debug("nelder-mead finished",
		"status", res.Status.String(),
		"iterations", res.Iterations,
		"evaluations", res.Evaluations,
		"value", res.Value,
	)
	return res, nil
}

func order(vs []Vertex) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Value < vs[j].Value })
}

func values(vs []Vertex) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}

func points(vs []Vertex) []vec.Vector {
	out := make([]vec.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Point
	}
	return out
}

func snapshot(iter int, step Step, vs []Vertex, spread float64) Iteration {
	cp := make([]Vertex, len(vs))
	for i, v := range vs {
		cp[i] = Vertex{Point: v.Point.Clone(), Value: v.Value}
	}
	best := cp[0]
	for _, v := range cp[1:] {
		if v.Value < best.Value {
			best = v
		}
	}
	return Iteration{Index: iter, Step: step, Best: best, Spread: spread, Simplex: cp}
}
