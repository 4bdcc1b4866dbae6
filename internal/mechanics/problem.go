package mechanics

import (
	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/interp"
	"github.com/wjlewis/lagrangian/internal/optim"
	"github.com/wjlewis/lagrangian/internal/vec"
)

const (
	DefaultStep        = 0.05
	DefaultSimplexSize = 0.1
)

// Problem is a boundary-value problem q(T0) = Q0, q(T1) = Q1 with Knots free
// interior knots evenly spaced in time.
type Problem struct {
	L      Lagrangian
	T0, Q0 float64
	T1, Q1 float64
	Knots  int
	// Step is the quadrature panel width; zero selects DefaultStep.
	Step float64
	// Flat selects the flattened Lagrange basis for the trial path.
	Flat bool
}

type Solution struct {
	Times  []float64
	Values []float64
	Path   dual.Fn
	Action float64
	Result *optim.Result
}

// Times returns all knot times, endpoints included.
func (p *Problem) Times() []float64 {
	return vec.LerpScalar(p.T0, p.T1, p.Knots)
}

// Path interpolates the endpoints and the given interior knot values.
func (p *Problem) Path(interior []float64) dual.Fn {
	qs := make([]float64, 0, len(interior)+2)
	qs = append(qs, p.Q0)
	qs = append(qs, interior...)
	qs = append(qs, p.Q1)

	ts := dual.Scalars(p.Times()...)
	if p.Flat {
		return interp.FlatLagrange(ts, dual.Scalars(qs...))
	}
	return interp.Lagrange(ts, dual.Scalars(qs...))
}

// Action is the action of the trial path through interior.
func (p *Problem) Action(interior []float64) float64 {
	step := p.Step
	if step <= 0 {
		step = DefaultStep
	}
	return Action(p.L, p.Path(interior), p.T0, p.T1, step)
}

// Solve starts from the straight line between the endpoints and minimizes
// the action over the interior knots. Fewer than two knots leave a simplex
// too small for Nelder-Mead and return optim.ErrDimensionTooSmall.
func (p *Problem) Solve(opts optim.Options) (*Solution, error) {
	line := vec.LerpScalar(p.Q0, p.Q1, p.Knots)
	start := vec.Vector(line[1 : len(line)-1])

	res, err := optim.NewNelderMead(opts).Run(p.Action, optim.SimplexAround(start, DefaultSimplexSize))
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(line))
	values = append(values, p.Q0)
	values = append(values, res.Point...)
	values = append(values, p.Q1)

	return &Solution{
		Times:  p.Times(),
		Values: values,
		Path:   p.Path(res.Point),
		Action: res.Value,
		Result: res,
	}, nil
}
