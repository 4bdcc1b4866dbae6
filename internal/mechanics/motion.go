package mechanics

import (
	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/integrators"
	"github.com/wjlewis/lagrangian/internal/vec"
)

// DefaultShootSteps is the number of RK4 steps Shoot takes.
const DefaultShootSteps = 200

// tower seeds x into a depth-two value. The inner perturbation sits on the
// primal level and the outer one on the tangent level, so two variables can
// be perturbed in one evaluation without their tangents mixing.
func tower(x float64, inner, outer bool) dual.Num {
	return dual.Dual{
		Primal:  dual.Dual{Primal: dual.Scalar(x), Tangent: unit(inner)},
		Tangent: unit(outer),
	}
}

func unit(on bool) dual.Num {
	if on {
		return dual.Scalar(1)
	}
	return dual.Scalar(0)
}

// innerPartial reads ∂L/∂(inner) from a tower result.
func innerPartial(r dual.Num) float64 {
	return dual.Float(dual.TangentOf(dual.PrimalOf(r)))
}

// mixedPartial reads ∂²L/∂(outer)∂(inner) from a tower result.
func mixedPartial(r dual.Num) float64 {
	return dual.Float(dual.TangentOf(dual.TangentOf(r)))
}

// Acceleration solves the Euler-Lagrange equation
//
//	∂L/∂q = ∂²L/∂q̇∂t + ∂²L/∂q̇∂q·q̇ + ∂²L/∂q̇²·q̈
//
// for q̈. A Lagrangian with ∂²L/∂q̇² = 0 yields ±Inf or NaN.
func Acceleration(L Lagrangian) func(t, q, qdot float64) float64 {
	return func(t, q, qdot float64) float64 {
		rq := L(tower(t, false, false), tower(q, true, false), tower(qdot, false, true))
		rt := L(tower(t, true, false), tower(q, false, false), tower(qdot, false, true))
		rv := L(tower(t, false, false), tower(q, false, false), tower(qdot, true, true))

		return (innerPartial(rq) - mixedPartial(rt) - mixedPartial(rq)*qdot) / mixedPartial(rv)
	}
}

// EquationsOfMotion is the first-order system for the state (q, q̇).
func EquationsOfMotion(L Lagrangian) integrators.Field {
	acc := Acceleration(L)
	return func(t float64, x vec.Vector) vec.Vector {
		return vec.Vector{x[1], acc(t, x[0], x[1])}
	}
}

// Trajectory integrates the equations of motion from (q0, v0) at t0 to t1
// in n RK4 steps.
func Trajectory(L Lagrangian, t0, q0, v0, t1 float64, n int) (ts, qs, vs []float64) {
	return TrajectoryWith(integrators.NewRK4(), L, t0, q0, v0, t1, n)
}

func TrajectoryWith(integ integrators.Integrator, L Lagrangian, t0, q0, v0, t1 float64, n int) (ts, qs, vs []float64) {
	times, states := integrators.Solve(integ, EquationsOfMotion(L), vec.Vector{q0, v0}, t0, t1, n)

	qs = make([]float64, len(states))
	vs = make([]float64, len(states))
	for i, x := range states {
		qs[i], vs[i] = x[0], x[1]
	}
	return times, qs, vs
}

// Shoot launches the true motion from Q0 with the initial velocity of the
// solved path and returns where it lands at T1. For a good solution this
// is close to Q1.
func (p *Problem) Shoot(sol *Solution, n int) float64 {
	if n <= 0 {
		n = DefaultShootSteps
	}
	v0 := Gamma(sol.Path)(p.T0).QDot
	_, qs, _ := Trajectory(p.L, p.T0, p.Q0, v0, p.T1, n)
	return qs[len(qs)-1]
}
