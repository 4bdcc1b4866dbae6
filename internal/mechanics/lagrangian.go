package mechanics

import (
	"github.com/wjlewis/lagrangian/internal/dual"
	"github.com/wjlewis/lagrangian/internal/quad"
)

// LocalTuple is the state of a path at one instant.
type LocalTuple struct {
	T    float64
	Q    float64
	QDot float64
}

// Lagrangian is written with dual operations so that its partial
// derivatives are available to the equations of motion.
type Lagrangian func(t, q, qdot dual.Num) dual.Num

// At evaluates L on a local tuple.
func (L Lagrangian) At(l LocalTuple) float64 {
	return dual.Float(L(dual.Scalar(l.T), dual.Scalar(l.Q), dual.Scalar(l.QDot)))
}

func Compose(f, g dual.Fn) dual.Fn {
	return func(x dual.Num) dual.Num {
		return f(g(x))
	}
}

// Gamma turns a coordinate path into a function from time to local tuple.
// One seeded evaluation of q yields both the position and the velocity.
func Gamma(q dual.Fn) func(t float64) LocalTuple {
	return func(t float64) LocalTuple {
		y := q(dual.Dual{Primal: dual.Scalar(t), Tangent: dual.Scalar(1)})
		return LocalTuple{
			T:    t,
			Q:    dual.Float(y),
			QDot: dual.Float(dual.TangentOf(y)),
		}
	}
}

func kinetic(mass float64, qdot dual.Num) dual.Num {
	return dual.Mul(dual.Scalar(0.5*mass), dual.Mul(qdot, qdot))
}

func FreeParticle(mass float64) Lagrangian {
	return func(_, _, qdot dual.Num) dual.Num {
		return kinetic(mass, qdot)
	}
}

func HarmonicOscillator(mass, stiffness float64) Lagrangian {
	return func(_, q, qdot dual.Num) dual.Num {
		return dual.Sub(kinetic(mass, qdot), dual.Mul(dual.Scalar(0.5*stiffness), dual.Mul(q, q)))
	}
}

// Pendulum is a rigid pendulum of unit length with q the angle from the
// downward vertical and gravity the gravitational acceleration.
func Pendulum(mass, gravity float64) Lagrangian {
	return func(_, q, qdot dual.Num) dual.Num {
		return dual.Add(kinetic(mass, qdot), dual.Mul(dual.Scalar(mass*gravity), dual.Cos(q)))
	}
}

// Action integrates L along q over [t0, t1].
func Action(L Lagrangian, q dual.Fn, t0, t1, step float64) float64 {
	g := Gamma(q)
	return quad.SimpsonIntegral(func(t float64) float64 { return L.At(g(t)) }, t0, t1, step)
}
