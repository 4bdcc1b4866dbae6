package mechanics

import (
	"math"

	"github.com/wjlewis/lagrangian/internal/dual"
)

// Energy is the Hamiltonian q̇·∂L/∂q̇ − L. It is conserved along the motion
// when L does not depend on t.
func Energy(L Lagrangian) func(t, q, qdot float64) float64 {
	return func(t, q, qdot float64) float64 {
		r := L(dual.Scalar(t), dual.Scalar(q), dual.Dual{Primal: dual.Scalar(qdot), Tangent: dual.Scalar(1)})
		return qdot*dual.Float(dual.TangentOf(r)) - dual.Float(r)
	}
}

// EnergyDrift is the largest deviation of the energy from its initial value
// along a sampled trajectory, relative to the initial energy. A zero initial
// energy makes the drift absolute.
func EnergyDrift(L Lagrangian, ts, qs, vs []float64) float64 {
	if len(ts) == 0 {
		return 0
	}
	energy := Energy(L)
	e0 := energy(ts[0], qs[0], vs[0])

	maxDrift := 0.0
	for i := range ts {
		maxDrift = math.Max(maxDrift, math.Abs(energy(ts[i], qs[i], vs[i])-e0))
	}
	if e0 != 0 {
		maxDrift /= math.Abs(e0)
	}
	return maxDrift
}
