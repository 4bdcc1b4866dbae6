// Package interp builds polynomial interpolants over the dual algebra, so
// nodes, values and the evaluation point may all carry derivatives.
//
// Evaluation is O(n²) per call with no cached weights. Coincident nodes
// divide by zero and surface as ±Inf or NaN.
package interp

import "github.com/wjlewis/lagrangian/internal/dual"

// Lagrange returns x ↦ Σᵢ ysᵢ·Lᵢ(x). ys must not be longer than xs.
func Lagrange(xs, ys []dual.Num) dual.Fn {
	return combine(xs, ys, LagrangeBasis)
}

// LagrangeBasis returns Lᵢ(x) = Πⱼ≠ᵢ (x - xⱼ)/(xᵢ - xⱼ).
func LagrangeBasis(xs []dual.Num, i int) dual.Fn {
	xi := xs[i]
	return func(x dual.Num) dual.Num {
		var prod dual.Num = dual.Scalar(1)
		for j, xj := range xs {
			if j == i {
				continue
			}
			prod = dual.Mul(prod, dual.Div(dual.Sub(x, xj), dual.Sub(xi, xj)))
		}
		return prod
	}
}

func combine(xs, ys []dual.Num, basis func([]dual.Num, int) dual.Fn) dual.Fn {
	ls := make([]dual.Fn, len(ys))
	for i := range ys {
		ls[i] = basis(xs, i)
	}
	return func(x dual.Num) dual.Num {
		var sum dual.Num = dual.Scalar(0)
		for i, y := range ys {
			sum = dual.Add(sum, dual.Mul(y, ls[i](x)))
		}
		return sum
	}
}
