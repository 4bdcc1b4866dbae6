package interp

import "github.com/wjlewis/lagrangian/internal/dual"

// FlatLagrange interpolates with the flattened basis of FlatLagrangeBasis.
// xs needs at least two distinct nodes.
func FlatLagrange(xs, ys []dual.Num) dual.Fn {
	return combine(xs, ys, FlatLagrangeBasis)
}

// FlatLagrangeBasis scales Lᵢ by (x - x*)/(xᵢ - x*). For i = 0, x* is chosen
// so the derivative of the basis at x₀ vanishes; for i ≠ 0, x* = x₀.
func FlatLagrangeBasis(xs []dual.Num, i int) dual.Fn {
	xi := xs[i]
	xStar := pivot(xs, i)
	li := LagrangeBasis(xs, i)

	return func(x dual.Num) dual.Num {
		return dual.Mul(li(x), dual.Div(dual.Sub(x, xStar), dual.Sub(xi, xStar)))
	}
}

// pivot computes x* = x₀ + N/D with N = Πⱼ≠₀(x₀ - xⱼ) and
// D = Σⱼ≠₀ Πₖ≠₀,ⱼ(x₀ - xₖ).
func pivot(xs []dual.Num, i int) dual.Num {
	x0 := xs[0]
	if i != 0 {
		return x0
	}

	diffs := make([]dual.Num, 0, len(xs)-1)
	for _, xj := range xs[1:] {
		diffs = append(diffs, dual.Sub(x0, xj))
	}
	n := dual.Prod(diffs)

	var d dual.Num = dual.Scalar(0)
	for j := range diffs {
		var prod dual.Num = dual.Scalar(1)
		for k, dk := range diffs {
			if k != j {
				prod = dual.Mul(prod, dk)
			}
		}
		d = dual.Add(d, prod)
	}

	return dual.Add(x0, dual.Div(n, d))
}
