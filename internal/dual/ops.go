package dual

import "math"

func Add(x, y Num) Num {
	if a, b, ok := bothScalar(x, y); ok {
		return a + b
	}
	pa, ta := split(x)
	pb, tb := split(y)
	return Dual{Add(pa, pb), Add(ta, tb)}
}

// Mul applies the product rule at every level of the tower.
func Mul(x, y Num) Num {
	if a, b, ok := bothScalar(x, y); ok {
		return a * b
	}
	pa, ta := split(x)
	pb, tb := split(y)
	return Dual{Mul(pa, pb), Add(Mul(ta, pb), Mul(pa, tb))}
}

func Neg(x Num) Num {
	switch v := x.(type) {
	case Scalar:
		return -v
	case Dual:
		return Dual{Neg(v.Primal), Neg(v.Tangent)}
	}
	return x
}

func Sub(x, y Num) Num {
	return Add(x, Neg(y))
}

// Inv is the reciprocal. d(1/a) = -a'/a².
func Inv(x Num) Num {
	switch v := x.(type) {
	case Scalar:
		return 1 / v
	case Dual:
		return Dual{Inv(v.Primal), Mul(Neg(v.Tangent), Inv(Pow(v.Primal, 2)))}
	}
	return x
}

func Div(x, y Num) Num {
	return Mul(x, Inv(y))
}

// Pow raises x to a real exponent: (a + bε)ⁿ = aⁿ + n·aⁿ⁻¹·bε.
func Pow(x Num, n float64) Num {
	switch v := x.(type) {
	case Scalar:
		return Scalar(math.Pow(float64(v), n))
	case Dual:
		return Dual{Pow(v.Primal, n), Mul(Mul(Scalar(n), Pow(v.Primal, n-1)), v.Tangent)}
	}
	return x
}

func Sin(x Num) Num {
	switch v := x.(type) {
	case Scalar:
		return Scalar(math.Sin(float64(v)))
	case Dual:
		return Dual{Sin(v.Primal), Mul(Cos(v.Primal), v.Tangent)}
	}
	return x
}

func Cos(x Num) Num {
	switch v := x.(type) {
	case Scalar:
		return Scalar(math.Cos(float64(v)))
	case Dual:
		return Dual{Cos(v.Primal), Mul(Neg(Sin(v.Primal)), v.Tangent)}
	}
	return x
}

func Exp(x Num) Num {
	switch v := x.(type) {
	case Scalar:
		return Scalar(math.Exp(float64(v)))
	case Dual:
		return Dual{Exp(v.Primal), Mul(Exp(v.Primal), v.Tangent)}
	}
	return x
}

// Sum folds Add over xs starting from 0.
func Sum(xs []Num) Num {
	var acc Num = Scalar(0)
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// Prod folds Mul over xs starting from 1.
func Prod(xs []Num) Num {
	var acc Num = Scalar(1)
	for _, x := range xs {
		acc = Mul(acc, x)
	}
	return acc
}
