package dual

// Derivative returns the derivative of f. The result is itself an Fn, so
// Derivative(Derivative(f)) is the second derivative.
func Derivative(f Fn) Fn {
	return func(x Num) Num {
		return TangentOf(f(Dual{Primal: x, Tangent: Scalar(1)}))
	}
}

// Differentiate returns f' as a plain real function.
func Differentiate(f Fn) func(float64) float64 {
	df := Derivative(f)
	return func(x float64) float64 {
		return Float(df(Scalar(x)))
	}
}
