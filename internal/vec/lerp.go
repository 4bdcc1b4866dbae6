package vec

// Lerp returns n+2 points from x1 to x2: the endpoints plus n interior points
// built by repeatedly adding the fixed step (x2-x1)/(n+1). Interior points
// accumulate rounding; the endpoints are exact. Negative n is treated as 0.
func Lerp(x1, x2 Vector, n int) []Vector {
	if n < 0 {
		n = 0
	}
	out := make([]Vector, n+2)
	out[0] = x1.Clone()
	out[len(out)-1] = x2.Clone()
	step := x2.Sub(x1).Scale(1 / float64(len(out)-1))

	for i := 1; i < len(out)-1; i++ {
		out[i] = out[i-1].Add(step)
	}
	return out
}

// LerpScalar is Lerp over one-dimensional points.
func LerpScalar(a, b float64, n int) []float64 {
	pts := Lerp(Vector{a}, Vector{b}, n)
	out := make([]float64, len(pts))
	for i, p := range pts {
		out[i] = p[0]
	}
	return out
}
