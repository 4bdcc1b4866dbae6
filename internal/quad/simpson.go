package quad

type Simpson struct {
	Step float64
}

func NewSimpson(step float64) *Simpson {
	return &Simpson{Step: step}
}

func (s *Simpson) Integrate(f Func, a, b float64) float64 {
	return SimpsonIntegral(f, a, b, s.Step)
}

// SimpsonIntegral applies composite Simpson's rule. It is exact for
// polynomials up to degree 3. A non-positive step selects DefaultStep.
func SimpsonIntegral(f Func, x0, x1, step float64) float64 {
	return composite(simpsonPanel, f, x0, x1, step)
}

func simpsonPanel(f Func, a, b float64) float64 {
	h := (a + b) / 2
	return ((b - a) / 6) * (f(a) + 4*f(h) + f(b))
}
