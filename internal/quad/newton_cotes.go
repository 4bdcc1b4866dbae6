package quad

type Trapezoid struct {
	Step float64
}

func NewTrapezoid(step float64) *Trapezoid {
	return &Trapezoid{Step: step}
}

func (t *Trapezoid) Integrate(f Func, a, b float64) float64 {
	return composite(trapezoidPanel, f, a, b, t.Step)
}

func trapezoidPanel(f Func, a, b float64) float64 {
	return (b - a) / 2 * (f(a) + f(b))
}

type Midpoint struct {
	Step float64
}

func NewMidpoint(step float64) *Midpoint {
	return &Midpoint{Step: step}
}

func (m *Midpoint) Integrate(f Func, a, b float64) float64 {
	return composite(midpointPanel, f, a, b, m.Step)
}

func midpointPanel(f Func, a, b float64) float64 {
	return (b - a) * f((a+b)/2)
}
