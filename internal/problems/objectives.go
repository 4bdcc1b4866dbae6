package problems

func Bowl(x []float64) float64 {
	a := x[0] - 1
	b := x[1] - 2
	return a*a + b*b
}

func Rosenbrock(x []float64) float64 {
	a := 1 - x[0]
	b := x[1] - x[0]*x[0]
	return a*a + 100*b*b
}

// Himmelblau has four global minima; (3, 2) is the one listed.
func Himmelblau(x []float64) float64 {
	a := x[0]*x[0] + x[1] - 11
	b := x[0] + x[1]*x[1] - 7
	return a*a + b*b
}

func Booth(x []float64) float64 {
	a := x[0] + 2*x[1] - 7
	b := 2*x[0] + x[1] - 5
	return a*a + b*b
}
