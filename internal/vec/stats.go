package vec

import "math"

// Mean of an empty slice is NaN.
func Mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance is the population variance.
func Variance(xs []float64) float64 {
	mu := Mean(xs)
	sq := make([]float64, len(xs))
	for i, x := range xs {
		d := x - mu
		sq[i] = d * d
	}
	return Mean(sq)
}

func StdDev(xs []float64) float64 {
	return math.Sqrt(Variance(xs))
}
