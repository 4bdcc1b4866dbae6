// Package vec provides the plain float64 vector arithmetic used by the
// simplex optimizer.
package vec

import "math"

type Vector []float64

func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

func (v Vector) IsValid() bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func (v Vector) Norm() float64 {
	sum := 0.0
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Add is component-wise. Components missing from other read as NaN.
func (v Vector) Add(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] + at(other, i)
	}
	return result
}

func (v Vector) Sub(other Vector) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] - at(other, i)
	}
	return result
}

func (v Vector) Scale(factor float64) Vector {
	result := make(Vector, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

func at(v Vector, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return math.NaN()
}

// Sum adds points left to right.
func Sum(points ...Vector) (Vector, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	acc := points[0].Clone()
	for _, p := range points[1:] {
		acc = acc.Add(p)
	}
	return acc, nil
}

func Centroid(points ...Vector) (Vector, error) {
	s, err := Sum(points...)
	if err != nil {
		return nil, err
	}
	return s.Scale(1 / float64(len(points))), nil
}
