package integrators

import "github.com/wjlewis/lagrangian/internal/vec"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f Field, x vec.Vector, t, dt float64) vec.Vector {
	dx := f(t, x)
	result := make(vec.Vector, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
