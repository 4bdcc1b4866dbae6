package integrators

import "github.com/wjlewis/lagrangian/internal/vec"

// Verlet and Leapfrog expect the state laid out as positions followed by
// velocities, with f returning velocities followed by accelerations.

type Verlet struct {
	scratch vec.Vector
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(f Field, x vec.Vector, t, dt float64) vec.Vector {
	n := len(x)
	half := n / 2
	if len(v.scratch) != n {
		v.scratch = make(vec.Vector, n)
	}

	result := make(vec.Vector, n)
	dx := f(t, x)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	for i := 0; i < half; i++ {
		v.scratch[i] = result[i]
		v.scratch[half+i] = x[half+i]
	}

	dxNew := f(t+dt, v.scratch)

	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}

	return result
}

type Leapfrog struct {
	scratch vec.Vector
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(f Field, x vec.Vector, t, dt float64) vec.Vector {
	n := len(x)
	half := n / 2
	if len(l.scratch) != n {
		l.scratch = make(vec.Vector, n)
	}

	result := make(vec.Vector, n)
	dx := f(t, x)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		l.scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		result[i] = x[i] + l.scratch[half+i]*dt
		l.scratch[i] = result[i]
	}

	dxNew := f(t+dt, l.scratch)

	for i := 0; i < half; i++ {
		result[half+i] = l.scratch[half+i] + dxNew[half+i]*halfDt
	}

	return result
}
