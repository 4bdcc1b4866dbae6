// Package integrators steps ordinary differential equations x' = f(t, x).
//
// Integrators may keep scratch buffers between steps and are not safe for
// concurrent use; give each goroutine its own.
package integrators

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wjlewis/lagrangian/internal/vec"
)

var ErrUnknown = errors.New("integrators: unknown integrator")

// Field is the right-hand side of x' = f(t, x).
type Field func(t float64, x vec.Vector) vec.Vector

type Integrator interface {
	Step(f Field, x vec.Vector, t, dt float64) vec.Vector
}

var integrators = map[string]func() Integrator{
	"euler":    func() Integrator { return NewEuler() },
	"rk4":      func() Integrator { return NewRK4() },
	"rk45":     func() Integrator { return NewRK45() },
	"verlet":   func() Integrator { return NewVerlet() },
	"leapfrog": func() Integrator { return NewLeapfrog() },
}

func ByName(name string) (Integrator, error) {
	fn, ok := integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	return fn(), nil
}

func List() []string {
	names := make([]string, 0, len(integrators))
	for name := range integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solve takes n equal steps from t0 to t1 and returns every time and state,
// the initial ones included. n < 1 is treated as 1.
func Solve(integ Integrator, f Field, x0 vec.Vector, t0, t1 float64, n int) ([]float64, []vec.Vector) {
	n = max(n, 1)
	dt := (t1 - t0) / float64(n)

	ts := make([]float64, n+1)
	xs := make([]vec.Vector, n+1)
	ts[0], xs[0] = t0, x0.Clone()

	for i := 1; i <= n; i++ {
		t := t0 + float64(i-1)*dt
		xs[i] = integ.Step(f, xs[i-1], t, dt)
		ts[i] = t0 + float64(i)*dt
	}
	ts[n] = t1
	return ts, xs
}
