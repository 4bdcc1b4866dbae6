package integrators

import (
	"errors"
	"math"

	"github.com/wjlewis/lagrangian/internal/vec"
)

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

const (
	DefaultTolerance = 1e-6
	maxAdaptiveSteps = 1_000_000
)

var ErrStepLimit = errors.New("integrators: adaptive step limit reached")

type RK45 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewRK45() *RK45 {
	return &RK45{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

// Step takes one fifth-order step of size dt regardless of the error
// estimate.
func (r *RK45) Step(f Field, x vec.Vector, t, dt float64) vec.Vector {
	newX, _, _ := r.StepAdaptive(f, x, t, dt, DefaultTolerance)
	return newX
}

// StepAdaptive takes one step and proposes the next step size. ok reports
// whether the scaled error estimate was within tol.
func (r *RK45) StepAdaptive(f Field, x vec.Vector, t, dt, tol float64) (xNew vec.Vector, dtNew float64, ok bool) {
	n := len(x)

	k1 := f(t, x)

	x2 := make(vec.Vector, n)
	for i := 0; i < n; i++ {
		x2[i] = x[i] + dt*b21*k1[i]
	}
	k2 := f(t+a2*dt, x2)

	x3 := make(vec.Vector, n)
	for i := 0; i < n; i++ {
		x3[i] = x[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := f(t+a3*dt, x3)

	x4 := make(vec.Vector, n)
	for i := 0; i < n; i++ {
		x4[i] = x[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := f(t+a4*dt, x4)

	x5 := make(vec.Vector, n)
	for i := 0; i < n; i++ {
		x5[i] = x[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := f(t+a5*dt, x5)

	x6 := make(vec.Vector, n)
	for i := 0; i < n; i++ {
		x6[i] = x[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := f(t+dt, x6)

	xNew = make(vec.Vector, n)
	for i := 0; i < n; i++ {
		xNew[i] = x[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := f(t+dt, xNew)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := math.Abs(x[i]) + math.Abs(dt*k1[i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	errRatio := errMax / tol

	switch {
	case errRatio > 1:
		dtNew = dt * math.Max(r.minScale, r.safety*math.Pow(errRatio, -0.25))
	case errRatio > 0:
		dtNew = dt * math.Min(r.maxScale, r.safety*math.Pow(errRatio, -0.2))
	default:
		dtNew = dt * r.maxScale
	}

	return xNew, dtNew, errRatio <= 1
}

// SolveAdaptive integrates from t0 to t1 starting with step dt, rejecting
// steps whose error exceeds tol. The last step is shortened to land on t1.
func (r *RK45) SolveAdaptive(f Field, x0 vec.Vector, t0, t1, dt, tol float64) ([]float64, []vec.Vector, error) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	dir := 1.0
	if t1 < t0 {
		dir = -1
	}
	dt = dir * math.Abs(dt)
	if dt == 0 {
		dt = (t1 - t0) / 100
	}

	ts := []float64{t0}
	xs := []vec.Vector{x0.Clone()}
	t, x := t0, x0.Clone()

	for i := 0; dir*(t1-t) > 0; i++ {
		if i >= maxAdaptiveSteps {
			return ts, xs, ErrStepLimit
		}
		if dir*(t+dt-t1) > 0 {
			dt = t1 - t
		}

		xNew, dtNew, ok := r.StepAdaptive(f, x, t, dt, tol)
		if ok {
			t += dt
			if dir*(t1-t) < 1e-12*math.Abs(t1-t0) {
				t = t1
			}
			x = xNew
			ts = append(ts, t)
			xs = append(xs, x)
		}
		dt = dtNew
	}
	return ts, xs, nil
}
