package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/wjlewis/lagrangian/internal/vec"
)

// x'' = -x as (x, v)
func oscillator(t float64, x vec.Vector) vec.Vector {
	return vec.Vector{x[1], -x[0]}
}

func energy(x vec.Vector) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name string
		tol  float64
	}{
		{"euler", 1e-2},
		{"rk4", 1e-8},
		{"rk45", 1e-8},
		{"verlet", 1e-4},
		{"leapfrog", 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integ, err := ByName(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			_, xs := Solve(integ, oscillator, vec.Vector{1, 0}, 0, 1, 100)
			x := xs[len(xs)-1]

			if math.Abs(x[0]-math.Cos(1)) > tt.tol {
				t.Errorf("position: got %.9f, expected %.9f", x[0], math.Cos(1))
			}
			if math.Abs(x[1]+math.Sin(1)) > tt.tol {
				t.Errorf("velocity: got %.9f, expected %.9f", x[1], -math.Sin(1))
			}
		})
	}
}

func TestSolveEndpoints(t *testing.T) {
	ts, xs := Solve(NewRK4(), oscillator, vec.Vector{1, 0}, 0, 2, 7)

	if len(ts) != 8 || len(xs) != 8 {
		t.Fatalf("expected 8 samples, got %d and %d", len(ts), len(xs))
	}
	if ts[0] != 0 || ts[7] != 2 {
		t.Errorf("times span [%v, %v], expected [0, 2]", ts[0], ts[7])
	}
	if xs[0][0] != 1 || xs[0][1] != 0 {
		t.Errorf("initial state changed: %v", xs[0])
	}
}

func TestSolveBackwards(t *testing.T) {
	_, xs := Solve(NewRK4(), oscillator, vec.Vector{math.Cos(1), -math.Sin(1)}, 1, 0, 100)
	x := xs[len(xs)-1]
	if math.Abs(x[0]-1) > 1e-8 || math.Abs(x[1]) > 1e-8 {
		t.Errorf("backward solve ended at %v, expected [1 0]", x)
	}
}

func TestSolveClampsSteps(t *testing.T) {
	ts, _ := Solve(NewEuler(), oscillator, vec.Vector{1, 0}, 0, 1, 0)
	if len(ts) != 2 {
		t.Errorf("expected one step, got %d samples", len(ts)-1)
	}
}

func TestRK45EnergyConservation(t *testing.T) {
	integ := NewRK45()
	x0 := vec.Vector{1.0, 0.0}

	_, xs := Solve(integ, oscillator, x0, 0, 100, 10000)
	drift := math.Abs(energy(xs[len(xs)-1])-energy(x0)) / energy(x0)

	if drift > 1e-6 {
		t.Errorf("RK45 energy drift too high: %e", drift)
	}
}

func TestVerletEnergyBounded(t *testing.T) {
	x0 := vec.Vector{1.0, 0.0}
	_, xs := Solve(NewVerlet(), oscillator, x0, 0, 100, 1000)

	for i, x := range xs {
		if math.Abs(energy(x)-energy(x0)) > 1e-2 {
			t.Fatalf("energy at sample %d drifted to %v", i, energy(x))
		}
	}
}

func TestRK45StepAdaptive(t *testing.T) {
	integ := NewRK45()

	x, dtNew, ok := integ.StepAdaptive(oscillator, vec.Vector{1, 0}, 0, 0.1, 1e-6)
	if !ok {
		t.Error("small step should be accepted")
	}
	if !x.IsValid() {
		t.Error("StepAdaptive produced invalid state")
	}
	if dtNew <= 0 {
		t.Errorf("StepAdaptive returned invalid dt: %f", dtNew)
	}

	_, shrunk, ok := integ.StepAdaptive(oscillator, vec.Vector{1, 0}, 0, 5, 1e-12)
	if ok {
		t.Error("huge step should be rejected")
	}
	if shrunk >= 5 {
		t.Errorf("rejected step should shrink, got %v", shrunk)
	}
}

func TestRK45SolveAdaptive(t *testing.T) {
	ts, xs, err := NewRK45().SolveAdaptive(oscillator, vec.Vector{1, 0}, 0, math.Pi, 0.5, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if ts[len(ts)-1] != math.Pi {
		t.Errorf("last time %v, expected π", ts[len(ts)-1])
	}
	x := xs[len(xs)-1]
	if math.Abs(x[0]+1) > 1e-6 || math.Abs(x[1]) > 1e-6 {
		t.Errorf("x(π) = %v, expected [-1 0]", x)
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("times not increasing at %d", i)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("nope"); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if got := List(); len(got) != 5 || got[0] != "euler" {
		t.Errorf("List() = %v", got)
	}
}
