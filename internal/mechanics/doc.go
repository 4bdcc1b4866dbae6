// Package mechanics solves one-dimensional least-action problems.
//
// A trial path is a Lagrange interpolant through fixed endpoints and a set of
// free interior knots. Its action is integrated with Simpson's rule over the
// local tuple (t, q(t), q̇(t)), where q̇ comes from forward-mode
// differentiation of the interpolant. Nelder-Mead then moves the interior
// knots to minimize the action:
//
//	p := &mechanics.Problem{
//	    L:  mechanics.HarmonicOscillator(1, 1),
//	    T0: 0, Q0: 0,
//	    T1: math.Pi / 2, Q1: 1,
//	    Knots: 3,
//	}
//	sol, err := p.Solve(optim.DefaultOptions())
//
// Lagrangians are written over dual numbers, so the Euler-Lagrange equations
// follow from nested derivatives of L. Acceleration, Trajectory and Shoot use
// them to integrate the true motion and check a solved path against it.
package mechanics
