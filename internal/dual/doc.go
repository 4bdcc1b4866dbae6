// Package dual implements a recursive dual-number algebra for forward-mode
// automatic differentiation.
//
// A [Num] is either a [Scalar] or a [Dual] whose primal and tangent parts are
// themselves Num values. Because the parts recurse, a Dual may hold another
// Dual, producing a tower of infinitesimals:
//
//   - [Scalar]: a plain real number
//   - [Dual]: primal + tangent·ε with ε² = 0
//   - [Derivative]: lifts f into its derivative by seeding Dual{x, 1}
//
// # Example
//
//	cube := func(x dual.Num) dual.Num { return dual.Pow(x, 3) }
//	d1 := dual.Differentiate(cube)                      // 3x²
//	d2 := dual.Differentiate(dual.Derivative(cube))     // 6x
//	d1(2), d2(2)                                        // 12, 12
//
// Functions passed to Derivative must be written with the operations of this
// package; native float64 arithmetic drops the tangent silently.
//
// # Thread Safety
//
// Num values are immutable and every operation allocates its result, so all
// functions are safe for concurrent use.
package dual
