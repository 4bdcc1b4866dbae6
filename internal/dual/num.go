package dual

import (
	"fmt"
	"math"
)

// Num is a Scalar or a Dual. The interface is sealed.
type Num interface {
	fmt.Stringer
	isNum()
}

// Scalar is a base real number.
type Scalar float64

// Dual is Primal + Tangent·ε where ε² = 0.
type Dual struct {
	Primal  Num
	Tangent Num
}

func (Scalar) isNum() {}
func (Dual) isNum()   {}

func (s Scalar) String() string {
	return fmt.Sprintf("%g", float64(s))
}

func (d Dual) String() string {
	return fmt.Sprintf("(%s + %sε)", d.Primal, d.Tangent)
}

// Fn is a function over the algebra.
type Fn func(Num) Num

// Lift wraps a real number.
func Lift(x float64) Num {
	return Scalar(x)
}

// Scalars lifts every element of xs.
func Scalars(xs ...float64) []Num {
	out := make([]Num, len(xs))
	for i, x := range xs {
		out[i] = Scalar(x)
	}
	return out
}

// Float follows the primal chain down to the underlying real value.
func Float(x Num) float64 {
	for {
		switch v := x.(type) {
		case Scalar:
			return float64(v)
		case Dual:
			x = v.Primal
		default:
			return math.NaN()
		}
	}
}

// PrimalOf returns the primal part; a Scalar is its own primal.
func PrimalOf(x Num) Num {
	if d, ok := x.(Dual); ok {
		return d.Primal
	}
	return x
}

// TangentOf returns the tangent part; a Scalar has tangent zero.
func TangentOf(x Num) Num {
	if d, ok := x.(Dual); ok {
		return d.Tangent
	}
	return Scalar(0)
}

// Depth reports how many Dual layers wrap the deepest primal or tangent.
func Depth(x Num) int {
	d, ok := x.(Dual)
	if !ok {
		return 0
	}
	return 1 + max(Depth(d.Primal), Depth(d.Tangent))
}

// split decomposes x into (primal, tangent), promoting a Scalar to (s, 0).
func split(x Num) (Num, Num) {
	if d, ok := x.(Dual); ok {
		return d.Primal, d.Tangent
	}
	return x, Scalar(0)
}

func bothScalar(x, y Num) (Scalar, Scalar, bool) {
	a, ok := x.(Scalar)
	if !ok {
		return 0, 0, false
	}
	b, ok := y.(Scalar)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}
