package dual

// Comparisons look only at primal values; tangents never affect ordering.

func Eq(x, y Num) bool {
	if a, b, ok := bothScalar(x, y); ok {
		return a == b
	}
	px, py, ok := descend(x, y)
	return ok && Eq(px, py)
}

func Lt(x, y Num) bool {
	if a, b, ok := bothScalar(x, y); ok {
		return a < b
	}
	px, py, ok := descend(x, y)
	return ok && Lt(px, py)
}

func Lte(x, y Num) bool { return Lt(x, y) || Eq(x, y) }
func Gt(x, y Num) bool  { return !Lte(x, y) }
func Gte(x, y Num) bool { return Gt(x, y) || Eq(x, y) }

// descend steps both operands one level down the primal chain. A Scalar
// stays put so it is compared directly against the other side's primal.
func descend(x, y Num) (Num, Num, bool) {
	_, xd := x.(Dual)
	_, yd := y.(Dual)
	if !xd && !yd {
		return nil, nil, false
	}
	return PrimalOf(x), PrimalOf(y), true
}
