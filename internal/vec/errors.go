package vec

import "errors"

// ErrEmpty indicates a reduction over zero points.
var ErrEmpty = errors.New("vec: cannot sum 0 points")
