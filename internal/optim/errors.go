package optim

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionTooSmall indicates a simplex with fewer than 3 points.
	ErrDimensionTooSmall = errors.New("optim: dimension must be at least 2")

	// ErrNoStarts indicates MultiStart was given no initial simplices.
	ErrNoStarts = errors.New("optim: no starting simplices")
)

// RunError wraps a failure of one start in a MultiStart batch.
type RunError struct {
	Start   int
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("start %d: %v", e.Start, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
