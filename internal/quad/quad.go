// Package quad integrates real functions with fixed-step composite rules.
package quad

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultStep is the partition width used when none is given.
const DefaultStep = 0.1

var ErrUnknownRule = errors.New("quad: unknown rule")

type Func func(float64) float64

type Rule interface {
	Integrate(f Func, a, b float64) float64
}

// panel integrates f over one sub-interval [a, b].
type panel func(f Func, a, b float64) float64

// composite partitions [x0, x1] into ceil((x1-x0)/step) equal panels, so step
// is an upper bound on the actual panel width. The integral is signed.
func composite(p panel, f Func, x0, x1, step float64) float64 {
	if step <= 0 {
		step = DefaultStep
	}
	if x1 < x0 {
		return -composite(p, f, x1, x0, step)
	}

	nSteps := int(math.Ceil((x1 - x0) / step))
	st := (x1 - x0) / float64(nSteps)

	sum := 0.0
	for i := 0; i < nSteps; i++ {
		a := x0 + float64(i)*st
		b := a + st
		sum += p(f, a, b)
	}
	return sum
}

var rules = map[string]func(step float64) Rule{
	"simpson":   func(step float64) Rule { return NewSimpson(step) },
	"trapezoid": func(step float64) Rule { return NewTrapezoid(step) },
	"midpoint":  func(step float64) Rule { return NewMidpoint(step) },
}

func RuleByName(name string, step float64) (Rule, error) {
	fn, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, name)
	}
	return fn(step), nil
}

func ListRules() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
