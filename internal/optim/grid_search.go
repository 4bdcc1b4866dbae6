package optim

import (
	"math"

	"github.com/wjlewis/lagrangian/internal/vec"
)

// GridSearch evaluates f on the Cartesian product of per-axis samples.
// It is meant for picking a starting point, not for refinement.
type GridSearch struct {
	ranges [][]float64
}

func NewGridSearch(ranges [][]float64) *GridSearch {
	return &GridSearch{ranges: ranges}
}

// Search returns the best grid point and its value. An empty axis yields a
// nil point and +Inf.
func (g *GridSearch) Search(f Func) (vec.Vector, float64) {
	best := math.Inf(1)
	var bestPoint vec.Vector

	g.searchRecursive(0, make(vec.Vector, len(g.ranges)), f, &best, &bestPoint)

	return bestPoint, best
}

func (g *GridSearch) searchRecursive(
	depth int,
	current vec.Vector,
	f Func,
	best *float64,
	bestPoint *vec.Vector,
) {
	if depth == len(g.ranges) {
		val := f(current)
		if val < *best {
			*best = val
			*bestPoint = current.Clone()
		}
		return
	}

	for _, val := range g.ranges[depth] {
		current[depth] = val
		g.searchRecursive(depth+1, current, f, best, bestPoint)
	}
}
