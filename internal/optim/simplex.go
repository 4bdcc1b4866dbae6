package optim

import "github.com/wjlewis/lagrangian/internal/vec"

// SimplexAround builds the axis-aligned simplex {c, c+size·e₁, …, c+size·eₙ}.
func SimplexAround(center vec.Vector, size float64) []vec.Vector {
	out := make([]vec.Vector, 0, len(center)+1)
	out = append(out, center.Clone())
	for i := range center {
		p := center.Clone()
		p[i] += size
		out = append(out, p)
	}
	return out
}
