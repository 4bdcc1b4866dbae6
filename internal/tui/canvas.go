package tui

import (
	"math"

	"github.com/wjlewis/lagrangian/internal/optim"
)

type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = make([]rune, w)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *canvas) line(x1, y1, x2, y2 int, r rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		c.set(x1, y1, r)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (c *canvas) rows() []string {
	out := make([]string, len(c.cells))
	for i, row := range c.cells {
		out[i] = string(row)
	}
	return out
}

// bounds is the view window in objective coordinates.
type bounds struct {
	minX, maxX float64
	minY, maxY float64
}

// fitBounds covers the first two coordinates of every vertex in the
// trace, padded by 5%.
func fitBounds(trace []optim.Iteration) bounds {
	b := bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
	for _, it := range trace {
		for _, v := range it.Simplex {
			x, y := coords(v)
			b.minX = math.Min(b.minX, x)
			b.maxX = math.Max(b.maxX, x)
			b.minY = math.Min(b.minY, y)
			b.maxY = math.Max(b.maxY, y)
		}
	}
	if math.IsInf(b.minX, 1) {
		return bounds{-1, 1, -1, 1}
	}

	padX := math.Max((b.maxX-b.minX)*0.05, 1e-9)
	padY := math.Max((b.maxY-b.minY)*0.05, 1e-9)
	b.minX -= padX
	b.maxX += padX
	b.minY -= padY
	b.maxY += padY
	return b
}

func (b bounds) project(x, y float64, w, h int) (int, int) {
	px := int((x - b.minX) / (b.maxX - b.minX) * float64(w-1))
	py := int((b.maxY - y) / (b.maxY - b.minY) * float64(h-1))
	return px, py
}

// coords reads a vertex as a point in the plane. One-dimensional points
// sit on y = 0.
func coords(v optim.Vertex) (float64, float64) {
	switch len(v.Point) {
	case 0:
		return 0, 0
	case 1:
		return v.Point[0], 0
	}
	return v.Point[0], v.Point[1]
}

func drawSimplex(c *canvas, b bounds, simplex []optim.Vertex) {
	pts := make([][2]int, len(simplex))
	for i, v := range simplex {
		x, y := coords(v)
		pts[i][0], pts[i][1] = b.project(x, y, c.w, c.h)
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			c.line(pts[i][0], pts[i][1], pts[j][0], pts[j][1], '·')
		}
	}
	for i := len(pts) - 1; i >= 0; i-- {
		mark := '○'
		if i == 0 {
			mark = '●'
		}
		c.set(pts[i][0], pts[i][1], mark)
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	out := make([]rune, 0, width)
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		idx = max(0, min(idx, 7))
		out = append(out, chars[idx])
	}
	return string(out)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
