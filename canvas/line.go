package canvas

import (
	"image"
	"image/color"
	"math"

	"eegscope/plot"
)

// Line draws a one pixel line from a to b. The segment is cut to the
// visible window first, so far off-screen points cost nothing.
func (c *Canvas) Line(a, b plot.Point, col color.RGBA) {
	w := c.window()
	if w.Empty() {
		return
	}
	a, b, ok := clipSegment(a, b, w)
	if !ok {
		return
	}
	c.bresenham(int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), col)
}

// Polyline joins consecutive points. Segments touching a non-finite point
// are skipped.
func (c *Canvas) Polyline(pts []plot.Point, col color.RGBA) {
	if len(pts) == 1 {
		c.Line(pts[0], pts[0], col)
		return
	}
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], col)
	}
}

func (c *Canvas) bresenham(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment cuts a-b to the pixel window w (Liang-Barsky).
func clipSegment(a, b plot.Point, w image.Rectangle) (plot.Point, plot.Point, bool) {
	if !finite(a.X) || !finite(a.Y) || !finite(b.X) || !finite(b.Y) {
		return a, b, false
	}
	xmin, ymin := float64(w.Min.X), float64(w.Min.Y)
	xmax, ymax := float64(w.Max.X-1), float64(w.Max.Y-1)

	dx := b.X - a.X
	dy := b.Y - a.Y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, a.X - xmin},
		{dx, xmax - a.X},
		{-dy, a.Y - ymin},
		{dy, ymax - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	na := plot.Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	nb := plot.Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	return na, nb, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
