package plot

// Point is a 2D position, either in data space or in screen pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle with corners (x0, y0) and (x1, y1).
func R(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Point{x0, y0}, Max: Point{x1, y1}}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Top() float64    { return r.Min.Y }
func (r Rect) Bottom() float64 { return r.Max.Y }
func (r Rect) Dx() float64     { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64     { return r.Max.Y - r.Min.Y }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Dx() <= 0 || r.Dy() <= 0 }

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Anchor positions text along one axis relative to its reference point.
type Anchor uint8

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// Align positions text relative to the point passed to Surface.Text.
type Align struct {
	X, Y Anchor
}

var (
	AlignCenterTop    = Align{X: AnchorCenter, Y: AnchorStart}
	AlignCenterCenter = Align{X: AnchorCenter, Y: AnchorCenter}
	AlignCenterBottom = Align{X: AnchorCenter, Y: AnchorEnd}
	AlignRightCenter  = Align{X: AnchorEnd, Y: AnchorCenter}
	AlignRightBottom  = Align{X: AnchorEnd, Y: AnchorEnd}
	AlignLeftTop      = Align{X: AnchorStart, Y: AnchorStart}
)
