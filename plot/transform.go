package plot

// epsilon replaces a zero or negative denominator in the transform.
const epsilon = 1e-9

// Transform maps data coordinates in [0, XEnd] x [YStart, YEnd] onto Rect.
// The vertical axis is flipped: YEnd sits on the top edge.
type Transform struct {
	Rect   Rect
	XEnd   float64
	YStart float64
	YEnd   float64
}

// NewTransform returns the transform for the viewport v drawn into r.
func NewTransform(r Rect, xEnd float64, v *ViewportState) Transform {
	start, end := v.Range()
	return Transform{Rect: r, XEnd: xEnd, YStart: start, YEnd: end}
}

func (t Transform) xSpan() float64 { return clampDenom(t.XEnd) }
func (t Transform) ySpan() float64 { return clampDenom(t.YEnd - t.YStart) }

// ToScreen maps a data point to screen pixels.
func (t Transform) ToScreen(p Point) Point {
	return Point{
		X: t.Rect.Left() + p.X/t.xSpan()*t.Rect.Dx(),
		Y: t.Rect.Top() + (t.YEnd-p.Y)/t.ySpan()*t.Rect.Dy(),
	}
}

// ToData maps a screen position back to data space.
func (t Transform) ToData(p Point) Point {
	return Point{
		X: (p.X - t.Rect.Left()) / clampDenom(t.Rect.Dx()) * t.xSpan(),
		Y: t.YEnd - (p.Y-t.Rect.Top())/clampDenom(t.Rect.Dy())*t.ySpan(),
	}
}

func clampDenom(d float64) float64 {
	if d <= 0 || d != d {
		return epsilon
	}
	return d
}
