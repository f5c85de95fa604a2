package plot

import (
	"fmt"
	"image/color"
)

// Surface receives the draw commands of one plot. Coordinates are screen
// pixels.
type Surface interface {
	FillRect(r Rect, c color.RGBA)
	StrokeRect(r Rect, c color.RGBA)
	Line(a, b Point, c color.RGBA)
	Polyline(pts []Point, c color.RGBA)
	Text(at Point, align Align, s string, c color.RGBA)
	// Clip restricts later drawing to r until Unclip.
	Clip(r Rect)
	Unclip()
}

const (
	marginLeft   = 40.0
	marginBottom = 20.0
	marginTop    = 10.0
	marginRight  = 4.0

	tickLen     = 5.0
	xLabelDrop  = 12.0
	yLabelGap   = 3.0
	cursorInset = 4.0
)

var (
	colorPlotBG  = color.RGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	colorFrame   = color.RGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xff}
	colorGrid    = color.RGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xff}
	colorTick    = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	colorTitle   = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	colorReadout = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

// Options configure one plot for one frame.
type Options struct {
	// Size of the canvas, tick label margins included.
	Size Point
	// XEnd is the end of the horizontal domain [0, XEnd], normally the
	// number of samples on screen.
	XEnd float64

	Title           string
	ShowTitle       bool
	ShowXTicks      bool
	ShowYTicks      bool
	ShowCursorValue bool

	AllowDrag bool
	AllowZoom bool

	Ticks             TickPolicy
	ScrollSensitivity float64

	// Channel picks the line color from Palette.
	Channel int
}

func (o Options) scrollSensitivity() float64 {
	if o.ScrollSensitivity <= 0 || !finite(o.ScrollSensitivity) {
		return DefaultScrollSensitivity
	}
	return o.ScrollSensitivity
}

// Geometry is the screen layout of one plot: the whole canvas and the
// plot rectangle inside the tick label margins.
type Geometry struct {
	Canvas Rect
	Plot   Rect
}

// Layout computes the geometry of a plot whose canvas starts at origin.
func Layout(origin Point, o Options) Geometry {
	canvas := Rect{Min: origin, Max: Point{X: origin.X + o.Size.X, Y: origin.Y + o.Size.Y}}

	var left, bottom, top float64
	if o.ShowYTicks {
		left = marginLeft
	}
	if o.ShowXTicks {
		bottom = marginBottom
	}
	if o.ShowTitle {
		top = marginTop
	}
	plot := Rect{
		Min: Point{X: canvas.Min.X + left, Y: canvas.Min.Y + top},
		Max: Point{X: canvas.Max.X - marginRight, Y: canvas.Max.Y - bottom},
	}
	if plot.Max.X < plot.Min.X {
		plot.Max.X = plot.Min.X
	}
	if plot.Max.Y < plot.Min.Y {
		plot.Max.Y = plot.Min.Y
	}
	return Geometry{Canvas: canvas, Plot: plot}
}

// Series pairs each value of a sample window with its index.
func Series(values []float64) []Point {
	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{X: float64(i), Y: v}
	}
	return pts
}

// Plotter draws plots whose view state persists across frames.
type Plotter struct {
	reg *Registry
}

// NewPlotter returns a Plotter that keeps its view state in reg.
func NewPlotter(reg *Registry) *Plotter {
	if reg == nil {
		reg = NewRegistry(DefaultYStart, DefaultYEnd)
	}
	return &Plotter{reg: reg}
}

// Registry returns the view state store.
func (p *Plotter) Registry() *Registry { return p.reg }

// Render runs one frame of the plot identified by id: apply this frame's
// gestures to its viewport, then draw the frame, grid, ticks and the
// samples.
func (p *Plotter) Render(s Surface, id string, origin Point, samples []Point, in Input, o Options) {
	st := p.reg.GetOrCreate(id)
	g := Layout(origin, o)
	st.HandleInput(in, g, o)
	draw(s, st, g, samples, in, o)
}

func draw(s Surface, st *ViewportState, g Geometry, samples []Point, in Input, o Options) {
	r := g.Plot
	tf := NewTransform(r, o.XEnd, st)

	s.FillRect(r, colorPlotBG)
	s.StrokeRect(r, colorFrame)

	if o.ShowTitle && o.Title != "" {
		s.Text(Point{X: r.Left() + r.Dx()/2, Y: r.Top() - 2}, AlignCenterBottom, o.Title, colorTitle)
	}

	for _, x := range NiceTicks(0, o.XEnd) {
		if x < 0 || x > o.XEnd {
			continue
		}
		at := tf.ToScreen(Point{X: x, Y: st.yStart})
		if x > 0 && x < o.XEnd {
			s.Line(Point{X: at.X, Y: r.Bottom()}, Point{X: at.X, Y: r.Top()}, colorGrid)
		}
		if o.ShowXTicks {
			s.Line(Point{X: at.X, Y: r.Bottom()}, Point{X: at.X, Y: r.Bottom() - tickLen}, colorTick)
			s.Text(Point{X: at.X, Y: r.Bottom() + xLabelDrop}, AlignCenterCenter, FormatTick(x), colorTick)
		}
	}

	for _, y := range o.Ticks.Ticks(st.yStart, st.yEnd) {
		if y < st.yStart || y > st.yEnd {
			continue
		}
		at := tf.ToScreen(Point{X: 0, Y: y})
		if y > st.yStart && y < st.yEnd {
			s.Line(Point{X: r.Left(), Y: at.Y}, Point{X: r.Right(), Y: at.Y}, colorGrid)
		}
		if o.ShowYTicks {
			s.Line(Point{X: r.Left(), Y: at.Y}, Point{X: r.Left() + tickLen, Y: at.Y}, colorTick)
			s.Text(Point{X: r.Left() - yLabelGap, Y: at.Y}, AlignRightCenter, FormatTick(y), colorTick)
		}
	}

	s.Clip(r)
	defer s.Unclip()

	if len(samples) > 0 {
		pts := make([]Point, len(samples))
		for i, d := range samples {
			pts[i] = tf.ToScreen(d)
		}
		s.Polyline(pts, PaletteColor(o.Channel))
	}

	if o.ShowCursorValue && in.Present && r.Contains(in.Pos) {
		d := tf.ToData(in.Pos)
		s.Text(Point{X: r.Right() - cursorInset, Y: r.Bottom() - cursorInset}, AlignRightBottom,
			fmt.Sprintf("%.0f, %.1f", d.X, d.Y), colorReadout)
	}
}
