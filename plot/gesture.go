package plot

// DefaultScrollSensitivity scales one unit of scroll delta into a zoom factor.
const DefaultScrollSensitivity = 0.01

// maxScroll bounds the scroll delta consumed in one frame.
const maxScroll = 10.0

// Input is the pointer state for one frame.
type Input struct {
	// Pos is the pointer position in screen pixels, valid when Present.
	Pos     Point
	Present bool
	Pressed bool
	// JustPressed marks the frame the button went down. Only a press
	// edge starts a drag, so a held button swept over another plot
	// leaves it alone.
	JustPressed bool
	// Scroll is the vertical scroll delta this frame. Positive zooms in.
	Scroll float64
}

// HandleInput applies this frame's drag and zoom gestures to v.
//
// A drag starts on the frame the button goes down inside the plot
// rectangle and continues while it stays pressed inside the canvas. Panning moves the
// range by the data-space distance the pointer travelled, measured with the
// range as it was before this frame. Scrolling over the plot zooms around
// the pointer.
func (v *ViewportState) HandleInput(in Input, g Geometry, o Options) {
	if o.AllowDrag {
		v.drag(in, g, o.XEnd)
	} else {
		v.endDrag()
	}
	if o.AllowZoom {
		v.zoom(in, g.Plot, o.scrollSensitivity())
	}
}

func (v *ViewportState) drag(in Input, g Geometry, xEnd float64) {
	engaged := in.Present && in.Pressed && g.Canvas.Contains(in.Pos)

	switch v.gesture {
	case Idle:
		if engaged && in.JustPressed && g.Plot.Contains(in.Pos) {
			v.startDrag(in.Pos)
		}
	case Dragging:
		if !engaged {
			v.endDrag()
			return
		}
		tf := NewTransform(g.Plot, xEnd, v)
		d := tf.ToData(v.lastPointer).Y - tf.ToData(in.Pos).Y
		if finite(d) {
			v.yStart += d
			v.yEnd += d
		}
		v.lastPointer = in.Pos
	}
}

func (v *ViewportState) zoom(in Input, plot Rect, sensitivity float64) {
	if !in.Present || in.Scroll == 0 || !plot.Contains(in.Pos) {
		return
	}
	scroll := in.Scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < -maxScroll {
		scroll = -maxScroll
	}
	factor := -sensitivity * scroll
	fraction := (plot.Bottom() - in.Pos.Y) / clampDenom(plot.Dy())
	span := v.Span()
	v.SetRange(v.yStart-factor*fraction*span, v.yEnd+factor*(1-fraction)*span)
}
