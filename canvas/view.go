package canvas

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// View is a rectangular window of a Canvas with its own origin. It is the
// display handed to the console terminal.
type View struct {
	c *Canvas
	r image.Rectangle
}

// View returns a displayer for the part of c inside r.
func (c *Canvas) View(r image.Rectangle) *View {
	return &View{c: c, r: r.Intersect(c.bounds())}
}

// Bounds is the view rectangle in canvas pixels.
func (v *View) Bounds() image.Rectangle { return v.r }

func (v *View) Size() (x, y int16) {
	return int16(v.r.Dx()), int16(v.r.Dy())
}

func (v *View) SetPixel(x, y int16, col color.RGBA) {
	p := image.Pt(int(x)+v.r.Min.X, int(y)+v.r.Min.Y)
	if !p.In(v.r) {
		return
	}
	v.c.set(p.X, p.Y, col)
}

func (v *View) Display() error { return v.c.Display() }

func (v *View) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Add(v.r.Min)
	v.c.fill(r.Intersect(v.r), col)
	return nil
}

// ScrollUp shifts the view content up by lines and clears the exposed rows.
func (v *View) ScrollUp(lines int16, bg color.RGBA) error {
	n := int(lines)
	if n <= 0 || v.r.Empty() {
		return nil
	}
	if n >= v.r.Dy() {
		return v.FillRectangle(0, 0, int16(v.r.Dx()), int16(v.r.Dy()), bg)
	}

	fb := v.c.fb
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	x0 := v.r.Min.X * 2
	x1 := v.r.Max.X * 2
	for y := v.r.Min.Y; y < v.r.Max.Y-n; y++ {
		dst := y*stride + x0
		src := (y+n)*stride + x0
		if src+(x1-x0) > len(buf) {
			break
		}
		copy(buf[dst:dst+(x1-x0)], buf[src:src+(x1-x0)])
	}
	return v.FillRectangle(0, int16(v.r.Dy()-n), int16(v.r.Dx()), int16(n), bg)
}

// SetScroll is a no-op: the console scrolls in software.
func (v *View) SetScroll(line int16) {
	_ = line
}

func (v *View) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
