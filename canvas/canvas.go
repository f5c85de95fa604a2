// Package canvas draws plot.Surface commands into an RGB565 framebuffer.
// A Canvas is also a drivers.Displayer, so tinyfont and tinyterm can paint
// onto the same pixels.
package canvas

import (
	"image"
	"image/color"
	"math"

	"eegscope/hal"
	"eegscope/plot"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Canvas is a framebuffer-backed drawing surface.
type Canvas struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter

	// clip is the active pixel window, half-open. It always lies inside
	// the framebuffer.
	clip    image.Rectangle
	clipped bool
}

var (
	_ plot.Surface      = (*Canvas)(nil)
	_ drivers.Displayer = (*Canvas)(nil)
)

// New returns a Canvas drawing into fb with the default font.
func New(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb, font: DefaultFont}
}

// Framebuffer returns the target framebuffer.
func (c *Canvas) Framebuffer() hal.Framebuffer { return c.fb }

func (c *Canvas) bounds() image.Rectangle {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 || c.fb.Buffer() == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, c.fb.Width(), c.fb.Height())
}

func (c *Canvas) window() image.Rectangle {
	if c.clipped {
		return c.clip
	}
	return c.bounds()
}

// Clear fills the whole framebuffer, ignoring the clip window.
func (c *Canvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.window()) {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	buf := c.fb.Buffer()
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (c *Canvas) fill(r image.Rectangle, col color.RGBA) {
	r = r.Intersect(c.window())
	if r.Empty() {
		return
	}
	pixel := hal.RGB565(col.R, col.G, col.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	buf := c.fb.Buffer()
	stride := c.fb.StrideBytes()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := py * stride
		for px := r.Min.X; px < r.Max.X; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// Size implements drivers.Displayer.
func (c *Canvas) Size() (x, y int16) {
	b := c.bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. It honours the clip window.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.set(int(x), int(y), col)
}

// Display presents the framebuffer.
func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	c.fill(image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)), col)
	return nil
}

func (c *Canvas) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// pixelRect covers every pixel touched by r, edges included.
func pixelRect(r plot.Rect) image.Rectangle {
	if !finiteRect(r) {
		return image.Rectangle{}
	}
	x0 := clampCoord(math.Round(r.Min.X))
	y0 := clampCoord(math.Round(r.Min.Y))
	x1 := clampCoord(math.Round(r.Max.X))
	y1 := clampCoord(math.Round(r.Max.Y))
	return image.Rect(x0, y0, x1+1, y1+1)
}

// FillRect fills r including its edges.
func (c *Canvas) FillRect(r plot.Rect, col color.RGBA) {
	c.fill(pixelRect(r), col)
}

// StrokeRect draws the one pixel outline of r.
func (c *Canvas) StrokeRect(r plot.Rect, col color.RGBA) {
	p := pixelRect(r)
	if p.Empty() {
		return
	}
	c.fill(image.Rect(p.Min.X, p.Min.Y, p.Max.X, p.Min.Y+1), col)
	c.fill(image.Rect(p.Min.X, p.Max.Y-1, p.Max.X, p.Max.Y), col)
	c.fill(image.Rect(p.Min.X, p.Min.Y, p.Min.X+1, p.Max.Y), col)
	c.fill(image.Rect(p.Max.X-1, p.Min.Y, p.Max.X, p.Max.Y), col)
}

// Clip restricts drawing to r, edges included, until Unclip. Clips do not
// nest.
func (c *Canvas) Clip(r plot.Rect) {
	c.clip = pixelRect(r).Intersect(c.bounds())
	c.clipped = true
}

func (c *Canvas) Unclip() {
	c.clipped = false
	c.clip = image.Rectangle{}
}

func finiteRect(r plot.Rect) bool {
	return finite(r.Min.X) && finite(r.Min.Y) && finite(r.Max.X) && finite(r.Max.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

const maxCoord = 1 << 20

func clampCoord(v float64) int {
	if v < -maxCoord {
		return -maxCoord
	}
	if v > maxCoord {
		return maxCoord
	}
	return int(v)
}
