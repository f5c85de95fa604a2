package canvas

import (
	"image/color"
	"math"

	"eegscope/plot"

	"tinygo.org/x/tinyfont"
)

// DefaultFont is the 3x5 pixel font used for tick labels and the console.
var DefaultFont tinyfont.Fonter = &tinyfont.TomThumb

// SetFont replaces the text font; nil restores DefaultFont.
func (c *Canvas) SetFont(f tinyfont.Fonter) {
	if f == nil {
		f = DefaultFont
	}
	c.font = f
}

// Font returns the active text font.
func (c *Canvas) Font() tinyfont.Fonter { return c.font }

// LineHeight is the distance between two text baselines.
func (c *Canvas) LineHeight() int {
	return int(c.font.GetYAdvance())
}

// TextWidth is the rendered width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

// Text draws s positioned relative to at by align.
func (c *Canvas) Text(at plot.Point, align plot.Align, s string, col color.RGBA) {
	if s == "" || !finite(at.X) || !finite(at.Y) {
		return
	}
	w := c.TextWidth(s)
	h := c.LineHeight()

	x := int(math.Round(at.X))
	switch align.X {
	case plot.AnchorCenter:
		x -= w / 2
	case plot.AnchorEnd:
		x -= w
	}
	top := int(math.Round(at.Y))
	switch align.Y {
	case plot.AnchorCenter:
		top -= h / 2
	case plot.AnchorEnd:
		top -= h
	}
	if x < math.MinInt16 || x > math.MaxInt16 || top < math.MinInt16 || top > math.MaxInt16-h {
		return
	}
	tinyfont.WriteLine(c, c.font, int16(x), int16(top+h-1), s, col)
}
