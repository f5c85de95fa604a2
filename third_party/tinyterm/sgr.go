package tinyterm

import "image/color"

// SGR parameter values understood by the terminal.
const (
	SGRReset          = 0
	SGRBold           = 1
	SGRFgBlack        = 30
	SGRFgRed          = 31
	SGRFgGreen        = 32
	SGRFgYellow       = 33
	SGRFgBlue         = 34
	SGRFgMagenta      = 35
	SGRFgCyan         = 36
	SGRFgWhite        = 37
	SGRSetFgColor     = 38
	SGRDefaultFgColor = 39
	SGRBgBlack        = 40
	SGRBgRed          = 41
	SGRBgGreen        = 42
	SGRBgYellow       = 43
	SGRBgBlue         = 44
	SGRBgMagenta      = 45
	SGRBgCyan         = 46
	SGRBgWhite        = 47
	SGRSetBgColor     = 48
	SGRDefaultBgColor = 49
)

// Color is an index into the 16 color ANSI palette.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colors = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0x00, A: 0xff},
	{R: 0xaa, G: 0x55, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff},
	{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff},
	{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	{R: 0x55, G: 0xff, B: 0x55, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x55, A: 0xff},
	{R: 0x55, G: 0x55, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x55, B: 0xff, A: 0xff},
	{R: 0x55, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

type sgrAttrs struct {
	attrs byte
	fgcol color.RGBA
	bgcol color.RGBA
}

func (a *sgrAttrs) reset() {
	a.attrs = 0
	a.fgcol = colors[ColorWhite]
	a.bgcol = colors[ColorBlack]
}

func (a *sgrAttrs) bold() bool { return a.attrs&SGRBold != 0 }

func (a *sgrAttrs) setFG(c Color) {
	if a.bold() && c < 8 {
		c += 8
	}
	a.fgcol = colors[int(c)%len(colors)]
}

func (a *sgrAttrs) setBG(c Color) {
	a.bgcol = colors[int(c)%len(colors)]
}
