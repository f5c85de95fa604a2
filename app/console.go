package app

import (
	"image"
	"image/color"

	"eegscope/canvas"
	"eegscope/hal"

	"tinygo.org/x/tinyterm"
)

var colorConsoleBG = color.RGBA{R: 0x08, G: 0x08, B: 0x08, A: 0xff}

// console is the status pane at the bottom of the window. Every line also
// goes to the HAL logger.
type console struct {
	log  hal.Logger
	view *canvas.View
	term *tinyterm.Terminal
}

func newConsole(log hal.Logger, c *canvas.Canvas, r image.Rectangle) *console {
	con := &console{log: log}
	if r.Empty() {
		return con
	}
	con.view = c.View(r)
	_ = con.view.FillRectangle(0, 0, int16(r.Dx()), int16(r.Dy()), colorConsoleBG)

	h := int16(c.LineHeight())
	con.term = tinyterm.NewTerminal(con.view)
	con.term.Configure(&tinyterm.Config{
		Font:              c.Font(),
		FontHeight:        h,
		FontOffset:        h - 1,
		UseSoftwareScroll: true,
	})
	return con
}

func (c *console) Println(s string) {
	if c.log != nil {
		c.log.WriteLineString(s)
	}
	if c.term != nil {
		_, _ = c.term.Write([]byte(s + "\n"))
	}
}
