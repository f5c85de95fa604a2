package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"eegscope/canvas"
	"eegscope/hal"
	"eegscope/plot"
)

var colorPanicFG = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// guard runs one frame. A panic is logged with its stack, painted over the
// whole framebuffer and returned as an error so the host loop ends.
func guard(h hal.HAL, frame func() error) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		showPanic(h, v, stack)
		err = fmt.Errorf("app: panic: %v", v)
	}()
	return frame()
}

func showPanic(h hal.HAL, v any, stack []byte) {
	lines := []string{"eegscope panic:", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	c := canvas.New(fb)
	lh := c.LineHeight()
	y := 2
	for _, line := range lines {
		if y+lh > fb.Height() {
			break
		}
		line = strings.ReplaceAll(line, "\t", "  ")
		c.Text(plot.Pt(2, float64(y)), plot.AlignLeftTop, line, colorPanicFG)
		y += lh
	}
	_ = c.Display()
}
