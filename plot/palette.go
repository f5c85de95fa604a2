package plot

import "image/color"

// Palette holds the line colors. Channel n draws in Palette[n%len(Palette)].
var Palette = [16]color.RGBA{
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xe0, A: 0xff},
	{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff},
	{R: 0x90, G: 0xee, B: 0x90, A: 0xff},
	{R: 0xff, G: 0x80, B: 0x80, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	{R: 0x40, G: 0xe0, B: 0xd0, A: 0xff},
	{R: 0x40, G: 0x80, B: 0xff, A: 0xff},
	{R: 0x80, G: 0x80, B: 0xff, A: 0xff},
	{R: 0xd2, G: 0x69, B: 0x1e, A: 0xff},
	{R: 0x20, G: 0xb0, B: 0x40, A: 0xff},
	{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	{R: 0xf0, G: 0xe6, B: 0x8c, A: 0xff},
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
}

// PaletteColor returns the line color for a channel index.
func PaletteColor(channel int) color.RGBA {
	n := len(Palette)
	i := channel % n
	if i < 0 {
		i += n
	}
	return Palette[i]
}
