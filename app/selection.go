package app

import (
	"image/color"

	"eegscope/plot"
)

var (
	colorText   = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorSelBG  = color.RGBA{R: 0x00, G: 0x60, B: 0xd0, A: 0xff}
	colorHeader = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
)

const selectionPad = 4

// selectable lists the rows shown on the selection screen: EEG channels,
// then marker and battery.
func (v *viewer) selectable() []int {
	rows := make([]int, 0, len(v.info.EEG)+2)
	for _, r := range v.info.EEG {
		if r >= 0 && r < len(v.selected) {
			rows = append(rows, r)
		}
	}
	for _, r := range []int{v.info.Marker, v.info.Battery} {
		if r >= 0 && r < len(v.selected) {
			rows = append(rows, r)
		}
	}
	return rows
}

func (v *viewer) moveCursor(d int) {
	n := len(v.selectable())
	if n == 0 {
		v.cursor = 0
		return
	}
	v.cursor = clampInt(v.cursor+d, 0, n-1)
}

// toggleRow flips the selection of the i-th selectable row.
func (v *viewer) toggleRow(i int) {
	rows := v.selectable()
	if i < 0 || i >= len(rows) {
		return
	}
	v.selected[rows[i]] = !v.selected[rows[i]]
}

func (v *viewer) selectionRowHeight() float64 {
	return float64(v.c.LineHeight() + 4)
}

func (v *viewer) selectionTop() float64 {
	return float64(v.area.Min.Y) + selectionPad + 2*v.selectionRowHeight()
}

func (v *viewer) renderSelection(in plot.Input) {
	rh := v.selectionRowHeight()
	left := float64(v.area.Min.X) + selectionPad
	width := float64(v.area.Dx()) - 2*selectionPad

	v.c.FillRect(plot.R(float64(v.area.Min.X), float64(v.area.Min.Y), float64(v.area.Max.X-1), float64(v.area.Min.Y)+rh), colorHeader)
	v.c.Text(plot.Pt(left, float64(v.area.Min.Y)+2), plot.AlignLeftTop, "select channels: "+v.info.Description(), colorText)
	v.c.Text(plot.Pt(left, float64(v.area.Min.Y)+rh+2), plot.AlignLeftTop,
		"1 eeg  2 marker  3 battery  enter/click toggles  s starts the stream", colorDim)

	rows := v.selectable()
	top := v.selectionTop()

	clicked := -1
	if in.Present && in.JustPressed && in.Pos.Y >= top {
		i := int((in.Pos.Y - top) / rh)
		if i >= 0 && i < len(rows) && in.Pos.X >= left && in.Pos.X <= left+width {
			clicked = i
		}
	}
	if clicked >= 0 {
		v.cursor = clicked
		v.toggleRow(clicked)
	}

	for i, row := range rows {
		y := top + float64(i)*rh
		if y+rh > float64(v.area.Max.Y) {
			break
		}
		fg := colorText
		if i == v.cursor {
			v.c.FillRect(plot.R(left, y, left+width, y+rh-1), colorSelBG)
		}
		mark := "[ ] "
		if v.selected[row] {
			mark = "[x] "
		}
		v.c.Text(plot.Pt(left+2, y+2), plot.AlignLeftTop, mark+v.title(row), fg)
	}
}
