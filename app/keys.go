package app

import (
	"fmt"

	"eegscope/hal"
	"eegscope/plot"
)

func (v *viewer) drainKeys() error {
	in := v.h.Input()
	if in == nil {
		return nil
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return nil
	}
	ch := kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if !ev.Press {
				continue
			}
			if err := v.handleKey(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (v *viewer) handleKey(ev hal.KeyEvent) error {
	streaming := v.board.Streaming()
	switch ev.Code {
	case hal.KeyEscape:
		v.con.Println("quit")
		return hal.ErrStop
	case hal.KeyUp:
		if streaming {
			v.setSamples(v.samples + samplesStep)
		} else {
			v.moveCursor(-1)
		}
		return nil
	case hal.KeyDown:
		if streaming {
			v.setSamples(v.samples - samplesStep)
		} else {
			v.moveCursor(1)
		}
		return nil
	case hal.KeyLeft:
		v.setColumns(v.columns - 1)
		return nil
	case hal.KeyRight:
		v.setColumns(v.columns + 1)
		return nil
	case hal.KeyHome:
		if streaming {
			v.setSamples(minSamples)
		}
		return nil
	case hal.KeyEnd:
		if streaming {
			v.setSamples(maxSamples)
		}
		return nil
	case hal.KeyEnter:
		if !streaming {
			v.toggleRow(v.cursor)
		}
		return nil
	}

	switch ev.Rune {
	case 's':
		v.toggleStream()
	case 'p':
		v.togglePrepared()
	case 'x':
		v.showX = !v.showX
	case 'y':
		v.showY = !v.showY
	case 'd':
		v.allowDrag = !v.allowDrag
		v.con.Println("drag " + onOff(v.allowDrag))
	case 'z':
		v.allowZoom = !v.allowZoom
		v.con.Println("zoom " + onOff(v.allowZoom))
	case 'c':
		v.showCursor = !v.showCursor
	case 't':
		if v.ticks == plot.TicksNice {
			v.ticks = plot.TicksQuarter
		} else {
			v.ticks = plot.TicksNice
		}
		v.con.Println("y ticks " + v.ticks.String())
	case 'f':
		if streaming {
			v.fitNext = true
		}
	case 'r':
		v.plots.Registry().Reset()
		v.con.Println("view ranges reset")
	case ' ':
		if !streaming {
			v.toggleRow(v.cursor)
		}
	case '1':
		v.toggleGroup(v.info.EEG...)
	case '2':
		v.toggleGroup(v.info.Marker)
	case '3':
		v.toggleGroup(v.info.Battery)
	}
	return nil
}

func (v *viewer) setSamples(n int) {
	v.samples = clampInt(n, minSamples, maxSamples)
}

func (v *viewer) setColumns(n int) {
	v.columns = clampInt(n, 1, maxColumns)
}

func (v *viewer) toggleStream() {
	if v.board.Streaming() {
		if err := v.board.Stop(); err != nil {
			v.con.Println(err.Error())
			return
		}
		v.fitNext = false
		v.con.Println("stream stopped")
		return
	}
	if err := v.startSession(); err != nil {
		v.con.Println(err.Error())
	}
}

func (v *viewer) togglePrepared() {
	if v.board.Prepared() {
		if err := v.board.Release(); err != nil {
			v.con.Println(err.Error())
			return
		}
		v.fitNext = false
		v.con.Println("session released")
		return
	}
	if err := v.board.Prepare(); err != nil {
		v.con.Println(err.Error())
		return
	}
	v.con.Println("session prepared")
}

// toggleGroup selects every row of the group, or clears them all when
// they are already all selected.
func (v *viewer) toggleGroup(rows ...int) {
	all := true
	found := false
	for _, r := range rows {
		if r < 0 || r >= len(v.selected) {
			continue
		}
		found = true
		if !v.selected[r] {
			all = false
		}
	}
	if !found {
		return
	}
	for _, r := range rows {
		if r >= 0 && r < len(v.selected) {
			v.selected[r] = !all
		}
	}
	v.con.Println(fmt.Sprintf("%d channels selected", len(v.visible())))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
