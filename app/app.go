// Package app is the EEG viewer: it drives the board session and draws one
// plot per selected channel every frame.
package app

import (
	"fmt"
	"image"
	"image/color"

	"eegscope/canvas"
	"eegscope/hal"
	"eegscope/plot"
)

var colorBG = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}

type viewer struct {
	cfg   Config
	h     hal.HAL
	board hal.Board
	info  hal.BoardInfo

	fb      hal.Framebuffer
	c       *canvas.Canvas
	plots   *plot.Plotter
	con     *console
	area    image.Rectangle
	started bool

	// selected is indexed by board row.
	selected []bool
	cursor   int

	samples     int
	columns     int
	ticks       plot.TickPolicy
	showX       bool
	showY       bool
	showCursor  bool
	allowDrag   bool
	allowZoom   bool
	fitNext     bool
	prevPressed bool
}

// New returns the per-frame step of a viewer with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig returns the per-frame step of a viewer. The first step
// prepares the board and starts streaming; a failure there is returned
// and ends the host loop. Esc returns hal.ErrStop.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	v := newViewer(h, cfg)
	return func() error {
		return guard(h, v.step)
	}
}

func newViewer(h hal.HAL, cfg Config) *viewer {
	cfg = cfg.withDefaults()
	v := &viewer{
		cfg:        cfg,
		h:          h,
		board:      h.Board(),
		plots:      plot.NewPlotter(plot.NewRegistry(cfg.YStart, cfg.YEnd)),
		samples:    cfg.Samples,
		columns:    cfg.Columns,
		ticks:      cfg.Ticks,
		showX:      cfg.ShowXTicks,
		showY:      cfg.ShowYTicks,
		showCursor: cfg.ShowCursor,
		allowDrag:  cfg.AllowDrag,
		allowZoom:  cfg.AllowZoom,
	}
	if v.board != nil {
		v.info = v.board.Info()
	}
	v.selected = make([]bool, v.info.Channels)
	for _, ch := range v.info.EEG {
		if ch >= 0 && ch < len(v.selected) {
			v.selected[ch] = true
		}
	}

	if d := h.Display(); d != nil {
		v.fb = d.Framebuffer()
	}
	if v.fb != nil {
		v.c = canvas.New(v.fb)
		v.c.Clear(colorBG)
		consoleH := cfg.ConsoleRows * v.c.LineHeight()
		if consoleH > 0 {
			consoleH += 2
		}
		if consoleH > v.fb.Height()/2 {
			consoleH = v.fb.Height() / 2
		}
		split := v.fb.Height() - consoleH
		v.area = image.Rect(0, 0, v.fb.Width(), split)
		v.con = newConsole(h.Logger(), v.c, image.Rect(0, split, v.fb.Width(), v.fb.Height()))
	} else {
		v.con = newConsole(h.Logger(), nil, image.Rectangle{})
	}
	return v
}

func (v *viewer) step() error {
	if !v.started {
		v.started = true
		if v.board == nil {
			return fmt.Errorf("app: no board")
		}
		v.con.Println("board: " + v.info.Description())
		if err := v.startSession(); err != nil {
			return fmt.Errorf("app: start session: %w", err)
		}
		v.con.Println("keys: s start/stop, p prepare/release, up/down/home/end samples, left/right columns, f fit, r reset, esc quit")
	}

	if err := v.drainKeys(); err != nil {
		return err
	}
	if v.c == nil {
		return nil
	}

	in := v.pointer()
	v.c.FillRectangle(int16(v.area.Min.X), int16(v.area.Min.Y), int16(v.area.Dx()), int16(v.area.Dy()), colorBG)
	if v.board.Streaming() {
		v.renderPlots(in)
	} else {
		v.renderSelection(in)
	}
	v.prevPressed = in.Pressed
	return v.fb.Present()
}

func (v *viewer) startSession() error {
	if !v.board.Prepared() {
		if err := v.board.Prepare(); err != nil {
			return err
		}
		v.con.Println("session prepared")
	}
	if err := v.board.Start(v.cfg.StreamBuffer); err != nil {
		return err
	}
	v.con.Println(fmt.Sprintf("stream started (buffer %d)", v.cfg.StreamBuffer))
	return nil
}

func (v *viewer) pointer() plot.Input {
	in := v.h.Input()
	if in == nil {
		return plot.Input{}
	}
	p := in.Pointer()
	if p == nil {
		return plot.Input{}
	}
	s := p.State()
	return plot.Input{
		Pos:         plot.Pt(float64(s.X), float64(s.Y)),
		Present:     s.InWindow,
		Pressed:     s.Pressed,
		JustPressed: s.Pressed && !v.prevPressed,
		Scroll:      s.Scroll,
	}
}

// visible lists the board rows that get a plot, in row order.
func (v *viewer) visible() []int {
	var rows []int
	for i, on := range v.selected {
		if on {
			rows = append(rows, i)
		}
	}
	return rows
}

func (v *viewer) plotID(row int) string {
	return fmt.Sprintf("%d:%s", row, v.label(row))
}

func (v *viewer) label(row int) string {
	if row >= 0 && row < len(v.info.Labels) && v.info.Labels[row] != "" {
		return v.info.Labels[row]
	}
	return fmt.Sprintf("ch%d", row)
}

func (v *viewer) title(row int) string {
	if row >= 0 && row < len(v.info.Units) && v.info.Units[row] != "" {
		return v.label(row) + " (" + v.info.Units[row] + ")"
	}
	return v.label(row)
}

func (v *viewer) renderPlots(in plot.Input) {
	rows := v.visible()
	if len(rows) == 0 {
		v.c.Text(plot.Pt(float64(v.area.Dx())/2, float64(v.area.Dy())/2), plot.AlignCenterCenter,
			"no channels selected (s stops the stream)", colorText)
		return
	}

	window := v.board.LatestWindow(v.samples)
	cols := v.columns
	if cols > len(rows) {
		cols = len(rows)
	}
	gridRows := (len(rows) + cols - 1) / cols
	cellW := float64(v.area.Dx()) / float64(cols)
	cellH := float64(v.area.Dy()) / float64(gridRows)

	fit := v.fitNext
	v.fitNext = false
	for i, row := range rows {
		r, col := i/cols, i%cols
		id := v.plotID(row)
		var values []float64
		if row < len(window) {
			values = window[row]
		}
		if fit {
			v.plots.Registry().GetOrCreate(id).Fit(values)
		}
		opts := plot.Options{
			Size:              plot.Pt(cellW, cellH),
			XEnd:              float64(v.samples),
			Title:             v.title(row),
			ShowTitle:         true,
			ShowXTicks:        v.showX && r == gridRows-1,
			ShowYTicks:        v.showY,
			ShowCursorValue:   v.showCursor,
			AllowDrag:         v.allowDrag,
			AllowZoom:         v.allowZoom,
			Ticks:             v.ticks,
			ScrollSensitivity: v.cfg.ScrollSensitivity,
			Channel:           row,
		}
		origin := plot.Pt(float64(v.area.Min.X)+float64(col)*cellW, float64(v.area.Min.Y)+float64(r)*cellH)
		v.plots.Render(v.c, id, origin, plot.Series(values), in, opts)
	}
}
