package app

import (
	"errors"
	"math"
	"strings"
	"testing"

	"eegscope/hal"
	"eegscope/plot"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.ConsoleRows = 0
	return cfg
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func started(t *testing.T, h *fakeHAL, cfg Config) *viewer {
	t.Helper()
	v := newViewer(h, cfg)
	if err := v.step(); err != nil {
		t.Fatalf("first step: %v", err)
	}
	return v
}

func TestStartupPreparesAndStarts(t *testing.T) {
	h := newFakeHAL(400, 300)
	step := NewWithConfig(h, DefaultConfig())
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !h.board.prepared || !h.board.streaming {
		t.Fatalf("prepared=%v streaming=%v", h.board.prepared, h.board.streaming)
	}
	if h.board.bufferSize != 45000 {
		t.Fatalf("buffer=%d, want 45000", h.board.bufferSize)
	}
	if !h.log.has("stream started (buffer 45000)") {
		t.Fatalf("log: %q", h.log.lines)
	}
}

func TestStartupFailureIsFatal(t *testing.T) {
	h := newFakeHAL(400, 300)
	boom := errors.New("no dongle")
	h.board.prepareErr = boom
	step := NewWithConfig(h, DefaultConfig())
	err := step()
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
}

func TestEscapeStops(t *testing.T) {
	h := newFakeHAL(400, 300)
	step := NewWithConfig(h, DefaultConfig())
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	h.key(hal.KeyEscape)
	if err := step(); !errors.Is(err, hal.ErrStop) {
		t.Fatalf("err=%v, want ErrStop", err)
	}
}

func TestSamplesStepAndClamp(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	if v.samples != 1000 {
		t.Fatalf("samples=%d", v.samples)
	}
	h.key(hal.KeyUp)
	h.key(hal.KeyUp)
	h.key(hal.KeyDown)
	if err := v.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if v.samples != 1010 {
		t.Fatalf("samples=%d, want 1010", v.samples)
	}
	for i := 0; i < 200; i++ {
		v.handleKey(hal.KeyEvent{Code: hal.KeyUp, Press: true})
	}
	if v.samples != maxSamples {
		t.Fatalf("samples=%d, want %d", v.samples, maxSamples)
	}
	for i := 0; i < 300; i++ {
		v.handleKey(hal.KeyEvent{Code: hal.KeyDown, Press: true})
	}
	if v.samples != minSamples {
		t.Fatalf("samples=%d, want %d", v.samples, minSamples)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{Samples: 5, Columns: 99}.withDefaults()
	if cfg.Samples != minSamples || cfg.Columns != maxColumns {
		t.Fatalf("samples=%d columns=%d", cfg.Samples, cfg.Columns)
	}
	if cfg.YStart != plot.DefaultYStart || cfg.YEnd != plot.DefaultYEnd {
		t.Fatalf("range [%v,%v]", cfg.YStart, cfg.YEnd)
	}
	if cfg.StreamBuffer != defaultStreamBuffer || cfg.ScrollSensitivity != plot.DefaultScrollSensitivity {
		t.Fatalf("buffer=%d sensitivity=%v", cfg.StreamBuffer, cfg.ScrollSensitivity)
	}
}

func TestDragPansOnlyThePlotUnderThePointer(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())

	// Three EEG plots in two columns: 200x150 cells, the first plot rect
	// is (40,10)-(196,150).
	h.ptr.s = hal.PointerState{X: 100, Y: 50, InWindow: true, Pressed: true}
	if err := v.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	h.ptr.s = hal.PointerState{X: 100, Y: 120, InWindow: true, Pressed: true}
	if err := v.step(); err != nil {
		t.Fatalf("step: %v", err)
	}

	reg := v.plots.Registry()
	s, e := reg.GetOrCreate("1:Fp1").Range()
	if !near(s, 0) || !near(e, 600) {
		t.Fatalf("Fp1 range [%v,%v], want [0,600]", s, e)
	}
	s, e = reg.GetOrCreate("2:Fp2").Range()
	if s != -300 || e != 300 {
		t.Fatalf("Fp2 range [%v,%v], want untouched", s, e)
	}

	h.ptr.s.Pressed = false
	if err := v.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g := reg.GetOrCreate("1:Fp1").Gesture(); g != plot.Idle {
		t.Fatalf("gesture=%v after release", g)
	}
}

func TestHeldDragDoesNotSpillIntoPlotBelow(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())

	// Press in Fp1, then keep the button down while moving into Cz, whose
	// plot rect is (40,160)-(196,280).
	for _, y := range []int{50, 140, 170, 230} {
		h.ptr.s = hal.PointerState{X: 100, Y: y, InWindow: true, Pressed: true}
		if err := v.step(); err != nil {
			t.Fatalf("step at y=%d: %v", y, err)
		}
	}

	cz := v.plots.Registry().GetOrCreate("3:Cz")
	if s, e := cz.Range(); s != -300 || e != 300 {
		t.Fatalf("Cz range [%v,%v], want untouched", s, e)
	}
	if g := cz.Gesture(); g != plot.Idle {
		t.Fatalf("Cz gesture=%v, want idle", g)
	}
	if g := v.plots.Registry().GetOrCreate("1:Fp1").Gesture(); g != plot.Idle {
		t.Fatalf("Fp1 gesture=%v after leaving its canvas", g)
	}

	// Releasing and pressing again inside Cz drags Cz.
	h.ptr.s.Pressed = false
	v.step()
	h.ptr.s.Pressed = true
	v.step()
	if g := cz.Gesture(); g != plot.Dragging {
		t.Fatalf("Cz gesture=%v after a press inside it", g)
	}
}

func TestConfiguredRangeSeedsNewPlots(t *testing.T) {
	h := newFakeHAL(400, 300)
	cfg := testConfig()
	cfg.YStart, cfg.YEnd = -50, 80
	v := started(t, h, cfg)
	if s, e := v.plots.Registry().GetOrCreate("1:Fp1").Range(); s != -50 || e != 80 {
		t.Fatalf("Fp1 range [%v,%v], want [-50,80]", s, e)
	}
}

func TestColumnAndSampleKeys(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())

	h.key(hal.KeyLeft)
	h.key(hal.KeyLeft)
	h.key(hal.KeyLeft)
	v.step()
	if v.columns != 1 {
		t.Fatalf("columns=%d, want 1", v.columns)
	}
	for i := 0; i < 20; i++ {
		v.handleKey(hal.KeyEvent{Code: hal.KeyRight, Press: true})
	}
	if v.columns != maxColumns {
		t.Fatalf("columns=%d, want %d", v.columns, maxColumns)
	}

	h.key(hal.KeyEnd)
	v.step()
	if v.samples != maxSamples {
		t.Fatalf("samples=%d, want %d", v.samples, maxSamples)
	}
	h.key(hal.KeyHome)
	v.step()
	if v.samples != minSamples {
		t.Fatalf("samples=%d, want %d", v.samples, minSamples)
	}
}

func TestFitIgnoredWhileStopped(t *testing.T) {
	h := newFakeHAL(400, 300)
	cfg := testConfig()
	cfg.Samples = 100
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(10 + i)
	}
	h.board.data[1] = vals

	v := started(t, h, cfg)
	h.char('s')
	h.char('f')
	v.step()
	if v.fitNext {
		t.Fatalf("fit pending while stopped")
	}

	h.char('s')
	v.step()
	if s, e := v.plots.Registry().GetOrCreate("1:Fp1").Range(); s != -300 || e != 300 {
		t.Fatalf("stale fit applied on restart: [%v,%v]", s, e)
	}
}

func TestDragToggle(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	h.char('d')
	h.ptr.s = hal.PointerState{X: 100, Y: 50, InWindow: true, Pressed: true}
	v.step()
	h.ptr.s.Y = 120
	v.step()
	s, e := v.plots.Registry().GetOrCreate("1:Fp1").Range()
	if s != -300 || e != 300 {
		t.Fatalf("range [%v,%v] moved with drag disabled", s, e)
	}
}

func TestFitKey(t *testing.T) {
	h := newFakeHAL(400, 300)
	cfg := testConfig()
	cfg.Samples = 100
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(10 + i)
	}
	h.board.data[1] = vals

	v := started(t, h, cfg)
	h.char('f')
	if err := v.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	s, e := v.plots.Registry().GetOrCreate("1:Fp1").Range()
	if s != 5 || e != 114 {
		t.Fatalf("fit range [%v,%v], want [5,114]", s, e)
	}
	if v.fitNext {
		t.Fatalf("fit should last one frame")
	}
}

func TestResetKey(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	v.plots.Registry().GetOrCreate("1:Fp1").SetRange(1, 2)
	h.char('r')
	v.step()
	s, e := v.plots.Registry().GetOrCreate("1:Fp1").Range()
	if s != -300 || e != 300 {
		t.Fatalf("range [%v,%v] after reset", s, e)
	}
}

func TestTickPolicyCycles(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	h.char('t')
	v.step()
	if v.ticks != plot.TicksQuarter {
		t.Fatalf("ticks=%v", v.ticks)
	}
	h.char('t')
	v.step()
	if v.ticks != plot.TicksNice {
		t.Fatalf("ticks=%v", v.ticks)
	}
}

func TestToggles(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	for _, r := range "xyzc" {
		h.char(r)
	}
	v.step()
	if v.showX || v.showY || v.allowZoom || !v.showCursor {
		t.Fatalf("x=%v y=%v zoom=%v cursor=%v", v.showX, v.showY, v.allowZoom, v.showCursor)
	}
}

func TestStopAndChannelSelection(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())

	h.char('s')
	v.step()
	if h.board.streaming {
		t.Fatalf("still streaming")
	}

	h.char('1')
	v.step()
	if got := v.visible(); len(got) != 0 {
		t.Fatalf("visible=%v after clearing EEG", got)
	}
	h.char('2')
	h.key(hal.KeyEnter)
	v.step()
	got := v.visible()
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("visible=%v, want [1 4]", got)
	}

	h.key(hal.KeyDown)
	h.key(hal.KeyDown)
	h.char(' ')
	v.step()
	if v.cursor != 2 || !v.selected[3] {
		t.Fatalf("cursor=%d selected=%v", v.cursor, v.selected)
	}

	h.char('s')
	v.step()
	if !h.board.streaming {
		t.Fatalf("restart failed: %q", h.log.lines)
	}
}

func TestClickTogglesChannel(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	h.char('s')
	v.step()

	top := v.selectionTop()
	rh := v.selectionRowHeight()
	h.ptr.s = hal.PointerState{X: 20, Y: int(top + rh + rh/2), InWindow: true, Pressed: true}
	v.step()
	if v.selected[2] || v.cursor != 1 {
		t.Fatalf("click did not toggle Fp2: cursor=%d selected=%v", v.cursor, v.selected)
	}

	// Holding the button does not toggle again.
	v.step()
	if v.selected[2] {
		t.Fatalf("held click toggled twice")
	}
}

func TestPrepareReleaseKeys(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	h.char('p')
	v.step()
	if h.board.prepared || h.board.streaming {
		t.Fatalf("release: prepared=%v streaming=%v", h.board.prepared, h.board.streaming)
	}
	h.char('p')
	v.step()
	if !h.board.prepared || h.board.streaming {
		t.Fatalf("prepare: prepared=%v streaming=%v", h.board.prepared, h.board.streaming)
	}
	h.char('s')
	v.step()
	if !h.board.streaming {
		t.Fatalf("start failed")
	}
	if !h.log.has("session released") || !h.log.has("session prepared") {
		t.Fatalf("log: %q", h.log.lines)
	}
}

func TestSessionErrorsAreLogged(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := started(t, h, testConfig())
	h.char('s')
	v.step()
	h.board.startErr = errors.New("dongle unplugged")
	h.char('s')
	if err := v.step(); err != nil {
		t.Fatalf("key errors should not end the loop: %v", err)
	}
	if !h.log.has("dongle unplugged") {
		t.Fatalf("log: %q", h.log.lines)
	}
}

func TestPlotsReachTheFramebuffer(t *testing.T) {
	h := newFakeHAL(400, 300)
	started(t, h, testConfig())

	want := plot.PaletteColor(1)
	px := hal.RGB565(want.R, want.G, want.B)
	buf := h.fb.Buffer()
	found := false
	for i := 0; i+1 < len(buf); i += 2 {
		if uint16(buf[i])|uint16(buf[i+1])<<8 == px {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("no pixel in the Fp1 line color")
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newFakeHAL(200, 100)
	err := guard(h, func() error { panic("boom") })
	if err == nil || !strings.Contains(err.Error(), "panic: boom") {
		t.Fatalf("err=%v", err)
	}
	if !h.log.has("eegscope panic:") {
		t.Fatalf("log: %q", h.log.lines)
	}
	r, g, b := hal.RGB888(uint16(h.fb.Buffer()[0]) | uint16(h.fb.Buffer()[1])<<8)
	if r != 0xff || g != 0xff || b != 0xff {
		t.Fatalf("panic screen not painted")
	}
}

func TestConsoleMirrorsLogger(t *testing.T) {
	h := newFakeHAL(400, 300)
	v := newViewer(h, DefaultConfig())
	if v.con.term == nil {
		t.Fatalf("console terminal not configured")
	}
	v.con.Println("hello")
	if !h.log.has("hello") {
		t.Fatalf("log: %q", h.log.lines)
	}
}
