package app

import (
	"errors"
	"strings"

	"eegscope/hal"
)

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) has(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type fakeKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakePointer struct {
	s hal.PointerState
}

func (p *fakePointer) State() hal.PointerState { return p.s }

type fakeBoard struct {
	info       hal.BoardInfo
	prepared   bool
	streaming  bool
	bufferSize int
	prepareErr error
	startErr   error
	data       [][]float64
}

var errFakeNotPrepared = errors.New("fake: not prepared")

func newFakeBoard() *fakeBoard {
	return &fakeBoard{
		info: hal.BoardInfo{
			Name:       "Fake",
			SampleRate: 100,
			Channels:   6,
			EEG:        []int{1, 2, 3},
			Marker:     4,
			Battery:    5,
			Labels:     []string{"Package", "Fp1", "Fp2", "Cz", "Marker", "Battery"},
			Units:      []string{"", "uV", "uV", "uV", "", "%"},
		},
		data: make([][]float64, 6),
	}
}

func (b *fakeBoard) Info() hal.BoardInfo { return b.info }

func (b *fakeBoard) Prepare() error {
	if b.prepareErr != nil {
		return b.prepareErr
	}
	if b.prepared {
		return hal.ErrAlreadyPrepared
	}
	b.prepared = true
	return nil
}

func (b *fakeBoard) Start(n int) error {
	if b.startErr != nil {
		return b.startErr
	}
	if !b.prepared {
		return errFakeNotPrepared
	}
	if b.streaming {
		return hal.ErrStreaming
	}
	b.bufferSize = n
	b.streaming = true
	return nil
}

func (b *fakeBoard) Stop() error {
	if !b.streaming {
		return hal.ErrNotStreaming
	}
	b.streaming = false
	return nil
}

func (b *fakeBoard) Release() error {
	if !b.prepared {
		return hal.ErrNotPrepared
	}
	b.prepared = false
	b.streaming = false
	return nil
}

func (b *fakeBoard) Prepared() bool  { return b.prepared }
func (b *fakeBoard) Streaming() bool { return b.streaming }

func (b *fakeBoard) LatestWindow(n int) [][]float64 {
	out := make([][]float64, b.info.Channels)
	for i := range out {
		out[i] = make([]float64, n)
		src := b.data[i]
		if len(src) > n {
			src = src[len(src)-n:]
		}
		copy(out[i][n-len(src):], src)
	}
	return out
}

type fakeHAL struct {
	log   *fakeLogger
	fb    hal.Framebuffer
	kbd   *fakeKeyboard
	ptr   *fakePointer
	board *fakeBoard
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    hal.NewFramebuffer(w, h),
		kbd:   &fakeKeyboard{ch: make(chan hal.KeyEvent, 64)},
		ptr:   &fakePointer{},
		board: newFakeBoard(),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{h: h} }
func (h *fakeHAL) Board() hal.Board     { return h.board }

type fakeDisplay struct {
	fb hal.Framebuffer
}

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeInput struct {
	h *fakeHAL
}

func (in fakeInput) Keyboard() hal.Keyboard { return in.h.kbd }
func (in fakeInput) Pointer() hal.Pointer   { return in.h.ptr }

func (h *fakeHAL) key(code hal.KeyCode) {
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: true}
	h.kbd.ch <- hal.KeyEvent{Code: code, Press: false}
}

func (h *fakeHAL) char(r rune) {
	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: r}
}
