//go:build !tinygo && !cgo

package hal

// hostKeyboard without cgo has no window to read from. Its channel stays
// empty, so a headless viewer only stops through -ticks or a signal.
type hostKeyboard struct {
	events chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{events: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.events }

func (k *hostKeyboard) poll() {}
