//go:build !tinygo && !cgo

package hal

func (p *hostPointer) poll(width, height int) {
	// No pointer support without the window backend.
}
