//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// wheelScale turns one wheel notch into scroll units; the plot clamps the
// delta to +-10 per frame.
const wheelScale = 10

func (p *hostPointer) poll(width, height int) {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	p.set(PointerState{
		X:        x,
		Y:        y,
		InWindow: x >= 0 && y >= 0 && x < width && y < height,
		Pressed:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Scroll:   wy * wheelScale,
	})
}
