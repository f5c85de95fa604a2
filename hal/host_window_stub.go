//go:build !tinygo && !cgo

package hal

import "errors"

// ErrNoWindow is returned by RunWindow in builds without cgo.
var ErrNoWindow = errors.New("eegscope: the window needs cgo; rebuild with CGO_ENABLED=1 or pass -headless")

func RunWindow(newApp func(HAL) func() error, cfg HostConfig) error {
	_, _ = newApp, cfg
	return ErrNoWindow
}
