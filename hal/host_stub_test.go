//go:build !tinygo && !cgo

package hal

import (
	"errors"
	"testing"
)

func TestRunWindowWithoutCgo(t *testing.T) {
	called := false
	err := RunWindow(func(HAL) func() error {
		called = true
		return nil
	}, HostConfig{})
	if !errors.Is(err, ErrNoWindow) {
		t.Fatalf("err=%v, want ErrNoWindow", err)
	}
	if called {
		t.Fatalf("app built without a window")
	}
}

func TestStubKeyboardStaysQuiet(t *testing.T) {
	k := newHostKeyboard()
	k.poll()
	select {
	case ev := <-k.Events():
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}
