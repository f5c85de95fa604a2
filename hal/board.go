package hal

import (
	"errors"
	"fmt"
)

var (
	ErrNotPrepared     = errors.New("session not prepared")
	ErrAlreadyPrepared = errors.New("session already prepared")
	ErrNotStreaming    = errors.New("stream not started")
	ErrStreaming       = errors.New("stream already running")
)

// BoardInfo describes the rows of the buffer returned by Board.LatestWindow.
type BoardInfo struct {
	Name       string
	SampleRate int
	// Channels is the number of rows in every window.
	Channels int

	EEG     []int
	Marker  int
	Battery int

	// Labels and Units are indexed by row.
	Labels []string
	Units  []string
}

// Description is a one-line summary for display.
func (b BoardInfo) Description() string {
	return fmt.Sprintf("%s %dHz, %d EEG channels", b.Name, b.SampleRate, len(b.EEG))
}

// Board is an acquisition device: a session that, once prepared and
// started, fills a ring buffer with samples for every channel.
type Board interface {
	Info() BoardInfo

	Prepare() error
	// Start begins streaming into a ring buffer of bufferSize samples.
	Start(bufferSize int) error
	Stop() error
	Release() error

	Prepared() bool
	Streaming() bool

	// LatestWindow returns the most recent n samples of every channel,
	// oldest first. The result is always Info().Channels x n; missing
	// history is zero-filled at the front.
	LatestWindow(n int) [][]float64
}
