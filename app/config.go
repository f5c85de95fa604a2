package app

import "eegscope/plot"

const (
	minSamples  = 100
	maxSamples  = 2000
	samplesStep = 10

	defaultSamples      = 1000
	defaultColumns      = 2
	defaultStreamBuffer = 45000

	maxColumns = 8
)

// Config controls the viewer.
type Config struct {
	// Samples is the width of the on-screen window, in samples.
	Samples int
	// Columns of the plot grid.
	Columns int

	// YStart and YEnd are the vertical range a new plot starts with.
	YStart float64
	YEnd   float64

	Ticks             plot.TickPolicy
	ScrollSensitivity float64

	ShowXTicks bool
	ShowYTicks bool
	ShowCursor bool
	AllowDrag  bool
	AllowZoom  bool

	// StreamBuffer is the ring buffer size requested from the board.
	StreamBuffer int
	// ConsoleRows is the height of the status console in text lines.
	ConsoleRows int
}

// DefaultConfig returns the settings the viewer starts with.
func DefaultConfig() Config {
	return Config{
		Samples:      defaultSamples,
		Columns:      defaultColumns,
		YStart:       plot.DefaultYStart,
		YEnd:         plot.DefaultYEnd,
		Ticks:        plot.TicksNice,
		ShowXTicks:   true,
		ShowYTicks:   true,
		AllowDrag:    true,
		AllowZoom:    true,
		StreamBuffer: defaultStreamBuffer,
		ConsoleRows:  4,
	}
}

func (c Config) withDefaults() Config {
	if c.Samples == 0 {
		c.Samples = defaultSamples
	}
	c.Samples = clampInt(c.Samples, minSamples, maxSamples)
	if c.Columns <= 0 {
		c.Columns = defaultColumns
	}
	if c.Columns > maxColumns {
		c.Columns = maxColumns
	}
	if c.YStart == 0 && c.YEnd == 0 {
		c.YStart, c.YEnd = plot.DefaultYStart, plot.DefaultYEnd
	}
	if c.ScrollSensitivity <= 0 {
		c.ScrollSensitivity = plot.DefaultScrollSensitivity
	}
	if c.StreamBuffer <= 0 {
		c.StreamBuffer = defaultStreamBuffer
	}
	if c.ConsoleRows < 0 {
		c.ConsoleRows = 0
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
