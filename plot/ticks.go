package plot

import (
	"fmt"
	"math"
)

// TickPolicy selects how vertical tick values are generated.
type TickPolicy uint8

const (
	// TicksNice steps by 1/2/5-style round numbers.
	TicksNice TickPolicy = iota
	// TicksQuarter splits the range into four equal steps.
	TicksQuarter
)

func (p TickPolicy) String() string {
	switch p {
	case TicksNice:
		return "nice"
	case TicksQuarter:
		return "quarter"
	default:
		return "unknown"
	}
}

// ParseTickPolicy parses the names returned by TickPolicy.String.
func ParseTickPolicy(s string) (TickPolicy, error) {
	switch s {
	case "nice":
		return TicksNice, nil
	case "quarter":
		return TicksQuarter, nil
	}
	return 0, fmt.Errorf("plot: unknown tick policy %q", s)
}

// Ticks returns the tick values for [start, end] under p.
func (p TickPolicy) Ticks(start, end float64) []float64 {
	if p == TicksQuarter {
		return QuarterTicks(start, end)
	}
	return NiceTicks(start, end)
}

// maxTicks bounds a tick loop whose step is lost to float rounding.
const maxTicks = 1024

// NiceStep returns the tick spacing NiceTicks uses for a range.
func NiceStep(rng float64) float64 {
	if rng <= 0 || !finite(rng) {
		return 0
	}
	mag := decade(rng)
	switch ratio := rng / mag; {
	case ratio >= 5:
		return 2 * mag
	case ratio >= 2.5:
		return mag
	default:
		return mag / 2.5
	}
}

// decade returns the largest power of ten strictly below rng. Exact powers
// of ten fall into the decade below, so decade(1000) is 100.
func decade(rng float64) float64 {
	e := math.Floor(math.Log10(rng))
	for math.Pow(10, e+1) < rng {
		e++
	}
	for e > -308 && math.Pow(10, e) >= rng {
		e--
	}
	return math.Pow(10, e)
}

// NiceTicks returns start, start+step, ... with a round-number step. The
// loop emits a value and then advances, stopping once the advanced value
// exceeds end, so end itself is emitted only when a step lands on it.
func NiceTicks(start, end float64) []float64 {
	return stepTicks(start, end, NiceStep(end-start))
}

// QuarterTicks returns ticks at start and four equal steps after it, under
// the same loop as NiceTicks. Rounding can drop the tick at end.
func QuarterTicks(start, end float64) []float64 {
	rng := end - start
	if rng <= 0 || !finite(rng) {
		return stepTicks(start, end, 0)
	}
	return stepTicks(start, end, rng/4)
}

func stepTicks(start, end, step float64) []float64 {
	ticks := []float64{start}
	if step <= 0 || !finite(step) || !finite(start) {
		return ticks
	}
	v := start
	for len(ticks) < maxTicks {
		next := v + step
		if next > end || next == v {
			break
		}
		ticks = append(ticks, next)
		v = next
	}
	return ticks
}

// FormatTick renders a tick value as a compact label.
func FormatTick(v float64) string {
	if !finite(v) {
		return ""
	}
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1e5 || av < 0.01:
		return fmt.Sprintf("%.2g", v)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	case av >= 1:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
