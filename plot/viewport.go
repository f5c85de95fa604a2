package plot

import "math"

const (
	// DefaultYStart and DefaultYEnd bound the vertical range of a new plot.
	DefaultYStart = -300.0
	DefaultYEnd   = 300.0

	// MinSpan is the narrowest vertical range a viewport may shrink to.
	MinSpan = 1e-3
)

// Gesture is the pointer interaction state of one plot.
type Gesture uint8

const (
	Idle Gesture = iota
	Dragging
)

func (g Gesture) String() string {
	switch g {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// ViewportState is the per-plot view state that survives across frames:
// the visible vertical range and the drag anchor.
//
// yEnd > yStart holds after every mutation.
type ViewportState struct {
	yStart float64
	yEnd   float64

	gesture     Gesture
	lastPointer Point
}

func newViewportState(start, end float64) *ViewportState {
	v := &ViewportState{yStart: DefaultYStart, yEnd: DefaultYEnd}
	v.SetRange(start, end)
	return v
}

// Range returns the visible vertical range.
func (v *ViewportState) Range() (start, end float64) { return v.yStart, v.yEnd }

// Span returns yEnd - yStart.
func (v *ViewportState) Span() float64 { return v.yEnd - v.yStart }

// Gesture returns the current interaction state.
func (v *ViewportState) Gesture() Gesture { return v.gesture }

// LastPointer returns the screen position recorded by the last dragging
// frame. ok is false while idle.
func (v *ViewportState) LastPointer() (p Point, ok bool) {
	if v.gesture != Dragging {
		return Point{}, false
	}
	return v.lastPointer, true
}

// SetRange replaces the visible range. Inverted bounds are swapped and a
// range narrower than MinSpan is widened around its midpoint. Non-finite
// bounds are ignored.
func (v *ViewportState) SetRange(start, end float64) {
	if !finite(start) || !finite(end) {
		return
	}
	v.yStart, v.yEnd = normalizeRange(start, end)
}

// Fit sets the range to enclose values with a 5% margin, rounded outwards
// to whole units. A flat series gets one unit on either side. An empty
// series leaves the range untouched.
func (v *ViewportState) Fit(values []float64) {
	lo, hi, ok := fitRange(values)
	if !ok {
		return
	}
	v.SetRange(lo, hi)
}

func (v *ViewportState) startDrag(p Point) {
	v.gesture = Dragging
	v.lastPointer = p
}

func (v *ViewportState) endDrag() {
	v.gesture = Idle
	v.lastPointer = Point{}
}

func normalizeRange(start, end float64) (float64, float64) {
	if end < start {
		start, end = end, start
	}
	if end-start < MinSpan {
		mid := start + (end-start)/2
		start, end = mid-MinSpan/2, mid+MinSpan/2
	}
	return start, end
}

func fitRange(values []float64) (lo, hi float64, ok bool) {
	first := true
	for _, y := range values {
		if !finite(y) {
			continue
		}
		if first {
			lo, hi = y, y
			first = false
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if first {
		return 0, 0, false
	}
	if lo == hi {
		lo--
		hi++
	} else {
		pad := (hi - lo) * 0.05
		lo -= pad
		hi += pad
	}
	return math.Floor(lo), math.Ceil(hi), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Registry maps plot ids to their viewport state. It is not safe for
// concurrent use; the render pass that owns it is single-threaded.
type Registry struct {
	start  float64
	end    float64
	states map[string]*ViewportState
}

// NewRegistry returns an empty registry whose new states start at
// [start, end].
func NewRegistry(start, end float64) *Registry {
	if !finite(start) || !finite(end) {
		start, end = DefaultYStart, DefaultYEnd
	}
	start, end = normalizeRange(start, end)
	return &Registry{start: start, end: end, states: make(map[string]*ViewportState)}
}

// GetOrCreate returns the state for id, creating it with the default range
// on first use. The same pointer is returned for the same id until Reset.
func (r *Registry) GetOrCreate(id string) *ViewportState {
	if st, ok := r.states[id]; ok {
		return st
	}
	st := newViewportState(r.start, r.end)
	r.states[id] = st
	return st
}

// Len returns the number of plots that have state.
func (r *Registry) Len() int { return len(r.states) }

// DefaultRange returns the range given to new states.
func (r *Registry) DefaultRange() (start, end float64) { return r.start, r.end }

// Reset drops every state.
func (r *Registry) Reset() {
	r.states = make(map[string]*ViewportState)
}
