package hal

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	syntheticRate    = 250
	syntheticEEG     = 8
	syntheticBattery = syntheticEEG + 1
	syntheticMarker  = syntheticEEG + 2
	syntheticRows    = syntheticEEG + 3

	markerEvery = 2 * syntheticRate
)

var syntheticLabels = []string{"Package", "Fp1", "Fp2", "C3", "C4", "P7", "P8", "O1", "O2", "Battery", "Marker"}

// syntheticBoard generates EEG-like signals from an injected clock: a
// package counter, eight channels of mixed theta/alpha/beta rhythms with
// gaussian noise, a draining battery level and a marker every two seconds.
type syntheticBoard struct {
	mu   sync.Mutex
	info BoardInfo
	now  func() time.Time
	rng  *rand.Rand

	phase [syntheticEEG]float64

	prepared  bool
	streaming bool
	t0        time.Time
	produced  uint64
	rows      []*ring
}

// NewSyntheticBoard returns a Board that needs no hardware. seed fixes the
// noise sequence.
func NewSyntheticBoard(seed int64) Board {
	return newSyntheticBoardWithClock(seed, time.Now)
}

func newSyntheticBoardWithClock(seed int64, now func() time.Time) *syntheticBoard {
	if now == nil {
		now = time.Now
	}
	eeg := make([]int, syntheticEEG)
	units := make([]string, syntheticRows)
	for i := range eeg {
		eeg[i] = i + 1
		units[i+1] = "uV"
	}
	units[syntheticBattery] = "%"

	b := &syntheticBoard{
		info: BoardInfo{
			Name:       "Synthetic",
			SampleRate: syntheticRate,
			Channels:   syntheticRows,
			EEG:        eeg,
			Marker:     syntheticMarker,
			Battery:    syntheticBattery,
			Labels:     append([]string(nil), syntheticLabels...),
			Units:      units,
		},
		now: now,
		rng: rand.New(rand.NewSource(seed)),
	}
	for i := range b.phase {
		b.phase[i] = b.rng.Float64() * 2 * math.Pi
	}
	return b
}

func (b *syntheticBoard) Info() BoardInfo { return b.info }

func (b *syntheticBoard) Prepared() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.prepared
}

func (b *syntheticBoard) Streaming() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.streaming
}

func (b *syntheticBoard) Prepare() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.prepared {
		return fmt.Errorf("board: %s: prepare: %w", b.info.Name, ErrAlreadyPrepared)
	}
	b.prepared = true
	return nil
}

func (b *syntheticBoard) Start(bufferSize int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.prepared {
		return fmt.Errorf("board: %s: start: %w", b.info.Name, ErrNotPrepared)
	}
	if b.streaming {
		return fmt.Errorf("board: %s: start: %w", b.info.Name, ErrStreaming)
	}
	if bufferSize < 1 {
		return fmt.Errorf("board: %s: start: invalid buffer size %d", b.info.Name, bufferSize)
	}
	b.rows = make([]*ring, syntheticRows)
	for i := range b.rows {
		b.rows[i] = newRing(bufferSize)
	}
	b.t0 = b.now()
	b.produced = 0
	b.streaming = true
	return nil
}

func (b *syntheticBoard) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.streaming {
		return fmt.Errorf("board: %s: stop: %w", b.info.Name, ErrNotStreaming)
	}
	b.catchUp()
	b.streaming = false
	return nil
}

func (b *syntheticBoard) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.prepared {
		return fmt.Errorf("board: %s: release: %w", b.info.Name, ErrNotPrepared)
	}
	b.streaming = false
	b.prepared = false
	b.rows = nil
	return nil
}

func (b *syntheticBoard) LatestWindow(n int) [][]float64 {
	if n < 0 {
		n = 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.streaming {
		b.catchUp()
	}
	out := make([][]float64, syntheticRows)
	for i := range out {
		out[i] = make([]float64, n)
		if b.rows != nil {
			b.rows[i].LastN(out[i])
		}
	}
	return out
}

// catchUp generates every sample due by now. A gap longer than the buffer
// only generates what the buffer can hold.
func (b *syntheticBoard) catchUp() {
	period := time.Second / syntheticRate
	elapsed := b.now().Sub(b.t0)
	if elapsed < 0 {
		return
	}
	due := uint64(elapsed / period)
	if due <= b.produced {
		return
	}
	if limit := uint64(b.rows[0].Cap()); due-b.produced > limit {
		b.produced = due - limit
	}
	for ; b.produced < due; b.produced++ {
		b.generate(b.produced)
	}
}

func (b *syntheticBoard) generate(i uint64) {
	t := float64(i) / syntheticRate

	b.rows[0].Append(float64(i % 256))
	for k := 0; k < syntheticEEG; k++ {
		gain := 1 + float64(k)/4
		theta := 10 * math.Sin(2*math.Pi*6*t+float64(k))
		alpha := 20 * math.Sin(2*math.Pi*10*t+b.phase[k])
		beta := 6 * math.Sin(2*math.Pi*float64(18+k)*t)
		noise := 4 * b.rng.NormFloat64()
		b.rows[k+1].Append(gain * (theta + alpha + beta + noise))
	}
	b.rows[syntheticBattery].Append(math.Max(0, 95-float64(i)*1e-4))

	marker := 0.0
	if i > 0 && i%markerEvery == 0 {
		marker = float64((i/markerEvery)%4 + 1)
	}
	b.rows[syntheticMarker].Append(marker)
}
