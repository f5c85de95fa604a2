package hal

// ring is a fixed-capacity sample buffer that overwrites its oldest entry.
type ring struct {
	buf   []float64
	head  int
	count int
}

func newRing(n int) *ring {
	if n < 1 {
		n = 1
	}
	return &ring{buf: make([]float64, n)}
}

func (r *ring) Len() int { return r.count }
func (r *ring) Cap() int { return len(r.buf) }

func (r *ring) Append(v float64) {
	r.buf[r.head] = v
	r.head++
	if r.head >= len(r.buf) {
		r.head = 0
	}
	if r.count < len(r.buf) {
		r.count++
	}
}

func (r *ring) At(i int) float64 {
	if i < 0 || i >= r.count {
		return 0
	}
	idx := r.head - r.count + i
	if idx < 0 {
		idx += len(r.buf)
	}
	return r.buf[idx]
}

// LastN copies the newest len(dst) values into dst, oldest first. When the
// ring holds fewer, the front of dst is zeroed.
func (r *ring) LastN(dst []float64) {
	n := len(dst)
	have := r.count
	if have > n {
		have = n
	}
	pad := n - have
	for i := 0; i < pad; i++ {
		dst[i] = 0
	}
	start := r.count - have
	for i := 0; i < have; i++ {
		dst[pad+i] = r.At(start + i)
	}
}
