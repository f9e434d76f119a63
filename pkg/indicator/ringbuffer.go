package indicator

// RingBuffer is a fixed-capacity FIFO of float64 samples with O(1) append and
// O(1) lookup by offset from the most recent commit. Once full, every append
// evicts the oldest sample. The capacity is clamped to at least 1.
type RingBuffer struct {
	buf  []float64
	head int // next write position
	size int
}

func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{buf: make([]float64, capacity)}
}

// Append commits v. When the buffer is at capacity the oldest sample is
// overwritten and returned with ok=true.
func (r *RingBuffer) Append(v float64) (evicted float64, ok bool) {
	if r.size == len(r.buf) {
		evicted, ok = r.buf[r.head], true
	} else {
		r.size++
	}
	r.buf[r.head] = v
	r.head = (r.head + 1) % len(r.buf)
	return evicted, ok
}

// Preview reports what Append(v) would evict, without mutating the buffer.
func (r *RingBuffer) Preview(v float64) (evicted float64, ok bool) {
	_ = v
	if r.size == len(r.buf) {
		return r.buf[r.head], true
	}
	return 0, false
}

// Offset returns the sample committed i appends ago, where 0 is the most
// recent. When fewer than i+1 samples are retained it returns def; warm-up
// reads come back as the caller's neutral value instead of an error.
func (r *RingBuffer) Offset(i int, def float64) float64 {
	if i < 0 || i >= r.size {
		return def
	}
	idx := r.head - 1 - i
	if idx < 0 {
		idx += len(r.buf)
	}
	return r.buf[idx]
}

func (r *RingBuffer) Len() int {
	return r.size
}

func (r *RingBuffer) Cap() int {
	return len(r.buf)
}

func (r *RingBuffer) Clear() {
	r.head = 0
	r.size = 0
}
