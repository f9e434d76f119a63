package indicator

// WMA is the linearly weighted moving average: the newest sample in the
// window gets weight n, the oldest weight 1.
type WMA struct {
	ring *RingBuffer
	last float64
}

func NewWMA(length int) *WMA {
	return &WMA{ring: NewRingBuffer(clampLength(length))}
}

// value computes the weighted average of the trailing window as if candidate
// were the newest sample. When the ring is full the sample that would be
// evicted is excluded by the count cap.
func (s *WMA) value(candidate float64) float64 {
	count := s.ring.Len() + 1
	if count > s.ring.Cap() {
		count = s.ring.Cap()
	}

	var num, denom float64
	for i := 0; i < count; i++ {
		weight := float64(count - i)
		x := candidate
		if i > 0 {
			x = s.ring.Offset(i-1, 0)
		}
		num += weight * x
		denom += weight
	}
	return num / denom
}

func (s *WMA) Next(v float64, final bool) float64 {
	out := s.value(v)
	if final {
		s.ring.Append(v)
		s.last = out
	}
	return out
}

func (s *WMA) Last() float64 {
	return s.last
}

func (s *WMA) Reset() {
	s.ring.Clear()
	s.last = 0
}
