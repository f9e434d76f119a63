package indicator

// SMA is the simple moving average over the trailing window. During warm-up
// it divides by the number of samples seen rather than the nominal length.
type SMA struct {
	window *RollingSum
	last   float64
}

func NewSMA(length int) *SMA {
	return &SMA{window: NewRollingSum(clampLength(length))}
}

func (s *SMA) Next(v float64, final bool) float64 {
	if !final {
		sum, count := s.window.Preview(v)
		return sum / float64(count)
	}

	sum, count := s.window.Add(v)
	s.last = sum / float64(count)
	return s.last
}

func (s *SMA) Last() float64 {
	return s.last
}

func (s *SMA) Reset() {
	s.window.Reset()
	s.last = 0
}
