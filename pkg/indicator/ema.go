package indicator

// EMA is the exponential moving average with the usual 2/(length+1)
// multiplier. With a length of 1 the multiplier is 1 and the smoother
// returns its input unchanged.
type EMA struct {
	length     int
	multiplier float64
	last       float64
	warm       bool
}

func NewEMA(length int) *EMA {
	length = clampLength(length)
	return &EMA{
		length:     length,
		multiplier: 2.0 / float64(length+1),
	}
}

func (s *EMA) Next(v float64, final bool) float64 {
	next := v
	if s.warm {
		next = s.last + s.multiplier*(v-s.last)
	}

	if final {
		s.last = next
		s.warm = true
	}
	return next
}

func (s *EMA) Last() float64 {
	return s.last
}

func (s *EMA) Reset() {
	s.last = 0
	s.warm = false
}
