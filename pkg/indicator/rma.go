package indicator

// RMA is Wilder's running moving average: seeded with the simple average of
// the first length samples, then smoothed recursively with alpha = 1/length.
// A length of 1 degenerates to returning the input unchanged.
type RMA struct {
	length int
	seed   *RollingSum
	last   float64
	count  int
}

func NewRMA(length int) *RMA {
	length = clampLength(length)
	return &RMA{
		length: length,
		seed:   NewRollingSum(length),
	}
}

func (s *RMA) Next(v float64, final bool) float64 {
	var next float64
	if s.count < s.length {
		// seeding phase: running mean of the samples seen so far
		var sum float64
		var count int
		if final {
			sum, count = s.seed.Add(v)
		} else {
			sum, count = s.seed.Preview(v)
		}
		next = sum / float64(count)
	} else {
		alpha := 1.0 / float64(s.length)
		next = s.last + alpha*(v-s.last)
	}

	if final {
		s.last = next
		s.count++
	}
	return next
}

func (s *RMA) Last() float64 {
	return s.last
}

func (s *RMA) Reset() {
	s.seed.Reset()
	s.last = 0
	s.count = 0
}
