package floats

import "math"

// Slice is an append-only float64 series. Indexed reads go through Last(i)
// which counts back from the most recent element and returns 0 when the
// history is shorter than requested.
type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

// Last returns the i-th value counting back from the end, 0 if out of range.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if i < 0 || length-i-1 < 0 {
		return 0
	}
	return s[length-i-1]
}

func (s Slice) Length() int {
	return len(s)
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return s.Sum() / float64(len(s))
}

func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

// Tail returns a copy of the last size elements.
func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

// Truncate drops the oldest elements so that at most size remain, in place.
func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}
