package indicator

import "math"

// RollingSum maintains the sum over the trailing window of committed samples
// in O(1) per commit, by adding the incoming value and subtracting whatever
// the underlying ring buffer evicts.
type RollingSum struct {
	ring *RingBuffer
	sum  float64
}

func NewRollingSum(window int) *RollingSum {
	return &RollingSum{ring: NewRingBuffer(window)}
}

// Add commits v and returns the trailing sum together with the number of
// retained samples. The count saturates at the window capacity; callers
// divide by it to get warm-up-correct averages.
func (w *RollingSum) Add(v float64) (sum float64, count int) {
	evicted, ok := w.ring.Append(v)
	if ok {
		w.sum -= evicted
	}
	w.sum += v
	return w.sum, w.ring.Len()
}

// Preview returns what Add(v) would return, without mutating the window.
// The operations run in the same order as Add so the result is bit-identical.
func (w *RollingSum) Preview(v float64) (sum float64, count int) {
	sum = w.sum
	if evicted, ok := w.ring.Preview(v); ok {
		sum -= evicted
	}
	sum += v
	count = w.ring.Len()
	if count < w.ring.Cap() {
		count++
	}
	return sum, count
}

func (w *RollingSum) Sum() float64 {
	return w.sum
}

func (w *RollingSum) Count() int {
	return w.ring.Len()
}

// Mean returns the average of the retained samples, 0 before the first commit.
func (w *RollingSum) Mean() float64 {
	if w.ring.Len() == 0 {
		return 0
	}
	return w.sum / float64(w.ring.Len())
}

func (w *RollingSum) Reset() {
	w.ring.Clear()
	w.sum = 0
}

// RollingStat extends the rolling sum with a sum of squares so that the
// trailing mean and population standard deviation come out of the same O(1)
// commit discipline.
type RollingStat struct {
	ring  *RingBuffer
	sum   float64
	sumsq float64
}

func NewRollingStat(window int) *RollingStat {
	return &RollingStat{ring: NewRingBuffer(window)}
}

func (w *RollingStat) Add(v float64) (mean, std float64) {
	evicted, ok := w.ring.Append(v)
	if ok {
		w.sum -= evicted
		w.sumsq -= evicted * evicted
	}
	w.sum += v
	w.sumsq += v * v
	return w.stat(w.sum, w.sumsq, w.ring.Len())
}

func (w *RollingStat) Preview(v float64) (mean, std float64) {
	sum := w.sum
	sumsq := w.sumsq
	if evicted, ok := w.ring.Preview(v); ok {
		sum -= evicted
		sumsq -= evicted * evicted
	}
	sum += v
	sumsq += v * v
	count := w.ring.Len()
	if count < w.ring.Cap() {
		count++
	}
	return w.stat(sum, sumsq, count)
}

func (w *RollingStat) stat(sum, sumsq float64, count int) (mean, std float64) {
	if count == 0 {
		return 0, 0
	}
	n := float64(count)
	mean = sum / n
	// floating point cancellation can push the variance slightly negative
	variance := sumsq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

func (w *RollingStat) Reset() {
	w.ring.Clear()
	w.sum = 0
	w.sumsq = 0
}

// DecaySum is a cumulative aggregate with a forgetting factor: each commit
// scales the running total by decay before adding the new sample. A decay of
// 1 gives a plain cumulative sum.
type DecaySum struct {
	decay float64
	total float64
}

func NewDecaySum(decay float64) *DecaySum {
	return &DecaySum{decay: decay}
}

func (w *DecaySum) Add(v float64) float64 {
	w.total = w.total*w.decay + v
	return w.total
}

func (w *DecaySum) Preview(v float64) float64 {
	return w.total*w.decay + v
}

func (w *DecaySum) Total() float64 {
	return w.total
}

func (w *DecaySum) Reset() {
	w.total = 0
}
