package indicator

// extremumEntry is a (value, commit sequence) candidate kept by the rolling
// extremum windows.
type extremumEntry struct {
	value float64
	seq   int
}

// RollingMax maintains the maximum over the trailing window of committed
// samples with a monotonic deque: amortized O(1) per Add, O(1) query.
type RollingMax struct {
	window int
	deq    []extremumEntry
	seq    int
}

func NewRollingMax(window int) *RollingMax {
	if window < 1 {
		window = 1
	}
	return &RollingMax{window: window}
}

// Add commits v and returns the maximum of the trailing window values.
func (w *RollingMax) Add(v float64) float64 {
	for n := len(w.deq); n > 0 && w.deq[n-1].value <= v; n = len(w.deq) {
		w.deq = w.deq[:n-1]
	}
	w.deq = append(w.deq, extremumEntry{value: v, seq: w.seq})
	w.seq++
	for w.deq[0].seq <= w.seq-1-w.window {
		w.deq = w.deq[1:]
	}
	return w.deq[0].value
}

// Preview returns what Add(v) would return, without mutating the window.
func (w *RollingMax) Preview(v float64) float64 {
	best := v
	for _, e := range w.deq {
		// the oldest candidate may fall out once v is appended
		if e.seq > w.seq-w.window && e.value > best {
			best = e.value
		}
	}
	return best
}

// Last returns the current windowed maximum, 0 before the first commit.
func (w *RollingMax) Last() float64 {
	if len(w.deq) == 0 {
		return 0
	}
	return w.deq[0].value
}

func (w *RollingMax) Reset() {
	w.deq = w.deq[:0]
	w.seq = 0
}

// RollingMin is the mirror of RollingMax for the trailing-window minimum.
type RollingMin struct {
	window int
	deq    []extremumEntry
	seq    int
}

func NewRollingMin(window int) *RollingMin {
	if window < 1 {
		window = 1
	}
	return &RollingMin{window: window}
}

func (w *RollingMin) Add(v float64) float64 {
	for n := len(w.deq); n > 0 && w.deq[n-1].value >= v; n = len(w.deq) {
		w.deq = w.deq[:n-1]
	}
	w.deq = append(w.deq, extremumEntry{value: v, seq: w.seq})
	w.seq++
	for w.deq[0].seq <= w.seq-1-w.window {
		w.deq = w.deq[1:]
	}
	return w.deq[0].value
}

func (w *RollingMin) Preview(v float64) float64 {
	best := v
	for _, e := range w.deq {
		if e.seq > w.seq-w.window && e.value < best {
			best = e.value
		}
	}
	return best
}

func (w *RollingMin) Last() float64 {
	if len(w.deq) == 0 {
		return 0
	}
	return w.deq[0].value
}

func (w *RollingMin) Reset() {
	w.deq = w.deq[:0]
	w.seq = 0
}
