package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollingMax_Scenario(t *testing.T) {
	w := NewRollingMax(3)

	input := []float64{5, 3, 8, 1, 2}
	want := []float64{5, 5, 8, 8, 8}
	for i, v := range input {
		assert.Equal(t, want[i], w.Add(v), "step %d", i)
	}
}

// brute-force oracle over the trailing window
func trailingExtremum(history []float64, window int, max bool) float64 {
	from := len(history) - window
	if from < 0 {
		from = 0
	}
	best := history[from]
	for _, v := range history[from+1:] {
		if max {
			best = math.Max(best, v)
		} else {
			best = math.Min(best, v)
		}
	}
	return best
}

func TestRollingMaxMin_Oracle(t *testing.T) {
	input := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4, 3}

	for _, window := range []int{1, 2, 3, 5, 7} {
		maxW := NewRollingMax(window)
		minW := NewRollingMin(window)

		var history []float64
		for i, v := range input {
			// previews against two different candidates must not disturb state
			maxW.Preview(v + 100)
			maxW.Preview(v - 100)
			minW.Preview(v + 100)
			minW.Preview(v - 100)

			wantMax := trailingExtremum(append(history, v), window, true)
			wantMin := trailingExtremum(append(history, v), window, false)

			assert.Equal(t, wantMax, maxW.Preview(v), "window=%d step=%d preview", window, i)
			assert.Equal(t, wantMin, minW.Preview(v), "window=%d step=%d preview", window, i)

			assert.Equal(t, wantMax, maxW.Add(v), "window=%d step=%d", window, i)
			assert.Equal(t, wantMin, minW.Add(v), "window=%d step=%d", window, i)
			assert.Equal(t, wantMax, maxW.Last())
			assert.Equal(t, wantMin, minW.Last())

			history = append(history, v)
		}
	}
}

func TestRollingMax_ColdAndReset(t *testing.T) {
	w := NewRollingMax(2)
	assert.Equal(t, 0.0, w.Last(), "cold window reads neutral")

	first := []float64{4, 7, 1}
	var firstRun []float64
	for _, v := range first {
		firstRun = append(firstRun, w.Add(v))
	}

	w.Reset()
	assert.Equal(t, 0.0, w.Last())

	// replay after reset is bit-identical to a fresh instance
	for i, v := range first {
		assert.Equal(t, firstRun[i], w.Add(v))
	}
}
