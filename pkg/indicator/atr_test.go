package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestATR_TrueRange(t *testing.T) {
	// window 1 degenerates the smoothing, so the ATR is the bar's true range
	inc := NewATR(iw(1))

	got, _ := inc.Update(ohlcvBar(3, 1, 2, 0), true, false)
	assert.InDelta(t, 2.0, got, 1e-9, "first bar has no previous close")

	// prev close 2: TR = max(4-3, |4-2|, |3-2|) = 2
	got, out := inc.Update(ohlcvBar(4, 3, 4, 0), true, true)
	assert.InDelta(t, 2.0, got, 1e-9)
	assert.InDelta(t, 2.0, out["TR"], 1e-9)
	assert.InDelta(t, 50.0, out["ATRP"], 1e-9, "2/4 of the close")

	// gap down: TR = max(1.5-1, |1.5-4|, |1-4|) = 3
	_, out = inc.Update(ohlcvBar(1.5, 1, 1.2, 0), true, true)
	assert.InDelta(t, 3.0, out["TR"], 1e-9)
}

func TestATR_Smoothing(t *testing.T) {
	inc := NewATR(iw(2))

	inc.Update(ohlcvBar(3, 1, 2, 0), true, false)  // TR 2
	got, _ := inc.Update(ohlcvBar(6, 2, 5, 0), true, false) // TR 4
	assert.InDelta(t, 3.0, got, 1e-9, "seeded with the mean of the first TRs")

	// recursive phase: 3 + (TR-3)/2, TR = max(7-5, |7-5|, |5-5|) = 2
	got, _ = inc.Update(ohlcvBar(7, 5, 6, 0), true, false)
	assert.InDelta(t, 2.5, got, 1e-9)
}
