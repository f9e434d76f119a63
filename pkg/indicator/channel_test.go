package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonchianChannel_KnownValues(t *testing.T) {
	inc := NewDonchianChannel(iw(2))

	got, out := inc.Update(ohlcvBar(5, 1, 3, 0), true, true)
	assert.InDelta(t, 3.0, got, 1e-9)
	assert.InDelta(t, 5.0, out["Upper"], 1e-9)
	assert.InDelta(t, 1.0, out["Lower"], 1e-9)

	got, _ = inc.Update(ohlcvBar(3, 2, 2, 0), true, false)
	assert.InDelta(t, 3.0, got, 1e-9)

	// window slides off the first bar
	got, out = inc.Update(ohlcvBar(2, 0, 1, 0), true, true)
	assert.InDelta(t, 1.5, got, 1e-9)
	assert.InDelta(t, 3.0, out["Upper"], 1e-9)
	assert.InDelta(t, 0.0, out["Lower"], 1e-9)
}

func TestKeltnerChannel_KnownValues(t *testing.T) {
	inc := NewKeltnerChannel(iw(1), 1, 1)

	// typical (3+1+2)/3 = 2, ATR = 2
	got, out := inc.Update(ohlcvBar(3, 1, 2, 0), true, true)
	assert.InDelta(t, 2.0, got, 1e-9)
	assert.InDelta(t, 4.0, out["Upper"], 1e-9)
	assert.InDelta(t, 0.0, out["Lower"], 1e-9)
}

func TestKeltnerChannel_Defaults(t *testing.T) {
	inc := NewKeltnerChannel(iw(20), 0, 0)
	assert.Equal(t, 20, inc.ATRWindow, "ATR window falls back to the EMA window")
	assert.Equal(t, 2.0, inc.Multiplier)
}

func TestWilliamsR_KnownValues(t *testing.T) {
	inc := NewWilliamsR(iw(2))

	got, _ := inc.Update(ohlcvBar(2, 1, 2, 0), true, false)
	assert.InDelta(t, 0.0, got, 1e-9, "close at the window high")

	got, _ = inc.Update(ohlcvBar(3, 1, 1, 0), true, false)
	assert.InDelta(t, -100.0, got, 1e-9, "close at the window low")
}

func TestWilliamsR_FlatWindowIsNeutral(t *testing.T) {
	inc := NewWilliamsR(iw(4))
	got, _ := inc.Update(closeBar(7), true, false)
	assert.Equal(t, 0.0, got)
}
