package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStochastic_KnownValues(t *testing.T) {
	inc := NewStochastic(iw(3), 2)

	got, out := inc.Update(ohlcvBar(2, 1, 2, 0), true, true)
	assert.InDelta(t, 100.0, got, 1e-9, "close at the window high")
	assert.InDelta(t, 100.0, out["D"], 1e-9)

	got, out = inc.Update(ohlcvBar(3, 1, 1, 0), true, true)
	assert.InDelta(t, 0.0, got, 1e-9, "close at the window low")
	assert.InDelta(t, 50.0, out["D"], 1e-9)

	got, out = inc.Update(ohlcvBar(2, 2, 2, 0), true, true)
	assert.InDelta(t, 50.0, got, 1e-9, "(2-1)/(3-1) of the range")
	assert.InDelta(t, 25.0, out["D"], 1e-9)
}

func TestStochastic_FlatWindow(t *testing.T) {
	inc := NewStochastic(iw(5), 3)

	got, _ := inc.Update(closeBar(10), true, false)
	assert.InDelta(t, 50.0, got, 1e-9, "a flat window pins %K to 50")
}

func TestStochastic_DefaultDWindow(t *testing.T) {
	inc := NewStochastic(iw(14), 0)
	assert.Equal(t, DefaultStochasticDWindow, inc.DWindow)
}
