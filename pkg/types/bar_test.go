package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarPrices(t *testing.T) {
	b := Bar{Open: 1, High: 4, Low: 2, Close: 3}

	assert.InDelta(t, 3.0, b.Typical(), 1e-9)
	assert.InDelta(t, 3.0, b.Median(), 1e-9)
	assert.InDelta(t, 2.5, b.OHLC4(), 1e-9)
	assert.InDelta(t, 2.0, b.Range(), 1e-9)
}

func TestIntervalDuration(t *testing.T) {
	assert.Equal(t, 60, Interval1h.Minutes())
	assert.Equal(t, Interval1m.Duration()*60, Interval1h.Duration())
	assert.Equal(t, "1h (14)", IntervalWindow{Interval: Interval1h, Window: 14}.String())
}
