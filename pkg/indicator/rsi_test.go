package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSI_KnownValues(t *testing.T) {
	inc := NewRSI(iw(2), ClosePrice)

	closes := []float64{1, 2, 3, 2}
	want := []float64{0, 100, 100, 50}

	for i, c := range closes {
		got, _ := inc.Update(closeBar(c), true, false)
		assert.InDelta(t, want[i], got, 1e-9, "bar %d", i)
	}
}

func TestRSI_FlatStreamIsNeutral(t *testing.T) {
	inc := NewRSI(iw(14), ClosePrice)

	// zero gains over zero losses is 0/0 and sanitizes to the neutral value
	for i := 0; i < 20; i++ {
		got, _ := inc.Update(closeBar(42), true, false)
		assert.Equal(t, 0.0, got, "bar %d", i)
	}
}

func TestRSI_Outputs(t *testing.T) {
	inc := NewRSI(iw(2), ClosePrice)
	inc.Update(closeBar(1), true, false)

	got, out := inc.Update(closeBar(3), true, true)
	assert.InDelta(t, 100, got, 1e-9)
	assert.InDelta(t, 2.0, out["AvgGain"], 1e-9)
	assert.InDelta(t, 0.0, out["AvgLoss"], 1e-9)
}
