package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCI_KnownValues(t *testing.T) {
	inc := NewCCI(iw(3), ClosePrice)

	got, _ := inc.Update(closeBar(1), true, false)
	assert.Equal(t, 0.0, got, "zero deviation sanitizes to neutral")

	// window [1, 2]: mean 1.5, mean deviation 0.5
	got, _ = inc.Update(closeBar(2), true, false)
	assert.InDelta(t, 0.5/(0.015*0.5), got, 1e-9)

	// window [1, 2, 3]: mean 2, mean deviation 2/3
	got, _ = inc.Update(closeBar(3), true, false)
	assert.InDelta(t, 100.0, got, 1e-9)
}
