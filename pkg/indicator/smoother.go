package indicator

import (
	"strings"

	"github.com/pkg/errors"
)

// MAType selects a moving-average algorithm for the components that take a
// configurable smoother.
type MAType string

const (
	MATypeSMA MAType = "SMA"
	MATypeEMA MAType = "EMA"
	MATypeWMA MAType = "WMA"

	// MATypeRMA is Wilder's smoothing (running moving average).
	MATypeRMA MAType = "RMA"
)

// Smoother is a stateful moving average. Next with final=false computes the
// result as if v were the next sample without mutating retained state, so the
// same unclosed bar can be re-evaluated any number of times; final=true
// commits. Last returns the most recent committed value, 0 before the first
// commit.
type Smoother interface {
	Next(v float64, final bool) float64
	Last() float64
	Reset()
}

// NewSmoother builds a smoother of the given kind. The length is clamped to a
// minimum of 1; an unknown kind is a construction error, never a streaming
// one.
func NewSmoother(t MAType, length int) (Smoother, error) {
	switch MAType(strings.ToUpper(string(t))) {
	case MATypeSMA:
		return NewSMA(length), nil
	case MATypeEMA:
		return NewEMA(length), nil
	case MATypeWMA:
		return NewWMA(length), nil
	case MATypeRMA:
		return NewRMA(length), nil
	}

	return nil, errors.Errorf("unsupported moving average type %q", t)
}

func clampLength(length int) int {
	if length < 1 {
		return 1
	}
	return length
}
