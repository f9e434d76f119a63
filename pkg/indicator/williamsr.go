package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// WilliamsR is Williams %R, ranging from -100 (close at the window low) to 0
// (close at the window high). A flat window sanitizes to 0.
type WilliamsR struct {
	types.IntervalWindow
	Values floats.Slice

	highs *RollingMax
	lows  *RollingMin
}

func NewWilliamsR(iw types.IntervalWindow) *WilliamsR {
	return &WilliamsR{
		IntervalWindow: iw,
		highs:          NewRollingMax(iw.Window),
		lows:           NewRollingMin(iw.Window),
	}
}

func (inc *WilliamsR) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	var highest, lowest float64
	if final {
		highest = inc.highs.Add(bar.High)
		lowest = inc.lows.Add(bar.Low)
	} else {
		highest = inc.highs.Preview(bar.High)
		lowest = inc.lows.Preview(bar.Low)
	}

	r := Sanitize(-100.0 * (highest - bar.Close) / (highest - lowest))

	if final {
		inc.Values.Push(r)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}
	return r, nil
}

func (inc *WilliamsR) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *WilliamsR) Length() int {
	return inc.Values.Length()
}

func (inc *WilliamsR) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.Values = nil
}

var _ Indicator = (*WilliamsR)(nil)
