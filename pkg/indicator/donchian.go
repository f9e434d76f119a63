package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// DonchianChannel tracks the highest high and lowest low over the trailing
// window. The primary value is the middle line.
type DonchianChannel struct {
	types.IntervalWindow
	Values floats.Slice

	highs *RollingMax
	lows  *RollingMin
}

func NewDonchianChannel(iw types.IntervalWindow) *DonchianChannel {
	return &DonchianChannel{
		IntervalWindow: iw,
		highs:          NewRollingMax(iw.Window),
		lows:           NewRollingMin(iw.Window),
	}
}

func (inc *DonchianChannel) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	var upper, lower float64
	if final {
		upper = inc.highs.Add(bar.High)
		lower = inc.lows.Add(bar.Low)
	} else {
		upper = inc.highs.Preview(bar.High)
		lower = inc.lows.Preview(bar.Low)
	}

	middle := (upper + lower) / 2.0

	if final {
		inc.Values.Push(middle)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{
			"Upper":  upper,
			"Middle": middle,
			"Lower":  lower,
		}
	}
	return middle, out
}

func (inc *DonchianChannel) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *DonchianChannel) Length() int {
	return inc.Values.Length()
}

func (inc *DonchianChannel) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.Values = nil
}

var _ Indicator = (*DonchianChannel)(nil)
