package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// KeltnerChannel is an EMA of the typical price with bands at Multiplier
// average true ranges. The primary value is the middle line.
type KeltnerChannel struct {
	types.IntervalWindow
	ATRWindow  int
	Multiplier float64

	Values floats.Slice

	ema *EMA
	atr *ATR
}

func NewKeltnerChannel(iw types.IntervalWindow, atrWindow int, multiplier float64) *KeltnerChannel {
	if atrWindow <= 0 {
		atrWindow = iw.Window
	}
	if multiplier <= 0 {
		multiplier = 2.0
	}

	return &KeltnerChannel{
		IntervalWindow: iw,
		ATRWindow:      atrWindow,
		Multiplier:     multiplier,
		ema:            NewEMA(iw.Window),
		atr:            NewATR(types.IntervalWindow{Interval: iw.Interval, Window: atrWindow}),
	}
}

func (inc *KeltnerChannel) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	middle := inc.ema.Next(bar.Typical(), final)
	atr, _ := inc.atr.Update(bar, final, false)

	band := inc.Multiplier * atr
	upper := middle + band
	lower := middle - band

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

func (inc *KeltnerChannel) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *KeltnerChannel) Length() int {
	return inc.Values.Length()
}

func (inc *KeltnerChannel) Reset() {
	inc.ema.Reset()
	inc.atr.Reset()
	inc.Values = nil
}

var _ Indicator = (*KeltnerChannel)(nil)
