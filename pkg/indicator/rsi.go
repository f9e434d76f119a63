package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

/*
rsi implements the Relative Strength Index with Wilder's smoothing of the
average gain and average loss.

https://www.investopedia.com/terms/r/rsi.asp
*/
type RSI struct {
	types.IntervalWindow
	Values floats.Slice

	mapper  BarMapper
	avgGain *RMA
	avgLoss *RMA

	prev float64
	warm bool
}

func NewRSI(iw types.IntervalWindow, mapper BarMapper) *RSI {
	return &RSI{
		IntervalWindow: iw,
		mapper:         requireMapper(mapper),
		avgGain:        NewRMA(iw.Window),
		avgLoss:        NewRMA(iw.Window),
	}
}

func (inc *RSI) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	if !inc.warm {
		// no previous committed value to diff against yet
		if final {
			inc.prev = v
			inc.warm = true
			inc.Values.Push(0)
		}
		var out OutputMap
		if includeOutputs {
			out = OutputMap{"AvgGain": 0, "AvgLoss": 0}
		}
		return 0, out
	}

	change := v - inc.prev
	var gain, loss float64
	if change >= 0 {
		gain = change
	} else {
		loss = -change
	}

	avgGain := inc.avgGain.Next(gain, final)
	avgLoss := inc.avgLoss.Next(loss, final)

	// avgLoss of 0 drives rs to +Inf and rsi to exactly 100; 0/0 is NaN and
	// sanitizes to the neutral value
	rs := avgGain / avgLoss
	rsi := Sanitize(100.0 - 100.0/(1.0+rs))

	if final {
		inc.prev = v
		inc.Values.Push(rsi)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{"AvgGain": avgGain, "AvgLoss": avgLoss}
	}
	return rsi, out
}

func (inc *RSI) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *RSI) Length() int {
	return inc.Values.Length()
}

func (inc *RSI) Reset() {
	inc.avgGain.Reset()
	inc.avgLoss.Reset()
	inc.prev = 0
	inc.warm = false
	inc.Values = nil
}

var _ Indicator = (*RSI)(nil)
