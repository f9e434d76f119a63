package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

const DefaultStochasticDWindow = 3

/*
stoch implements the stochastic oscillator:

https://www.investopedia.com/terms/s/stochasticoscillator.asp

The primary value is %K; %D is a simple moving average of %K. When the
window's high equals its low, %K is pinned to 50.
*/
type Stochastic struct {
	types.IntervalWindow
	DWindow int

	Values floats.Slice

	highs *RollingMax
	lows  *RollingMin
	d     *SMA
}

func NewStochastic(iw types.IntervalWindow, dWindow int) *Stochastic {
	if dWindow <= 0 {
		dWindow = DefaultStochasticDWindow
	}
	return &Stochastic{
		IntervalWindow: iw,
		DWindow:        dWindow,
		highs:          NewRollingMax(iw.Window),
		lows:           NewRollingMin(iw.Window),
		d:              NewSMA(dWindow),
	}
}

func (inc *Stochastic) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	var highest, lowest float64
	if final {
		highest = inc.highs.Add(bar.High)
		lowest = inc.lows.Add(bar.Low)
	} else {
		highest = inc.highs.Preview(bar.High)
		lowest = inc.lows.Preview(bar.Low)
	}

	k := 50.0
	if highest != lowest {
		k = 100.0 * (bar.Close - lowest) / (highest - lowest)
	}

	d := inc.d.Next(k, final)

	if final {
		inc.Values.Push(k)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{"K": k, "D": d}
	}
	return k, out
}

func (inc *Stochastic) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *Stochastic) Length() int {
	return inc.Values.Length()
}

func (inc *Stochastic) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.d.Reset()
	inc.Values = nil
}

var _ Indicator = (*Stochastic)(nil)
