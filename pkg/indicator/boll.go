package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

/*
boll implements the Bollinger Bands indicator:

https://www.investopedia.com/terms/b/bollingerbands.asp

The primary value is the middle band (the window mean). The bands use the
population standard deviation of the window.
*/
type BollingerBands struct {
	types.IntervalWindow

	// K is the band width in standard deviations, conventionally 2.
	K float64

	Values floats.Slice

	mapper BarMapper
	stat   *RollingStat
}

func NewBollingerBands(iw types.IntervalWindow, k float64, mapper BarMapper) *BollingerBands {
	if k <= 0 {
		k = 2.0
	}
	return &BollingerBands{
		IntervalWindow: iw,
		K:              k,
		mapper:         requireMapper(mapper),
		stat:           NewRollingStat(clampLength(iw.Window)),
	}
}

func (inc *BollingerBands) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	var mean, std float64
	if final {
		mean, std = inc.stat.Add(v)
	} else {
		mean, std = inc.stat.Preview(v)
	}

	band := inc.K * std
	upper := mean + band
	lower := mean - band

	if final {
		inc.Values.Push(mean)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{
			"UpperBand":  upper,
			"MiddleBand": mean,
			"LowerBand":  lower,
			"BandWidth":  Sanitize((upper - lower) / mean),
		}
	}
	return mean, out
}

func (inc *BollingerBands) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *BollingerBands) Length() int {
	return inc.Values.Length()
}

func (inc *BollingerBands) Reset() {
	inc.stat.Reset()
	inc.Values = nil
}

var _ Indicator = (*BollingerBands)(nil)
