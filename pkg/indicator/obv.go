package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// OBV is On-Balance Volume: a cumulative total that adds the bar's volume on
// an up close and subtracts it on a down close.
type OBV struct {
	types.IntervalWindow
	Values floats.Slice

	total *DecaySum

	prevClose float64
	warm      bool
}

func NewOBV(iw types.IntervalWindow) *OBV {
	return &OBV{
		IntervalWindow: iw,
		total:          NewDecaySum(1.0),
	}
}

func (inc *OBV) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	var delta float64
	if inc.warm {
		switch {
		case bar.Close > inc.prevClose:
			delta = bar.Volume
		case bar.Close < inc.prevClose:
			delta = -bar.Volume
		}
	}

	var obv float64
	if final {
		obv = inc.total.Add(delta)
		inc.prevClose = bar.Close
		inc.warm = true
		inc.Values.Push(obv)
		inc.Values = inc.Values.Truncate(MaxHistory)
	} else {
		obv = inc.total.Preview(delta)
	}
	return obv, nil
}

func (inc *OBV) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *OBV) Length() int {
	return inc.Values.Length()
}

func (inc *OBV) Reset() {
	inc.total.Reset()
	inc.prevClose = 0
	inc.warm = false
	inc.Values = nil
}

var _ Indicator = (*OBV)(nil)
