package indicator

import (
	"math"

	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// ATR is the Average True Range: Wilder's smoothing applied to the true
// range. The first bar has no previous close, so its true range is just
// high - low. Outputs: "TR" (this bar's true range) and "ATRP" (ATR as a
// percentage of the close).
type ATR struct {
	types.IntervalWindow
	Values floats.Slice

	rma *RMA

	prevClose float64
	warm      bool
}

func NewATR(iw types.IntervalWindow) *ATR {
	return &ATR{
		IntervalWindow: iw,
		rma:            NewRMA(iw.Window),
	}
}

func (inc *ATR) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	tr := bar.Range()
	if inc.warm {
		tr = math.Max(tr, math.Max(
			math.Abs(bar.High-inc.prevClose),
			math.Abs(bar.Low-inc.prevClose)))
	}

	atr := inc.rma.Next(tr, final)

	if final {
		inc.prevClose = bar.Close
		inc.warm = true
		inc.Values.Push(atr)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{
			"TR":   tr,
			"ATRP": Sanitize(atr / bar.Close * 100.0),
		}
	}
	return atr, out
}

func (inc *ATR) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *ATR) Length() int {
	return inc.Values.Length()
}

func (inc *ATR) Reset() {
	inc.rma.Reset()
	inc.prevClose = 0
	inc.warm = false
	inc.Values = nil
}

var _ Indicator = (*ATR)(nil)
