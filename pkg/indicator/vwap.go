package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// VWAP is the volume-weighted average of the typical price over the trailing
// window. With no volume in the window it sanitizes to 0.
type VWAP struct {
	types.IntervalWindow
	Values floats.Slice

	priceVolume *RollingSum
	volume      *RollingSum
}

func NewVWAP(iw types.IntervalWindow) *VWAP {
	return &VWAP{
		IntervalWindow: iw,
		priceVolume:    NewRollingSum(iw.Window),
		volume:         NewRollingSum(iw.Window),
	}
}

func (inc *VWAP) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	pv := bar.Typical() * bar.Volume

	var pvSum, vSum float64
	if final {
		pvSum, _ = inc.priceVolume.Add(pv)
		vSum, _ = inc.volume.Add(bar.Volume)
	} else {
		pvSum, _ = inc.priceVolume.Preview(pv)
		vSum, _ = inc.volume.Preview(bar.Volume)
	}

	vwap := Sanitize(pvSum / vSum)

	if final {
		inc.Values.Push(vwap)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}
	return vwap, nil
}

func (inc *VWAP) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *VWAP) Length() int {
	return inc.Values.Length()
}

func (inc *VWAP) Reset() {
	inc.priceVolume.Reset()
	inc.volume.Reset()
	inc.Values = nil
}

var _ Indicator = (*VWAP)(nil)
