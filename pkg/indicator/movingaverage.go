package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// MovingAverage adapts any Smoother to the per-bar Indicator contract.
type MovingAverage struct {
	types.IntervalWindow
	Type   MAType
	Values floats.Slice

	mapper   BarMapper
	smoother Smoother
}

func NewMovingAverage(iw types.IntervalWindow, t MAType, mapper BarMapper) (*MovingAverage, error) {
	smoother, err := NewSmoother(t, iw.Window)
	if err != nil {
		return nil, err
	}

	return &MovingAverage{
		IntervalWindow: iw,
		Type:           t,
		mapper:         requireMapper(mapper),
		smoother:       smoother,
	}, nil
}

func (inc *MovingAverage) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := Sanitize(inc.smoother.Next(inc.mapper(bar), final))
	if final {
		inc.Values.Push(v)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}
	return v, nil
}

func (inc *MovingAverage) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *MovingAverage) Length() int {
	return inc.Values.Length()
}

func (inc *MovingAverage) Reset() {
	inc.smoother.Reset()
	inc.Values = nil
}

var _ Indicator = (*MovingAverage)(nil)
