package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// Momentum is the difference between the current value and the value Window
// bars ago. The "ROC" output carries the same change as a percentage.
type Momentum struct {
	types.IntervalWindow
	Values floats.Slice

	mapper BarMapper
	ring   *RingBuffer
}

func NewMomentum(iw types.IntervalWindow, mapper BarMapper) *Momentum {
	return &Momentum{
		IntervalWindow: iw,
		mapper:         requireMapper(mapper),
		ring:           NewRingBuffer(clampLength(iw.Window)),
	}
}

func (inc *Momentum) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	var mom, roc float64
	if inc.ring.Len() >= inc.ring.Cap() {
		old := inc.ring.Offset(inc.ring.Cap()-1, 0)
		mom = v - old
		roc = Sanitize(100 * (v - old) / old)
	}

	if final {
		inc.ring.Append(v)
		inc.Values.Push(mom)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{"ROC": roc}
	}
	return mom, out
}

func (inc *Momentum) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *Momentum) Length() int {
	return inc.Values.Length()
}

func (inc *Momentum) Reset() {
	inc.ring.Clear()
	inc.Values = nil
}

var _ Indicator = (*Momentum)(nil)
