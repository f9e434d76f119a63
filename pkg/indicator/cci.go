package indicator

import (
	"math"

	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

/*
cci implements the Commodity Channel Index:

https://www.investopedia.com/terms/c/commoditychannelindex.asp

The mean deviation has no O(1) decomposition, so the window is rescanned per
update; the cost is bounded by the configured window length.
*/
type CCI struct {
	types.IntervalWindow
	Values floats.Slice

	mapper BarMapper
	ring   *RingBuffer
}

func NewCCI(iw types.IntervalWindow, mapper BarMapper) *CCI {
	return &CCI{
		IntervalWindow: iw,
		mapper:         requireMapper(mapper),
		ring:           NewRingBuffer(clampLength(iw.Window)),
	}
}

func (inc *CCI) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	count := inc.ring.Len() + 1
	if count > inc.ring.Cap() {
		count = inc.ring.Cap()
	}

	sum := v
	for i := 0; i < count-1; i++ {
		sum += inc.ring.Offset(i, 0)
	}
	mean := sum / float64(count)

	deviation := math.Abs(v - mean)
	for i := 0; i < count-1; i++ {
		deviation += math.Abs(inc.ring.Offset(i, 0) - mean)
	}
	deviation /= float64(count)

	cci := Sanitize((v - mean) / (0.015 * deviation))

	if final {
		inc.ring.Append(v)
		inc.Values.Push(cci)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}
	return cci, nil
}

func (inc *CCI) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *CCI) Length() int {
	return inc.Values.Length()
}

func (inc *CCI) Reset() {
	inc.ring.Clear()
	inc.Values = nil
}

var _ Indicator = (*CCI)(nil)
