package indicator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

// LinReg fits an ordinary least squares line through the trailing window and
// projects it onto the newest bar. The primary value is the fitted value at
// the newest position; outputs carry the intercept ("Alpha") and slope
// ("Beta"). Fewer than two samples give the neutral value.
type LinReg struct {
	types.IntervalWindow
	Values floats.Slice

	mapper BarMapper
	ring   *RingBuffer
}

func NewLinReg(iw types.IntervalWindow, mapper BarMapper) *LinReg {
	return &LinReg{
		IntervalWindow: iw,
		mapper:         requireMapper(mapper),
		ring:           NewRingBuffer(clampLength(iw.Window)),
	}
}

func (inc *LinReg) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	count := inc.ring.Len() + 1
	if count > inc.ring.Cap() {
		count = inc.ring.Cap()
	}

	var fitted, alpha, beta float64
	if count >= 2 {
		xs := make([]float64, count)
		ys := make([]float64, count)
		ys[count-1] = v
		for i := 0; i < count; i++ {
			xs[i] = float64(i)
			if i >= 1 {
				ys[count-1-i] = inc.ring.Offset(i-1, 0)
			}
		}

		alpha, beta = stat.LinearRegression(xs, ys, nil, false)
		fitted = Sanitize(alpha + beta*float64(count-1))
		alpha = Sanitize(alpha)
		beta = Sanitize(beta)
	}

	if final {
		inc.ring.Append(v)
		inc.Values.Push(fitted)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{"Alpha": alpha, "Beta": beta}
	}
	return fitted, out
}

func (inc *LinReg) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *LinReg) Length() int {
	return inc.Values.Length()
}

func (inc *LinReg) Reset() {
	inc.ring.Clear()
	inc.Values = nil
}

var _ Indicator = (*LinReg)(nil)
