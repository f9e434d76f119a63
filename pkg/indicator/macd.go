package indicator

import (
	"github.com/kaelx/tastream/pkg/floats"
	"github.com/kaelx/tastream/pkg/types"
)

const DefaultMACDShort = 12
const DefaultMACDLong = 26
const DefaultMACDSignal = 9

// MACD is the moving average convergence divergence. The IntervalWindow's
// Window is the signal period; Short and Long are the fast and slow EMA
// lengths. The primary value is the MACD line; outputs carry "MACD",
// "Signal" and "Histogram".
type MACD struct {
	types.IntervalWindow
	Short int
	Long  int

	Values floats.Slice

	mapper BarMapper
	fast   *EMA
	slow   *EMA
	signal *EMA
}

func NewMACD(iw types.IntervalWindow, short, long int, mapper BarMapper) *MACD {
	if short <= 0 {
		short = DefaultMACDShort
	}
	if long <= 0 {
		long = DefaultMACDLong
	}
	if iw.Window <= 0 {
		iw.Window = DefaultMACDSignal
	}

	return &MACD{
		IntervalWindow: iw,
		Short:          short,
		Long:           long,
		mapper:         requireMapper(mapper),
		fast:           NewEMA(short),
		slow:           NewEMA(long),
		signal:         NewEMA(iw.Window),
	}
}

func (inc *MACD) Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap) {
	v := inc.mapper(bar)

	macd := inc.fast.Next(v, final) - inc.slow.Next(v, final)
	signal := inc.signal.Next(macd, final)
	histogram := macd - signal

	if final {
		inc.Values.Push(macd)
		inc.Values = inc.Values.Truncate(MaxHistory)
	}

	var out OutputMap
	if includeOutputs {
		out = OutputMap{
			"MACD":      macd,
			"Signal":    signal,
			"Histogram": histogram,
		}
	}
	return macd, out
}

func (inc *MACD) Last(i int) float64 {
	return inc.Values.Last(i)
}

func (inc *MACD) Length() int {
	return inc.Values.Length()
}

func (inc *MACD) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
	inc.Values = nil
}

var _ Indicator = (*MACD)(nil)
