package indicator

import (
	"math"

	"github.com/kaelx/tastream/pkg/types"
)

// MaxHistory bounds the committed value history every indicator keeps; older
// values are dropped so long-running streams stay at a fixed footprint.
const MaxHistory = 1_000

// OutputMap carries the named sub-outputs of a multi-output indicator, e.g.
// {"UpperBand": ..., "MiddleBand": ..., "LowerBand": ...}.
type OutputMap map[string]float64

// Indicator is the per-bar streaming contract. Update computes the current
// primary value from the new bar plus retained state. With final=false the
// call is provisional: it never mutates retained state, so the same unclosed
// bar can be re-evaluated repeatedly; final=true commits. The OutputMap is
// nil unless includeOutputs is set, letting callers skip the allocation when
// only the primary scalar is needed.
//
// Instances are not safe for concurrent use; each owns its private buffers
// and callers synchronize externally if they share one.
type Indicator interface {
	Update(bar types.Bar, final bool, includeOutputs bool) (float64, OutputMap)
	types.Series
	Reset()
}

// BarMapper selects which field of a bar an indicator consumes.
type BarMapper func(bar types.Bar) float64

func ClosePrice(b types.Bar) float64   { return b.Close }
func OpenPrice(b types.Bar) float64    { return b.Open }
func HighPrice(b types.Bar) float64    { return b.High }
func LowPrice(b types.Bar) float64     { return b.Low }
func TypicalPrice(b types.Bar) float64 { return b.Typical() }
func MedianPrice(b types.Bar) float64  { return b.Median() }
func OHLC4Price(b types.Bar) float64   { return b.OHLC4() }
func Volume(b types.Bar) float64       { return b.Volume }

// requireMapper is the only fail-fast validation in the package: a nil
// selector is a programmer error and is rejected at construction, never
// during streaming.
func requireMapper(m BarMapper) BarMapper {
	if m == nil {
		panic("indicator: bar mapper must not be nil")
	}
	return m
}

// Sanitize substitutes 0 for non-finite results so a malformed sample never
// interrupts a live stream.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
