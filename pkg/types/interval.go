package types

import (
	"fmt"
	"time"
)

// Interval is a bar duration expressed in the common exchange notation,
// e.g. "1m", "1h", "1d".
type Interval string

var Interval1m = Interval("1m")
var Interval3m = Interval("3m")
var Interval5m = Interval("5m")
var Interval15m = Interval("15m")
var Interval30m = Interval("30m")
var Interval1h = Interval("1h")
var Interval2h = Interval("2h")
var Interval4h = Interval("4h")
var Interval6h = Interval("6h")
var Interval12h = Interval("12h")
var Interval1d = Interval("1d")

var SupportedIntervals = map[Interval]int{
	Interval1m:  1,
	Interval3m:  3,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval2h:  60 * 2,
	Interval4h:  60 * 4,
	Interval6h:  60 * 6,
	Interval12h: 60 * 12,
	Interval1d:  60 * 24,
}

func (i Interval) Minutes() int {
	return SupportedIntervals[i]
}

func (i Interval) Duration() time.Duration {
	return time.Duration(i.Minutes()) * time.Minute
}

func (i Interval) String() string {
	return string(i)
}

// IntervalWindow pairs a bar interval with an indicator window length.
type IntervalWindow struct {
	Interval Interval `json:"interval" yaml:"interval"`

	// Window is the number of bars the indicator looks back.
	Window int `json:"window" yaml:"window"`
}

func (iw IntervalWindow) String() string {
	return fmt.Sprintf("%s (%d)", iw.Interval, iw.Window)
}
