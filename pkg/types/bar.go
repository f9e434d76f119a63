package types

import (
	"fmt"
	"time"
)

// Bar is one OHLCV candlestick. A bar with Closed=false is still forming:
// its High/Low/Close/Volume can keep changing until the closing update for
// the same StartTime arrives with Closed=true.
type Bar struct {
	Symbol string `json:"symbol"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	Interval Interval `json:"interval"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`

	Closed bool `json:"closed"`
}

// Typical is the (high + low + close) / 3 price.
func (b Bar) Typical() float64 {
	return (b.High + b.Low + b.Close) / 3.0
}

// Median is the (high + low) / 2 price.
func (b Bar) Median() float64 {
	return (b.High + b.Low) / 2.0
}

// OHLC4 is the (open + high + low + close) / 4 price.
func (b Bar) OHLC4() float64 {
	return (b.Open + b.High + b.Low + b.Close) / 4.0
}

// Range is the high minus low of the bar.
func (b Bar) Range() float64 {
	return b.High - b.Low
}

func (b Bar) String() string {
	return fmt.Sprintf("%s %s O:%f H:%f L:%f C:%f V:%f %s",
		b.Symbol, b.Interval,
		b.Open, b.High, b.Low, b.Close, b.Volume,
		b.StartTime.Format(time.RFC3339))
}
