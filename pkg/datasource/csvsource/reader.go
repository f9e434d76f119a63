package csvsource

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/kaelx/tastream/pkg/types"
)

// BarReader reads closed OHLCV bars from CSV records of the form
//
//	time,open,high,low,close,volume
//
// where time is unix seconds, unix milliseconds, or RFC 3339. A header row is
// skipped. Every decoded bar is marked Closed since historical data only
// contains finished bars.
type BarReader struct {
	csv      *csv.Reader
	symbol   string
	interval types.Interval

	row int
}

func NewBarReader(r io.Reader, symbol string, interval types.Interval) *BarReader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return &BarReader{
		csv:      cr,
		symbol:   symbol,
		interval: interval,
	}
}

// Read returns the next bar, io.EOF when the data is exhausted.
func (r *BarReader) Read() (types.Bar, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			return types.Bar{}, err
		}
		r.row++

		bar, err := r.decode(rec)
		if err != nil {
			if r.row == 1 {
				// header row
				continue
			}
			return types.Bar{}, errors.Wrapf(err, "row %d", r.row)
		}
		return bar, nil
	}
}

func (r *BarReader) ReadAll() ([]types.Bar, error) {
	var bars []types.Bar
	for {
		bar, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func (r *BarReader) decode(rec []string) (types.Bar, error) {
	if len(rec) < 6 {
		return types.Bar{}, errors.Errorf("expected at least 6 fields, got %d", len(rec))
	}

	startTime, err := parseTime(rec[0])
	if err != nil {
		return types.Bar{}, err
	}

	var prices [5]float64
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return types.Bar{}, errors.Wrapf(err, "field %d", i+1)
		}
		prices[i] = v
	}

	return types.Bar{
		Symbol:    r.symbol,
		StartTime: startTime,
		EndTime:   startTime.Add(r.interval.Duration()),
		Interval:  r.interval,
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    prices[4],
		Closed:    true,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		// heuristics: values this large are milliseconds
		if n > 1e12 {
			return time.UnixMilli(n), nil
		}
		return time.Unix(n, 0), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "can not parse time %q", s)
	}
	return t, nil
}
