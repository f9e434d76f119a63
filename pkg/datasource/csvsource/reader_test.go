package csvsource

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaelx/tastream/pkg/types"
)

func TestBarReader_ReadAll(t *testing.T) {
	data := strings.Join([]string{
		"time,open,high,low,close,volume",
		"1609459200,100,110,90,105,12.5",
		"1609462800,105,120,100,118,30",
	}, "\n")

	r := NewBarReader(strings.NewReader(data), "BTCUSDT", types.Interval1h)
	bars, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, bars, 2)

	b := bars[0]
	assert.Equal(t, "BTCUSDT", b.Symbol)
	assert.Equal(t, time.Unix(1609459200, 0), b.StartTime)
	assert.Equal(t, b.StartTime.Add(time.Hour), b.EndTime)
	assert.Equal(t, 100.0, b.Open)
	assert.Equal(t, 110.0, b.High)
	assert.Equal(t, 90.0, b.Low)
	assert.Equal(t, 105.0, b.Close)
	assert.Equal(t, 12.5, b.Volume)
	assert.True(t, b.Closed)
}

func TestBarReader_NoHeader(t *testing.T) {
	r := NewBarReader(strings.NewReader("1609459200,1,2,0.5,1.5,10\n"), "X", types.Interval1m)
	bars, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, bars, 1)
}

func TestBarReader_MillisecondsAndRFC3339(t *testing.T) {
	data := strings.Join([]string{
		"1609459200000,1,2,0.5,1.5,10",
		"2021-01-01T01:00:00Z,1,2,0.5,1.5,10",
	}, "\n")

	r := NewBarReader(strings.NewReader(data), "X", types.Interval1h)
	bars, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, bars[0].StartTime.Unix()+3600, bars[1].StartTime.Unix())
}

func TestBarReader_MalformedRow(t *testing.T) {
	data := strings.Join([]string{
		"time,open,high,low,close,volume",
		"1609459200,not-a-number,2,0.5,1.5,10",
	}, "\n")

	r := NewBarReader(strings.NewReader(data), "X", types.Interval1m)
	_, err := r.ReadAll()
	assert.Error(t, err)
}
