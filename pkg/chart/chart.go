package chart

import (
	"io"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/kaelx/tastream/pkg/types"
)

// Render draws the close prices of bars plus each overlay series into a
// single PNG. Overlays are aligned to bars by index and must have the same
// length.
func Render(title string, bars []types.Bar, overlays map[string][]float64, w io.Writer) error {
	if len(bars) < 2 {
		return errors.New("need at least two bars to render a chart")
	}

	xs := make([]time.Time, len(bars))
	closes := make([]float64, len(bars))
	for i, b := range bars {
		xs[i] = b.StartTime
		closes[i] = b.Close
	}

	series := []chart.Series{
		chart.TimeSeries{
			Name:    "close",
			XValues: xs,
			YValues: closes,
		},
	}

	names := make([]string, 0, len(overlays))
	for name := range overlays {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := overlays[name]
		if len(values) != len(bars) {
			return errors.Errorf("overlay %s has %d values for %d bars", name, len(values), len(bars))
		}
		series = append(series, chart.TimeSeries{
			Name:    name,
			XValues: xs,
			YValues: values,
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendThin(&graph)}

	return errors.Wrap(graph.Render(chart.PNG, w), "can not render chart")
}
