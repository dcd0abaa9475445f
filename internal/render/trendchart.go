package render

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const xAxisLabel = "01/02 15h"

// trendChart plots a single series over time on an ntcharts time series chart.
type trendChart struct {
	Width  int
	Height int
	Label  string
	Series series
}

func (tc trendChart) Render() string {
	if len(tc.Series.Points) == 0 {
		return mutedStyle.Render("no plottable data")
	}

	first, last := timeBounds(tc.Series.Points)
	if !last.After(first) {
		first, last = first.Add(-time.Hour), last.Add(time.Hour)
	}

	ys := make([]float64, 0, len(tc.Series.Points))
	points := make([]timeserieslinechart.TimePoint, 0, len(tc.Series.Points))
	for _, p := range tc.Series.Points {
		ys = append(ys, p.Y)
		points = append(points, timeserieslinechart.TimePoint{Time: p.X, Value: p.Y})
	}
	yScale := newScale(ys...)

	chart := timeserieslinechart.New(tc.Width, tc.Height,
		timeserieslinechart.WithTimeRange(first, last),
		timeserieslinechart.WithYRange(yScale.min, yScale.max),
		timeserieslinechart.WithXLabelFormatter(func(_ int, v float64) string {
			return time.Unix(int64(v), 0).UTC().Format(xAxisLabel)
		}),
		timeserieslinechart.WithYLabelFormatter(func(_ int, v float64) string {
			return formatTick(v)
		}),
		timeserieslinechart.WithStyle(tc.Series.Style),
		timeserieslinechart.WithTimeSeries(points),
	)
	chart.Draw()

	return lipgloss.JoinVertical(lipgloss.Left,
		axisStyle.Render(tc.Label),
		chart.View(),
		axisStyle.Render(timeSpan(first, last, tc.Width)),
		legend([]series{tc.Series}),
	)
}

func timeBounds(points []point) (first, last time.Time) {
	for i, p := range points {
		if i == 0 || p.X.Before(first) {
			first = p.X
		}
		if i == 0 || p.X.After(last) {
			last = p.X
		}
	}
	return first, last
}

// timeSpan names both ends of the plotted range, or only the start when
// both do not fit.
func timeSpan(first, last time.Time, width int) string {
	span := first.UTC().Format(timeLabel) + " to " + last.UTC().Format(timeLabel)
	if len(span) > width {
		return first.UTC().Format(timeLabel)
	}
	return span
}
