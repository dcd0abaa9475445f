package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScale(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		min, max float64
	}{
		{name: "span", values: []float64{3, -2, 7}, min: -2, max: 7},
		{name: "single value is widened", values: []float64{5}, min: 4, max: 6},
		{name: "empty", values: nil, min: 0, max: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScale(tt.values...)
			assert.Equal(t, tt.min, s.min)
			assert.Equal(t, tt.max, s.max)
		})
	}
}

func TestLinearScale_Pos(t *testing.T) {
	s := newScale(0, 10)

	assert.Equal(t, 0, s.pos(0, 11))
	assert.Equal(t, 5, s.pos(5, 11))
	assert.Equal(t, 10, s.pos(10, 11))
	assert.Equal(t, 0, s.pos(-50, 11), "clamped low")
	assert.Equal(t, 10, s.pos(50, 11), "clamped high")
	assert.Equal(t, 0, s.pos(7, 1))
	assert.InDelta(t, 5.0, s.at(5, 11), 1e-9)
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.InDelta(t, 3.25, percentile(sorted, 0.25), 1e-9)
	assert.InDelta(t, 5.5, percentile(sorted, 0.5), 1e-9)
	assert.InDelta(t, 7.75, percentile(sorted, 0.75), 1e-9)
	assert.Equal(t, 42.0, percentile([]float64{42}, 0.75))
}

func TestNewBoxStats(t *testing.T) {
	st := newBoxStats([]float64{4, 100, 2, 1, 3})

	assert.Equal(t, 5, st.N)
	assert.InDelta(t, 2.0, st.Q1, 1e-9)
	assert.InDelta(t, 3.0, st.Median, 1e-9)
	assert.InDelta(t, 4.0, st.Q3, 1e-9)
	assert.Equal(t, 1.0, st.LowWhisker)
	assert.Equal(t, 4.0, st.HighWhisker)
	require.Len(t, st.Outliers, 1)
	assert.Equal(t, 100.0, st.Outliers[0])
}

func TestNewBoxStats_DoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	newBoxStats(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestBarChart_MissingAndNegative(t *testing.T) {
	neg, pos := -4.0, 8.0
	out := barChart{
		Width: 60,
		Bars: []bar{
			{Label: "low", Value: &neg, Unit: "°C", Style: tempStyle},
			{Label: "high", Value: &pos, Unit: "°C", Style: tempStyle},
			{Label: "gone", Unit: "°C", Style: tempStyle},
		},
	}.Render()

	assert.Contains(t, out, "-4.0°C")
	assert.Contains(t, out, "8.0°C")
	assert.Contains(t, out, missingValue)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60, line)
	}
}

func TestBarChart_NothingPlottableListsValuesOnly(t *testing.T) {
	out := barChart{
		Width: 60,
		Bars:  []bar{{Label: "gone", Unit: "%", Style: humidityStyle}},
	}.Render()

	assert.Equal(t, "gone", strings.Fields(out)[0])
	assert.Contains(t, out, missingValue)
}

func TestTrendChart_CaptionAndLegend(t *testing.T) {
	start := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	out := trendChart{
		Width:  70,
		Height: 10,
		Label:  "Temperature (°C)",
		Series: series{
			Name:   "Temp",
			Style:  tempStyle,
			Marker: 'o',
			Points: []point{
				{X: start, Y: 30.5},
				{X: start.Add(3 * time.Hour), Y: 31},
				{X: start.Add(6 * time.Hour), Y: 29.5},
			},
		},
	}.Render()

	assert.True(t, strings.HasPrefix(out, "Temperature (°C)"))
	assert.Contains(t, out, "May 01 12:00 to May 01 18:00")
	assert.Contains(t, out, "o Temp")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 70, line)
	}
}

func TestTrendChart_EmptySeries(t *testing.T) {
	out := trendChart{Width: 70, Height: 10, Series: series{Name: "Temp", Style: tempStyle}}.Render()

	assert.Contains(t, out, "no plottable data")
}

func TestBoxTrack_MarksMedianAndOutliers(t *testing.T) {
	st := newBoxStats([]float64{1, 2, 3, 4, 100})
	track := []rune(boxTrack(st, newScale(1, 100), 40))

	assert.Len(t, track, 40)
	assert.Equal(t, outlierRune, track[39])
	assert.Contains(t, string(track), string(medianRune))
}
