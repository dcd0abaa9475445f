package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func forecastRecords() []models.Record {
	start := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	temps := []float64{30.5, 31.2, 29.8, 28.1, 27.5, 27.9, 29.4, 32.0, 33.1, 30.2}

	records := make([]models.Record, 0, len(temps))
	for i, temp := range temps {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		date := models.DateOf(ts)
		records = append(records, models.Record{
			Timestamp:   &ts,
			Date:        &date,
			Temp:        f(temp),
			FeelsLike:   f(temp + 2),
			TempMin:     f(temp - 1),
			TempMax:     f(temp + 1),
			Pressure:    f(1008),
			Humidity:    f(float64(55 + i)),
			WeatherMain: s("Clear"),
			WindSpeed:   f(3.2),
			WindDeg:     f(180),
		})
	}
	return records
}

func currentRecord() models.Record {
	ts := time.Date(2024, time.May, 1, 17, 30, 0, 0, time.UTC)
	date := models.DateOf(ts)
	return models.Record{
		Timestamp:   &ts,
		Date:        &date,
		Temp:        f(29.9),
		FeelsLike:   f(33.1),
		Humidity:    f(74),
		Pressure:    f(1008),
		WeatherMain: s("Haze"),
		WeatherDesc: s("haze"),
	}
}

func assertFitsWidth(t *testing.T, out string, width int) {
	t.Helper()
	for i, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), width, "line %d too wide: %q", i, line)
	}
}

func TestDashboard_Forecast(t *testing.T) {
	r := NewRenderer(100, "metric", 5)

	out := r.Dashboard(forecastRecords(), "Mumbai")

	assert.Contains(t, out, "Temperature Forecast for Mumbai")
	assert.Contains(t, out, "Temperature, Feels Like & Humidity – Mumbai")
	assert.Contains(t, out, "Temperature Distribution by Day – Mumbai")
	assert.Contains(t, out, "Temperature (°C)")
	assert.Contains(t, out, "Humidity (%)")
	assert.Contains(t, out, "o Temp")
	assert.Contains(t, out, "x Feels Like")
	assert.Contains(t, out, "■ Humidity")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "2024-05-02")
	assert.Contains(t, out, "May 01 12:00")
	assert.NotContains(t, out, "Current Weather Metrics")
	assertFitsWidth(t, out, 100)
}

func TestDashboard_ForecastNarrow(t *testing.T) {
	r := NewRenderer(50, "imperial", 0)

	out := r.Dashboard(forecastRecords(), "Mumbai")

	assert.Contains(t, out, "Temperature (°F)")
	assertFitsWidth(t, out, 50)
}

func TestDashboard_ForecastWithMissingValues(t *testing.T) {
	records := forecastRecords()
	records[1].Temp = nil
	records[2].Timestamp = nil
	records[2].Date = nil
	records[3].Humidity = nil

	out := NewRenderer(100, "metric", 5).Dashboard(records, "Mumbai")
	assert.Contains(t, out, "Temperature Forecast for Mumbai")
}

func TestDashboard_ForecastWithoutTimestamps(t *testing.T) {
	records := []models.Record{{Temp: f(1)}, {Temp: f(2)}}

	out := NewRenderer(80, "metric", 5).Dashboard(records, "Mumbai")
	assert.Contains(t, out, "no plottable data")
	assert.NotContains(t, out, "Current Weather Metrics")
}

func TestDashboard_Current(t *testing.T) {
	r := NewRenderer(80, "standard", 5)

	out := r.Dashboard([]models.Record{currentRecord()}, "Mumbai")

	assert.Contains(t, out, "Current Weather Metrics – Mumbai")
	for _, metric := range []string{"temp", "feels_like", "temp_min", "temp_max", "humidity"} {
		assert.Contains(t, out, metric)
	}
	assert.Contains(t, out, "29.9K")
	assert.Contains(t, out, "74.0%")
	assert.Contains(t, out, "n/a", "absent min/max are shown as missing, not zero")
	assert.NotContains(t, out, "0.0K")
	assert.Contains(t, out, "haze")
	assert.NotContains(t, out, "Temperature Forecast")
	assertFitsWidth(t, out, 80)
}

func TestDashboard_NoData(t *testing.T) {
	r := NewRenderer(80, "metric", 5)

	for _, records := range [][]models.Record{nil, {}} {
		out := r.Dashboard(records, "Atlantis")
		assert.Contains(t, out, "No weather data available")
		assert.Contains(t, out, "Atlantis")
		assert.NotContains(t, out, "Current Weather Metrics")
		assert.NotContains(t, out, "Temperature Forecast")
	}
}

func TestRender_WritesSampleAndDashboard(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(100, "metric", 3)

	require.NoError(t, r.Render(&buf, forecastRecords(), "Mumbai"))

	out := buf.String()
	assert.Contains(t, out, "Sample of fetched data:")
	assert.Contains(t, out, "2024-05-01 12:00")
	assert.Contains(t, out, "2024-05-01 18:00")
	assert.NotContains(t, out, "2024-05-01 21:00", "only the first rows are sampled")
	assert.Contains(t, out, "Temperature Forecast for Mumbai")
}

func TestRender_NoDataSkipsSample(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewRenderer(80, "metric", 5).Render(&buf, nil, "Mumbai"))
	assert.NotContains(t, buf.String(), "Sample of fetched data")
	assert.Contains(t, buf.String(), "No weather data available")
}

func TestDocument_MatchesRenderedOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(100, "metric", 2)

	require.NoError(t, r.Render(&buf, forecastRecords(), "Mumbai"))

	doc := r.Document(forecastRecords(), "Mumbai")
	assert.Equal(t, doc+"\n", buf.String())
	assert.True(t, strings.HasPrefix(doc, "Sample of fetched data:\n"))
	assert.True(t, strings.HasSuffix(doc, r.Dashboard(forecastRecords(), "Mumbai")))
}

func TestDocument_WithoutSampleRows(t *testing.T) {
	r := NewRenderer(100, "metric", 0)

	assert.Equal(t, r.Dashboard(forecastRecords(), "Mumbai"), r.Document(forecastRecords(), "Mumbai"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("display unavailable")
}

func TestRender_WriterFailureIsRenderError(t *testing.T) {
	err := NewRenderer(80, "metric", 5).Render(failingWriter{}, []models.Record{currentRecord()}, "Mumbai")

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "display unavailable")
}

func TestSample_MissingValues(t *testing.T) {
	out := NewRenderer(80, "metric", 5).Sample([]models.Record{{Temp: f(12.5)}})

	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "weather_main")
}

func TestNewRenderer_MinimumWidth(t *testing.T) {
	assert.Equal(t, minWidth, NewRenderer(5, "metric", 5).Width)
}

func TestTemperatureUnit(t *testing.T) {
	assert.Equal(t, "°C", TemperatureUnit("metric"))
	assert.Equal(t, "°F", TemperatureUnit("imperial"))
	assert.Equal(t, "K", TemperatureUnit("standard"))
	assert.Equal(t, "°C", TemperatureUnit(""))
}

func TestDailyGroups_KeepFirstAppearanceOrder(t *testing.T) {
	groups := dailyGroups(forecastRecords(), models.MetricTemp)

	require.Len(t, groups, 2)
	assert.Equal(t, "2024-05-01", groups[0].Label)
	assert.Equal(t, []float64{30.5, 31.2, 29.8, 28.1}, groups[0].Values)
	assert.Equal(t, "2024-05-02", groups[1].Label)
	assert.Len(t, groups[1].Values, 6)
}
