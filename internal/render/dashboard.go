package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"weather-dashboard/internal/models"
)

const (
	minWidth       = 40
	chartHeight    = 10
	panelOverhead  = 4 // rounded border plus one column of padding per side
	sampleTimeForm = "2006-01-02 15:04"
)

// RenderError reports a failure to display the dashboard, as opposed to a
// failure to obtain the data.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Renderer turns normalized records into a text dashboard.
type Renderer struct {
	Width      int
	Units      string
	SampleRows int
}

func NewRenderer(width int, units string, sampleRows int) *Renderer {
	return &Renderer{
		Width:      max(width, minWidth),
		Units:      units,
		SampleRows: sampleRows,
	}
}

// TemperatureUnit is the symbol OpenWeatherMap uses for the unit system.
func TemperatureUnit(units string) string {
	switch units {
	case "imperial":
		return "°F"
	case "standard":
		return "K"
	default:
		return "°C"
	}
}

// Render writes the document to w.
func (r *Renderer) Render(w io.Writer, records []models.Record, city string) error {
	if _, err := io.WriteString(w, r.Document(records, city)+"\n"); err != nil {
		return &RenderError{Err: err}
	}

	return nil
}

// Document is the sample table, when there are records to sample, followed by
// the dashboard.
func (r *Renderer) Document(records []models.Record, city string) string {
	var b strings.Builder
	if r.SampleRows > 0 && len(records) > 0 {
		b.WriteString("Sample of fetched data:\n")
		b.WriteString(r.Sample(records))
		b.WriteString("\n")
	}
	b.WriteString(r.Dashboard(records, city))

	return b.String()
}

// Dashboard picks the layout from the number of records: several records are
// a forecast, one is current conditions, none gets a placeholder.
func (r *Renderer) Dashboard(records []models.Record, city string) string {
	switch {
	case len(records) > 1:
		return r.forecastDashboard(records, city)
	case len(records) == 1:
		return r.currentDashboard(records[0], city)
	default:
		return r.noData(city)
	}
}

func (r *Renderer) inner() int {
	return max(r.Width, minWidth) - panelOverhead
}

func (r *Renderer) panel(title, body string) string {
	return paneStyle.Render(titleStyle.Render(title) + "\n\n" + body)
}

func (r *Renderer) forecastDashboard(records []models.Record, city string) string {
	unit := TemperatureUnit(r.Units)

	temp := timeSeries(records, models.MetricTemp, "Temp", 'o', tempStyle, axisLeft)
	feels := timeSeries(records, models.MetricFeelsLike, "Feels Like", 'x', feelsStyle, axisLeft)
	humidity := timeSeries(records, models.MetricHumidity, "Humidity", '■', humidityStyle, axisRight)

	trend := trendChart{
		Width:  r.inner(),
		Height: chartHeight,
		Label:  "Temperature (" + unit + ")",
		Series: temp,
	}

	overlay := lineChart{
		Width:      r.inner(),
		Height:     chartHeight,
		LeftLabel:  "Temperature (" + unit + ")",
		RightLabel: "Humidity (%)",
		Series:     []series{temp, feels, humidity},
	}

	distribution := boxPlot{
		Width:      r.inner(),
		ValueLabel: "Temperature (" + unit + ")",
		Groups:     dailyGroups(records, models.MetricTemp),
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.panel("Temperature Forecast for "+city, trend.Render()),
		r.panel("Temperature, Feels Like & Humidity – "+city, overlay.Render()),
		r.panel("Temperature Distribution by Day – "+city, distribution.Render()),
	)
}

func (r *Renderer) currentDashboard(record models.Record, city string) string {
	unit := TemperatureUnit(r.Units)

	chart := barChart{
		Width: r.inner(),
		Label: "Values",
		Bars: []bar{
			{Label: models.MetricTemp.Name, Value: record.Temp, Unit: unit, Style: tempStyle},
			{Label: models.MetricFeelsLike.Name, Value: record.FeelsLike, Unit: unit, Style: feelsStyle},
			{Label: models.MetricTempMin.Name, Value: record.TempMin, Unit: unit, Style: minMaxStyle},
			{Label: models.MetricTempMax.Name, Value: record.TempMax, Unit: unit, Style: minMaxStyle},
			{Label: models.MetricHumidity.Name, Value: record.Humidity, Unit: "%", Style: humidityStyle},
		},
	}

	body := chart.Render()
	if caption := currentCaption(record); caption != "" {
		body += "\n\n" + mutedStyle.Render(caption)
	}

	return r.panel("Current Weather Metrics – "+city, body)
}

func (r *Renderer) noData(city string) string {
	return r.panel("Weather for "+city, mutedStyle.Render("No weather data available"))
}

// Sample renders the first SampleRows records as a table.
func (r *Renderer) Sample(records []models.Record) string {
	n := min(len(records), r.SampleRows)
	rows := make([][]string, 0, n)
	for _, rec := range records[:n] {
		rows = append(rows, []string{
			formatTime(rec),
			formatCell(rec.Temp),
			formatCell(rec.FeelsLike),
			formatCell(rec.TempMin),
			formatCell(rec.TempMax),
			formatCell(rec.Pressure),
			formatCell(rec.Humidity),
			formatText(rec.WeatherMain),
			formatCell(rec.WindSpeed),
			formatCell(rec.WindDeg),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(axisStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("dt_txt", "temp", "feels_like", "temp_min", "temp_max", "pressure", "humidity", "weather_main", "wind_speed", "wind_deg").
		Rows(rows...)

	return t.Render()
}

func timeSeries(records []models.Record, metric models.Metric, name string, marker rune, style lipgloss.Style, axis int) series {
	s := series{Name: name, Marker: marker, Style: style, Axis: axis}
	for _, rec := range records {
		v := metric.Value(rec)
		if rec.Timestamp == nil || v == nil {
			continue
		}
		s.Points = append(s.Points, point{X: *rec.Timestamp, Y: *v})
	}
	return s
}

// dailyGroups keeps dates in order of first appearance.
func dailyGroups(records []models.Record, metric models.Metric) []boxGroup {
	var groups []boxGroup
	index := map[models.Date]int{}
	for _, rec := range records {
		v := metric.Value(rec)
		if rec.Date == nil || v == nil {
			continue
		}
		i, ok := index[*rec.Date]
		if !ok {
			i = len(groups)
			index[*rec.Date] = i
			groups = append(groups, boxGroup{Label: rec.Date.String()})
		}
		groups[i].Values = append(groups[i].Values, *v)
	}
	return groups
}

func currentCaption(rec models.Record) string {
	var parts []string
	if rec.Timestamp != nil {
		parts = append(parts, rec.Timestamp.Format(sampleTimeForm))
	}
	if rec.WeatherDesc != nil {
		parts = append(parts, *rec.WeatherDesc)
	} else if rec.WeatherMain != nil {
		parts = append(parts, *rec.WeatherMain)
	}
	if rec.WindSpeed != nil {
		parts = append(parts, fmt.Sprintf("wind %.1f", *rec.WindSpeed))
	}
	if rec.Pressure != nil {
		parts = append(parts, fmt.Sprintf("%.0f hPa", *rec.Pressure))
	}
	return strings.Join(parts, " · ")
}

func formatTime(rec models.Record) string {
	if rec.Timestamp == nil {
		return missingValue
	}
	return rec.Timestamp.Format(sampleTimeForm)
}

func formatCell(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%g", *v)
}

func formatText(v *string) string {
	if v == nil {
		return missingValue
	}
	return *v
}
