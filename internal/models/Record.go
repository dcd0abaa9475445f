package models

import (
	"fmt"
	"time"
)

// Record is one normalized weather observation. Nil fields were not present in
// the source document.
type Record struct {
	Dt          *int64     `json:"dt"`
	Timestamp   *time.Time `json:"dt_txt"`
	Date        *Date      `json:"date"`
	Temp        *float64   `json:"temp"`
	FeelsLike   *float64   `json:"feels_like"`
	TempMin     *float64   `json:"temp_min"`
	TempMax     *float64   `json:"temp_max"`
	Pressure    *float64   `json:"pressure"`
	Humidity    *float64   `json:"humidity"`
	WeatherMain *string    `json:"weather_main"`
	WeatherDesc *string    `json:"weather_desc"`
	WindSpeed   *float64   `json:"wind_speed"`
	WindDeg     *float64   `json:"wind_deg"`
}

// Date is a calendar day without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.DateOnly, string(text))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", text, err)
	}
	*d = DateOf(t)
	return nil
}

// Metric is a named accessor used by the charts to read one numeric field.
type Metric struct {
	Name  string
	Value func(Record) *float64
}

var (
	MetricTemp      = Metric{Name: "temp", Value: func(r Record) *float64 { return r.Temp }}
	MetricFeelsLike = Metric{Name: "feels_like", Value: func(r Record) *float64 { return r.FeelsLike }}
	MetricTempMin   = Metric{Name: "temp_min", Value: func(r Record) *float64 { return r.TempMin }}
	MetricTempMax   = Metric{Name: "temp_max", Value: func(r Record) *float64 { return r.TempMax }}
	MetricHumidity  = Metric{Name: "humidity", Value: func(r Record) *float64 { return r.Humidity }}
)
