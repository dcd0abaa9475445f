package weather

import (
	"time"

	"weather-dashboard/internal/models"
)

// forecastTimeLayouts are tried in order on "dt_txt". The API serves the first
// one, in UTC.
var forecastTimeLayouts = []string{
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Normalizer flattens payloads into records. Location is where epoch
// timestamps of current-conditions records are interpreted.
type Normalizer struct {
	Location *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{Location: loc}
}

// Normalize uses the local timezone for current-conditions timestamps.
func Normalize(p models.Payload) []models.Record {
	return NewNormalizer(time.Local).Normalize(p)
}

// Normalize returns one record per forecast entry, in source order, or exactly
// one record for a current-conditions payload. It never fails: anything absent
// or of an unexpected type becomes a nil field.
func (n *Normalizer) Normalize(p models.Payload) []models.Record {
	switch payload := p.(type) {
	case models.ForecastPayload:
		records := make([]models.Record, 0, len(payload.Entries))
		for _, entry := range payload.Entries {
			records = append(records, n.forecastRecord(entry))
		}
		return records
	case models.CurrentPayload:
		return []models.Record{n.currentRecord(payload.Record)}
	default:
		return []models.Record{}
	}
}

func (n *Normalizer) forecastRecord(entry models.RawEntry) models.Record {
	record := measurements(entry)

	if text := entry.String("dt_txt"); text != nil {
		if ts, ok := parseForecastTime(*text); ok {
			setTimestamp(&record, ts)
		}
	}

	return record
}

func (n *Normalizer) currentRecord(entry models.RawEntry) models.Record {
	record := measurements(entry)

	if record.Dt != nil {
		setTimestamp(&record, time.Unix(*record.Dt, 0).In(n.Location))
	}

	return record
}

func measurements(entry models.RawEntry) models.Record {
	main := entry.Object("main")
	weather := entry.FirstObject("weather")
	wind := entry.Object("wind")

	return models.Record{
		Dt:          entry.Int("dt"),
		Temp:        main.Float("temp"),
		FeelsLike:   main.Float("feels_like"),
		TempMin:     main.Float("temp_min"),
		TempMax:     main.Float("temp_max"),
		Pressure:    main.Float("pressure"),
		Humidity:    main.Float("humidity"),
		WeatherMain: weather.String("main"),
		WeatherDesc: weather.String("description"),
		WindSpeed:   wind.Float("speed"),
		WindDeg:     wind.Float("deg"),
	}
}

func setTimestamp(record *models.Record, ts time.Time) {
	date := models.DateOf(ts)
	record.Timestamp = &ts
	record.Date = &date
}

func parseForecastTime(text string) (time.Time, bool) {
	for _, layout := range forecastTimeLayouts {
		if ts, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
