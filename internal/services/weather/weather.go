package weather

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

const (
	KindForecast = "forecast"
	KindCurrent  = "current"
)

// Report is the outcome of one fetch and normalize run.
type Report struct {
	RunID   string          `json:"run_id"`
	City    string          `json:"city"`
	Units   string          `json:"units"`
	Kind    string          `json:"kind"`
	Records []models.Record `json:"records"`
}

// WeatherService runs the fetch and normalize steps of the pipeline.
type WeatherService struct {
	repo       repositories.WeatherRepository
	normalizer *Normalizer
	l          *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, normalizer *Normalizer, l *logger.Logger) *WeatherService {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}

	return &WeatherService{
		repo:       repo,
		normalizer: normalizer,
		l:          l,
	}
}

// FetchReport fetches the weather for city and normalizes it. Fetch errors
// keep their type (NetworkError, MalformedResponseError) under the wrapping.
func (s *WeatherService) FetchReport(ctx context.Context, city, apiKey, units string) (*Report, error) {
	runID := uuid.NewString()

	s.l.Info("starting weather fetch", map[string]any{
		"run_id": runID,
		"repo":   s.repo.Name(),
		"city":   city,
		"units":  units,
	})

	payload, err := s.repo.Fetch(ctx, city, apiKey, units)
	if err != nil {
		s.l.Error(err, map[string]any{
			"run_id": runID,
			"repo":   s.repo.Name(),
			"city":   city,
		})
		return nil, errors.Wrapf(err, "fetching weather for %s", city)
	}

	report := &Report{
		RunID:   runID,
		City:    city,
		Units:   units,
		Kind:    payloadKind(payload),
		Records: s.normalizer.Normalize(payload),
	}

	if len(report.Records) == 0 {
		s.l.Warning("no weather records in response", map[string]any{
			"run_id": runID,
			"city":   city,
			"kind":   report.Kind,
		})
	}

	s.l.Info("completed weather fetch", map[string]any{
		"run_id":  runID,
		"city":    city,
		"kind":    report.Kind,
		"records": len(report.Records),
	})

	return report, nil
}

func payloadKind(p models.Payload) string {
	switch p.(type) {
	case models.ForecastPayload:
		return KindForecast
	case models.CurrentPayload:
		return KindCurrent
	default:
		return fmt.Sprintf("%T", p)
	}
}
