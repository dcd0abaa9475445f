package repositories

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	Fetch(ctx context.Context, city, apiKey, units string) (models.Payload, error)
}

// InitWeatherRepository wires the OpenWeatherMap repository from configuration.
func InitWeatherRepository(cfg *config.Config, l *logger.Logger) *OpenWeatherMapRepository {
	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}

	var limiter *rate.Limiter
	if cfg.Weather.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Weather.RateLimit), max(cfg.Weather.RateBurst, 1))
	}

	return NewOpenWeatherMapRepository(
		cfg.Weather.ForecastURL,
		cfg.Weather.CurrentURL,
		l,
		httpClient,
		limiter,
	)
}
