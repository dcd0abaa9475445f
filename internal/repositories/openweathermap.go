package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenWeatherMapForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
	OpenWeatherMapCurrentURL  = "https://api.openweathermap.org/data/2.5/weather"
)

// OpenWeatherMapRepository fetches the 5 day / 3 hour forecast and, when the
// key is not entitled to it, the current conditions instead.
type OpenWeatherMapRepository struct {
	ForecastURL string
	CurrentURL  string
	// OnFallback, when set, runs right before the current-conditions request
	// that replaces a refused forecast.
	OnFallback func(city string)
	httpClient HTTPClient
	limiter     *rate.Limiter
	l           *logger.Logger
}

// NewOpenWeatherMapRepository uses the public endpoints when the URLs are empty.
// A nil limiter disables throttling.
func NewOpenWeatherMapRepository(
	forecastURL string,
	currentURL string,
	l *logger.Logger,
	httpClient HTTPClient,
	limiter *rate.Limiter,
) *OpenWeatherMapRepository {
	if forecastURL == "" {
		forecastURL = OpenWeatherMapForecastURL
	}
	if currentURL == "" {
		currentURL = OpenWeatherMapCurrentURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherMapRepository{
		ForecastURL: forecastURL,
		CurrentURL:  currentURL,
		httpClient:  httpClient,
		limiter:     limiter,
		l:           l,
	}
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

type openWeatherMapErrorResponse struct {
	Message string `json:"message"`
}

// Fetch requests the forecast for city. A 401 answer triggers exactly one
// request to the current-conditions endpoint with the same parameters; any
// other failure is returned as is.
func (o *OpenWeatherMapRepository) Fetch(ctx context.Context, city, apiKey, units string) (models.Payload, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", apiKey)
	params.Set("units", units)

	payload, err := o.get(ctx, o.ForecastURL, params)

	var netErr *NetworkError
	if errors.As(err, &netErr) && netErr.Unauthorized() {
		o.l.Warning("forecast not available for this key, falling back to current weather", map[string]any{
			"city":   city,
			"status": netErr.StatusCode,
		})
		if o.OnFallback != nil {
			o.OnFallback(city)
		}

		payload, err = o.get(ctx, o.CurrentURL, params)
	}

	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (o *OpenWeatherMapRepository) get(ctx context.Context, endpoint string, params url.Values) (models.Payload, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{URL: endpoint, Err: err}
		}
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	u.RawQuery = params.Encode()

	o.l.Info("making openweathermap API request", map[string]any{
		"endpoint": endpoint,
		"city":     params.Get("q"),
		"units":    params.Get("units"),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the full request URL, appid included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &NetworkError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"endpoint":   endpoint,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: endpoint, Status: resp.Status, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		netErr := &NetworkError{URL: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}

		var errorResp openWeatherMapErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil {
			netErr.Message = errorResp.Message
		}

		return nil, netErr
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &MalformedResponseError{URL: endpoint, Err: err}
	}
	if doc == nil {
		return nil, &MalformedResponseError{URL: endpoint, Err: errors.New("response is not a JSON object")}
	}

	payload := models.NewPayload(doc)

	o.l.Debug("parsed openweathermap API response", map[string]any{
		"endpoint": endpoint,
		"shape":    fmt.Sprintf("%T", payload),
	})

	return payload, nil
}
