package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastBody = `{"cod":"200","list":[
	{"dt":1714564800,"dt_txt":"2024-05-01 12:00:00","main":{"temp":30.5,"feels_like":34.1,"humidity":70},"weather":[{"main":"Clouds"}],"wind":{"speed":4.1,"deg":250}},
	{"dt":1714575600,"dt_txt":"2024-05-01 15:00:00","main":{"temp":31.2,"feels_like":35.0,"humidity":66},"weather":[{"main":"Clear"}],"wind":{"speed":3.6,"deg":240}}
]}`

const currentBody = `{"dt":1714584600,"main":{"temp":29.9,"feels_like":33.1,"humidity":74},"weather":[{"main":"Haze","description":"haze"}]}`

func upstream(t *testing.T, forecastStatus int, forecast string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(forecastStatus)
		_, _ = w.Write([]byte(forecast))
	})
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(currentBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// setupEnv points the pipeline at srv and isolates it from the host's
// configuration files and variables.
func setupEnv(t *testing.T, srv *httptest.Server) []string {
	t.Helper()

	for _, key := range []string{"WEATHER_CITY", "WEATHER_UNITS", "RENDER_MODE", "SERVER_ENABLED", "LOG_OUTPUT", "SENTRY_DSN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	t.Setenv("WEATHER_API_KEY", "test-key")
	if srv != nil {
		t.Setenv("WEATHER_FORECAST_URL", srv.URL+"/forecast")
		t.Setenv("WEATHER_CURRENT_URL", srv.URL+"/weather")
	}

	dir := t.TempDir()
	return []string{
		"-config", filepath.Join(dir, "missing.yaml"),
		"-env-file", filepath.Join(dir, "missing.env"),
		"-city", "Pune",
		"-width", "80",
	}
}

func TestRun_Forecast(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusOK, forecastBody))
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "Fetching weather data for Pune...")
	assert.Contains(t, out, "Sample of fetched data:")
	assert.Contains(t, out, "Temperature Forecast for Pune")
	assert.NotContains(t, out, fallbackNotice)
	assert.NotContains(t, out, "test-key")
	assert.NotContains(t, stderr.String(), "test-key")
}

func TestRun_FallsBackToCurrent(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`))
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, fallbackNotice)
	assert.Contains(t, out, "Current Weather Metrics – Pune")
	assert.Less(t, strings.Index(out, "Fetching weather data for Pune..."), strings.Index(out, fallbackNotice))
	assert.Less(t, strings.Index(out, fallbackNotice), strings.Index(out, "Sample of fetched data:"))
	assert.Equal(t, 1, strings.Count(out, fallbackNotice))
}

func TestRun_CurrentShapedForecastWithoutNotice(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusOK, currentBody))
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Current Weather Metrics – Pune")
	assert.NotContains(t, stdout.String(), fallbackNotice)
}

func TestRun_EmptyForecast(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusOK, `{"cod":"200","list":[]}`))
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "No weather data available")
	assert.NotContains(t, stdout.String(), "Current Weather Metrics")
}

func TestRun_FetchFailure(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusInternalServerError, `{"message":"boom"}`))
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to fetch weather data")
	assert.NotContains(t, stdout.String(), "Sample of fetched data")
}

func TestRun_MissingAPIKey(t *testing.T) {
	args := setupEnv(t, nil)
	t.Setenv("WEATHER_API_KEY", "")
	require.NoError(t, os.Unsetenv("WEATHER_API_KEY"))
	t.Setenv("API_KEY", "some-other-services-secret")
	var stdout, stderr bytes.Buffer

	code := run(args, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Configuration error")
	assert.Contains(t, stderr.String(), "weather.api_key is required")
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidUnitsFlag(t *testing.T) {
	args := append(setupEnv(t, nil), "-units", "kelvin")
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run(args, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "weather.units must be one of")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-nope"}, &stdout, &stderr))
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "-city")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRun_RenderFailure(t *testing.T) {
	args := setupEnv(t, upstream(t, http.StatusOK, forecastBody))
	var stderr bytes.Buffer

	code := run(args, failingWriter{}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Failed to render dashboard")
	assert.Contains(t, stderr.String(), "broken pipe")
}
