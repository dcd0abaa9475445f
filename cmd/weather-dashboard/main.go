package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/render"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/internal/ui"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
	"weather-dashboard/pkg/observe"
)

const fallbackNotice = "Forecast not available for this key, falling back to current weather..."

// @title Weather Dashboard API
// @version 1.0.0
// @description Fetches OpenWeatherMap forecasts for a city, normalizes them into flat records and renders a text dashboard.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather dashboard operations
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags, err := config.ParseFlags("weather-dashboard", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	cnf, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}

	l, closeLog, err := initLogger(cnf, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	defer closeLog()

	repo := repositories.InitWeatherRepository(cnf, l)
	service := weather.NewWeatherService(repo, weather.NewNormalizer(time.Local), l)

	if cnf.Server.Enabled {
		return serve(cnf, service, l, stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	city := cnf.Weather.City
	fmt.Fprintf(stdout, "Fetching weather data for %s...\n", city)

	repo.OnFallback = func(string) { fmt.Fprintln(stdout, fallbackNotice) }
	report, err := service.FetchReport(ctx, city, cnf.Weather.APIKey, cnf.Weather.Units)
	repo.OnFallback = nil
	if err != nil {
		fmt.Fprintf(stderr, "Failed to fetch weather data: %v\n", err)
		return 1
	}

	renderer := render.NewRenderer(cnf.Render.Width, cnf.Weather.Units, cnf.Render.SampleRows)

	switch cnf.Render.Mode {
	case config.ModeTUI:
		fetch := func(ctx context.Context) (*weather.Report, error) {
			return service.FetchReport(ctx, city, cnf.Weather.APIKey, cnf.Weather.Units)
		}
		err = ui.Run(ui.NewModel(ctx, renderer, report, fetch))
	default:
		err = renderer.Render(stdout, report.Records, city)
	}

	if err != nil {
		l.Error(err, map[string]any{"run_id": report.RunID, "city": city})
		fmt.Fprintf(stderr, "Failed to render dashboard: %v\n", err)
		return 1
	}

	return 0
}

func loadConfig(flags *config.Flags) (*config.Config, error) {
	provider := config.NewFileConfigProvider(flags.ConfigPath).WithEnvFile(flags.EnvPath)

	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	flags.Apply(cnf)

	if err := provider.Validate(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

// initLogger opens the configured log output and, when a DSN is set, tees
// error entries to Sentry.
func initLogger(cnf *config.Config, stderr io.Writer) (*logger.Logger, func(), error) {
	var (
		writers []io.Writer
		closers []func()
	)

	switch cnf.Log.Output {
	case "", "stderr":
		writers = append(writers, stderr)
	case "stdout":
		writers = append(writers, os.Stdout)
	default:
		f, err := os.OpenFile(cnf.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		writers = append(writers, f)
		closers = append(closers, func() { _ = f.Close() })
	}

	if cnf.Sentry.DSN != "" {
		hook, err := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.DSN, cnf.IsDevelopment())
		if err != nil {
			return nil, nil, fmt.Errorf("initializing sentry: %w", err)
		}
		writers = append(writers, hook)
		closers = append(closers, func() { hook.Flush() })
	}

	l := logger.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		return nil, nil, err
	}

	return l, func() {
		_ = l.Stop()
		for _, c := range closers {
			c()
		}
	}, nil
}

func serve(cnf *config.Config, service *weather.WeatherService, l *logger.Logger, stderr io.Writer) int {
	app := httpserver.InitFiberServer(cnf.App.Name, cnf.Weather.Timeout+5*time.Second, l)

	v1.NewRouter(
		app,
		service,
		v1.Options{
			APIKey:       cnf.Weather.APIKey,
			DefaultCity:  cnf.Weather.City,
			DefaultUnits: cnf.Weather.Units,
			Width:        cnf.Render.Width,
		},
		l,
	)

	listenErr := make(chan error, 1)
	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			listenErr <- err
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Server.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
	}()

	select {
	case <-sigCh:
		l.Info("received shutdown signal")
	case err := <-listenErr:
		l.Error(err, map[string]any{"port": cnf.Server.Port})
		fmt.Fprintf(stderr, "Failed to start server: %v\n", err)
		return 1
	}

	return 0
}
