package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/logger"
)

// ReportFetcher is the part of the weather service the routes need.
type ReportFetcher interface {
	FetchReport(ctx context.Context, city, apiKey, units string) (*weather.Report, error)
}

// Options carries the request defaults. APIKey never leaves the server.
type Options struct {
	APIKey       string
	DefaultCity  string
	DefaultUnits string
	Width        int
}

type routes struct {
	service ReportFetcher
	opts    Options
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService ReportFetcher,
	opts Options,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		opts:    opts,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := swag.ReadDoc()
		if err != nil {
			r.l.Error(err)
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.SendString(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/weather", r.handleWeatherCall)
	app.Get("/weather/dashboard", r.handleDashboardCall)
}
