package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-dashboard/config"
	"weather-dashboard/internal/render"
	"weather-dashboard/internal/repositories"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"units must be one of metric, imperial, standard"`
}

type weatherQuery struct {
	City  string
	Units string
}

func (r *routes) parseQuery(c *fiber.Ctx) (weatherQuery, error) {
	q := weatherQuery{
		City:  c.Query("city", r.opts.DefaultCity),
		Units: c.Query("units", r.opts.DefaultUnits),
	}

	if q.City == "" {
		return q, errors.New("missing required parameter: city")
	}

	if !config.IsValidUnits(q.Units) {
		return q, errors.New("units must be one of metric, imperial, standard")
	}

	return q, nil
}

// GetWeather godoc
// @Summary Get normalized weather records
// @Description Fetches the forecast (or current conditions when the forecast is refused) for a city and returns the normalized records
// @Tags Weather
// @Produce json
// @Param city query string false "City name (default: configured city)" example(Mumbai)
// @Param units query string false "Unit system" Enums(metric, imperial, standard)
// @Success 200 {object} weather.Report "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /weather [get]
//
//	curl -X GET "http://localhost:8080/weather?city=Mumbai&units=metric"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	q, err := r.parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	report, err := r.service.FetchReport(c.UserContext(), q.City, r.opts.APIKey, q.Units)
	if err != nil {
		return r.fetchFailed(c, q, err)
	}

	return c.JSON(report)
}

// GetDashboard godoc
// @Summary Get the text dashboard
// @Description Renders the weather dashboard for a city as plain text
// @Tags Weather
// @Produce plain
// @Param city query string false "City name (default: configured city)" example(Mumbai)
// @Param units query string false "Unit system" Enums(metric, imperial, standard)
// @Param width query integer false "Dashboard width in columns" minimum(40)
// @Success 200 {string} string "Rendered dashboard"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Router /weather/dashboard [get]
func (r *routes) handleDashboardCall(c *fiber.Ctx) error {
	q, err := r.parseQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	width := r.opts.Width
	if raw := c.Query("width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 40 {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "width must be an integer of at least 40",
			})
		}
		width = w
	}

	report, err := r.service.FetchReport(c.UserContext(), q.City, r.opts.APIKey, q.Units)
	if err != nil {
		return r.fetchFailed(c, q, err)
	}

	renderer := render.NewRenderer(width, q.Units, 0)

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(renderer.Dashboard(report.Records, report.City) + "\n")
}

func (r *routes) fetchFailed(c *fiber.Ctx, q weatherQuery, err error) error {
	r.l.Error(err, map[string]any{
		"city":  q.City,
		"units": q.Units,
		"path":  c.Path(),
	})

	var netErr *repositories.NetworkError
	var malformedErr *repositories.MalformedResponseError

	switch {
	case errors.As(err, &netErr):
		msg := "Weather service request failed"
		if netErr.Message != "" {
			msg += ": " + netErr.Message
		}
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: msg})
	case errors.As(err, &malformedErr):
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Weather service returned a malformed response",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to fetch weather data",
		})
	}
}
