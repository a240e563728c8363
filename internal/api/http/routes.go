package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/city-weather/internal/weather"
)

var validate = validator.New()

// fetchFailedMessage is the one message shown for any upstream failure; the
// user is expected to retry.
const fetchFailedMessage = "failed to fetch weather data, please try again"

// RegisterRoutes wires the HTTP handlers into the Fiber app. dashboardCities
// are the default cities served by the dashboard endpoint.
func RegisterRoutes(app *fiber.App, service *weather.Service, dashboardCities []string) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot, err := service.Current(c.UserContext(), q.City)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(snapshot)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Forecast(c.UserContext(), q.City)
		if err != nil {
			return lookupError(err)
		}
		return c.JSON(forecast)
	})

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		board, err := service.LatestDashboard(c.UserContext(), dashboardCities)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, fetchFailedMessage)
		}
		return c.JSON(board)
	})

	v1.Get("/conditions/:code", func(c *fiber.Ctx) error {
		code, err := strconv.Atoi(c.Params("code"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "code must be an integer")
		}
		return c.JSON(weather.Describe(code))
	})
}

// cityQuery holds query parameters for a city lookup.
type cityQuery struct {
	City string `validate:"required,max=100"`
}

func parseCityQuery(c *fiber.Ctx) (cityQuery, error) {
	var q cityQuery

	q.City = c.Query("city")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// lookupError maps service errors onto HTTP errors.
func lookupError(err error) error {
	switch {
	case errors.Is(err, weather.ErrEmptyCityName):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, weather.ErrLocationNotFound):
		return fiber.NewError(fiber.StatusNotFound, "city not found")
	default:
		return fiber.NewError(fiber.StatusBadGateway, fetchFailedMessage)
	}
}
