package providers

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/i474232898/city-weather/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultForecastURL is the Open-Meteo forecast endpoint.
const DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"

// observedFields are requested for both current and hourly data.
const observedFields = "temperature_2m,relative_humidity_2m,pressure_msl,wind_speed_10m,weather_code"

// openMeteoTimeLayout is the ISO8601 layout Open-Meteo uses for times (GMT, no zone).
const openMeteoTimeLayout = "2006-01-02T15:04"

// OpenMeteoProvider implements weather.Normalizer for Open-Meteo.
type OpenMeteoProvider struct {
	name         string
	baseURL      string
	forecastDays int
	client       *http.Client
	circuit      *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, baseURL string, forecastDays int) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultForecastURL
	}
	if forecastDays <= 0 {
		forecastDays = 5
	}
	return &OpenMeteoProvider{
		name:         "openmeteo",
		baseURL:      baseURL,
		forecastDays: forecastDays,
		client:       client,
		circuit:      newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoCurrent struct {
	Time             string  `json:"time"`
	Temperature2m    float64 `json:"temperature_2m"`
	RelativeHumidity float64 `json:"relative_humidity_2m"`
	PressureMSL      float64 `json:"pressure_msl"`
	WindSpeed10m     float64 `json:"wind_speed_10m"`
	WeatherCode      int     `json:"weather_code"`
}

// openMeteoHourly holds parallel arrays indexed by position in Time.
type openMeteoHourly struct {
	Time             []string  `json:"time"`
	Temperature2m    []float64 `json:"temperature_2m"`
	RelativeHumidity []float64 `json:"relative_humidity_2m"`
	PressureMSL      []float64 `json:"pressure_msl"`
	WindSpeed10m     []float64 `json:"wind_speed_10m"`
	WeatherCode      []int     `json:"weather_code"`
}

func (p *OpenMeteoProvider) query(loc weather.Location) url.Values {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
	values.Set("wind_speed_unit", "ms")
	return values
}

// FetchCurrent returns the current observation at loc.
func (p *OpenMeteoProvider) FetchCurrent(ctx context.Context, loc weather.Location) (weather.WeatherSnapshot, error) {
	values := p.query(loc)
	values.Set("current", observedFields)

	var payload struct {
		Current openMeteoCurrent `json:"current"`
	}
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.WeatherSnapshot{}, fmt.Errorf("%w: current for %s: %v", weather.ErrUpstreamFetchFailed, loc.Key(), err)
	}

	return toSnapshot(loc, payload.Current), nil
}

// FetchForecast returns up to weather.MaxForecastPoints hourly entries for loc,
// in the order the provider sent them.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, loc weather.Location) (weather.Forecast, error) {
	values := p.query(loc)
	values.Set("hourly", observedFields)
	values.Set("forecast_days", strconv.Itoa(p.forecastDays))

	var payload struct {
		Hourly openMeteoHourly `json:"hourly"`
	}
	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	if err := getJSON(ctx, p.client, p.circuit, u, &payload); err != nil {
		return weather.Forecast{}, fmt.Errorf("%w: forecast for %s: %v", weather.ErrUpstreamFetchFailed, loc.Key(), err)
	}

	return toForecast(loc, payload.Hourly), nil
}

// toSnapshot is the only place that knows the current-observation schema.
func toSnapshot(loc weather.Location, c openMeteoCurrent) weather.WeatherSnapshot {
	return weather.WeatherSnapshot{
		LocationName: loc.Name,
		CountryCode:  loc.CountryCode,
		TemperatureC: c.Temperature2m,
		// Open-Meteo has no feels-like or min/max for a single observation.
		FeelsLikeC:  c.Temperature2m,
		TempMinC:    c.Temperature2m,
		TempMaxC:    c.Temperature2m,
		HumidityPct: int(math.Round(c.RelativeHumidity)),
		PressureHpa: c.PressureMSL,
		WindSpeedMs: c.WindSpeed10m,
		Condition:   weather.Describe(c.WeatherCode),
	}
}

// toForecast is the only place that knows the hourly schema. Arrays shorter
// than Time leave the matching fields at zero.
func toForecast(loc weather.Location, h openMeteoHourly) weather.Forecast {
	n := min(len(h.Time), weather.MaxForecastPoints)

	points := make([]weather.ForecastPoint, 0, n)
	for i := 0; i < n; i++ {
		temp := at(h.Temperature2m, i)
		points = append(points, weather.ForecastPoint{
			WeatherSnapshot: weather.WeatherSnapshot{
				LocationName: loc.Name,
				CountryCode:  loc.CountryCode,
				TemperatureC: temp,
				FeelsLikeC:   temp,
				TempMinC:     temp,
				TempMaxC:     temp,
				HumidityPct:  int(math.Round(at(h.RelativeHumidity, i))),
				PressureHpa:  at(h.PressureMSL, i),
				WindSpeedMs:  at(h.WindSpeed10m, i),
				Condition:    weather.Describe(at(h.WeatherCode, i)),
			},
			Timestamp: parseOpenMeteoTime(h.Time[i]),
			Time:      h.Time[i],
		})
	}

	return weather.Forecast{
		LocationName: loc.Name,
		CountryCode:  loc.CountryCode,
		Points:       points,
	}
}

func at[T any](xs []T, i int) T {
	var zero T
	if i < 0 || i >= len(xs) {
		return zero
	}
	return xs[i]
}

// parseOpenMeteoTime returns epoch seconds, or 0 when s is not a known layout.
func parseOpenMeteoTime(s string) int64 {
	if ts, err := time.ParseInLocation(openMeteoTimeLayout, s, time.UTC); err == nil {
		return ts.Unix()
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.Unix()
	}
	return 0
}

var _ weather.Normalizer = (*OpenMeteoProvider)(nil)
