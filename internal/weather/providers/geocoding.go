package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/city-weather/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultGeocodingURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocoder implements weather.Resolver with the Open-Meteo geocoding API.
type OpenMeteoGeocoder struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoGeocoder(client *http.Client, baseURL string) *OpenMeteoGeocoder {
	if baseURL == "" {
		baseURL = DefaultGeocodingURL
	}
	return &OpenMeteoGeocoder{
		name:    "openmeteo-geocoding",
		baseURL: baseURL,
		client:  client,
		circuit: newCircuitBreaker("openmeteo-geocoding"),
	}
}

func (g *OpenMeteoGeocoder) Name() string {
	return g.name
}

type geocodingResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	CountryCode string  `json:"country_code"`
}

type geocodingResponse struct {
	Results []geocodingResult `json:"results"`
}

// Resolve asks for exactly one match and returns it.
func (g *OpenMeteoGeocoder) Resolve(ctx context.Context, name string) (weather.Location, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")
	values.Set("format", "json")

	var payload geocodingResponse
	u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
	if err := getJSON(ctx, g.client, g.circuit, u, &payload); err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrServiceUnavailable, err)
	}

	if len(payload.Results) == 0 {
		return weather.Location{}, fmt.Errorf("%w: %q", weather.ErrLocationNotFound, name)
	}
	return toLocation(payload.Results[0]), nil
}

// toLocation is the only place that knows the geocoding result schema.
func toLocation(r geocodingResult) weather.Location {
	return weather.Location{
		Name:        r.Name,
		CountryCode: r.CountryCode,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
	}
}

var _ weather.Resolver = (*OpenMeteoGeocoder)(nil)
