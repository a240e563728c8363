package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"github.com/i474232898/city-weather/internal/common"
	"github.com/i474232898/city-weather/internal/weather"
)

// GoogleGeocoder implements weather.Resolver with the Google Geocoding API.
//
// The Google API returns no ISO country code on forward lookups, so resolved
// locations carry the queried name and an empty CountryCode.
type GoogleGeocoder struct {
	name    string
	circuit *gobreaker.CircuitBreaker

	// geocode is replaceable in tests.
	geocode func(geocoder.Address) (geocoder.Location, error)
}

// NewGoogleGeocoder configures the geocoder package with apiKey. The key is
// process-wide in that package, so only one GoogleGeocoder should exist.
func NewGoogleGeocoder(apiKey string) *GoogleGeocoder {
	geocoder.ApiKey = apiKey
	return &GoogleGeocoder{
		name:    "google-geocoding",
		circuit: newCircuitBreaker("google-geocoding"),
		geocode: geocoder.Geocoding,
	}
}

func (g *GoogleGeocoder) Name() string {
	return g.name
}

var errNoResults = errors.New("no results")

// Resolve geocodes name as a city. The geocoder package does not take a
// context, so ctx is only checked before the call.
func (g *GoogleGeocoder) Resolve(ctx context.Context, name string) (weather.Location, error) {
	if err := ctx.Err(); err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrServiceUnavailable, err)
	}

	result, err := g.circuit.Execute(func() (interface{}, error) {
		loc, err := g.geocode(geocoder.Address{City: name})
		if err != nil {
			if common.HasAny(err.Error(), "no results", "zero_results") {
				// Not an upstream fault; keep it out of the breaker counts.
				return loc, nil
			}
			return nil, err
		}
		return loc, nil
	})
	if err != nil {
		return weather.Location{}, fmt.Errorf("%w: %v", weather.ErrServiceUnavailable, err)
	}

	loc, _ := result.(geocoder.Location)
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return weather.Location{}, fmt.Errorf("%w: %q: %v", weather.ErrLocationNotFound, name, errNoResults)
	}

	return weather.Location{
		Name:      name,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}, nil
}

var _ weather.Resolver = (*GoogleGeocoder)(nil)
