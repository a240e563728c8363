package weather

import (
	"context"
	"errors"
)

var (
	// ErrEmptyCityName is returned when the city name is blank after cleaning.
	ErrEmptyCityName = errors.New("city name is empty")

	// ErrLocationNotFound is returned when the geocoder has no match for a name.
	ErrLocationNotFound = errors.New("location not found")

	// ErrServiceUnavailable is returned when the geocoding call does not complete
	// successfully (non-2xx status or network failure).
	ErrServiceUnavailable = errors.New("geocoding service unavailable")

	// ErrUpstreamFetchFailed is returned when the weather call does not complete
	// successfully (non-2xx status or network failure).
	ErrUpstreamFetchFailed = errors.New("weather upstream fetch failed")

	// ErrDashboardUnavailable is returned when any member of a dashboard fetch fails.
	ErrDashboardUnavailable = errors.New("dashboard weather unavailable")
)

// Resolver maps a free-text place name to its best matching Location.
type Resolver interface {
	Name() string
	Resolve(ctx context.Context, name string) (Location, error)
}

// Normalizer fetches provider observations for a location and returns them
// in the provider-independent shapes of this package.
type Normalizer interface {
	Name() string
	FetchCurrent(ctx context.Context, loc Location) (WeatherSnapshot, error)
	FetchForecast(ctx context.Context, loc Location) (Forecast, error)
}

// Board is the contract for holding the last complete dashboard refresh.
type Board interface {
	SaveDashboard(snapshots []WeatherSnapshot)
	LatestDashboard() (Dashboard, error)
}
