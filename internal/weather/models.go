package weather

import "time"

// Location is a geocoded place. Produced by a Resolver and consumed once to
// request weather for its coordinates.
type Location struct {
	Name        string  `json:"name"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Key returns a canonical string key for logging and indexing this location.
func (l Location) Key() string {
	if l.CountryCode == "" {
		return l.Name
	}
	return l.Name + ":" + l.CountryCode
}

// Condition is a weather code together with its human description and icon.
type Condition struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// WeatherSnapshot is the normalized view of the current observation for a location.
//
// FeelsLikeC, TempMinC and TempMaxC carry the raw temperature when the provider
// has no distinct figure for them. WindDirectionDeg is 0 for the same reason.
type WeatherSnapshot struct {
	LocationName     string    `json:"locationName"`
	CountryCode      string    `json:"countryCode"`
	TemperatureC     float64   `json:"temperatureC"`
	FeelsLikeC       float64   `json:"feelsLikeC"`
	TempMinC         float64   `json:"tempMinC"`
	TempMaxC         float64   `json:"tempMaxC"`
	HumidityPct      int       `json:"humidityPct"`
	PressureHpa      float64   `json:"pressureHpa"`
	WindSpeedMs      float64   `json:"windSpeedMs"`
	WindDirectionDeg float64   `json:"windDirectionDeg"`
	Condition        Condition `json:"condition"`
}

// ForecastPoint is a snapshot for a single hour of a forecast.
type ForecastPoint struct {
	WeatherSnapshot

	// Timestamp is epoch seconds (UTC) parsed from Time.
	Timestamp int64  `json:"timestamp"`
	Time      string `json:"time"`
}

// MaxForecastPoints caps the number of hourly entries kept in a Forecast.
const MaxForecastPoints = 40

// Forecast is an ordered hourly series for a location.
// Points are ordered by Timestamp ascending, as received from the provider.
type Forecast struct {
	LocationName string          `json:"locationName"`
	CountryCode  string          `json:"countryCode"`
	Points       []ForecastPoint `json:"points"`
}

// Dashboard is a complete refresh of the default cities.
type Dashboard struct {
	RefreshedAt time.Time         `json:"refreshedAt"` // always UTC
	Snapshots   []WeatherSnapshot `json:"snapshots"`
}
