package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/city-weather/internal/common"
	"github.com/i474232898/city-weather/internal/weather/providers"
)

const (
	GeocoderOpenMeteo = "openmeteo"
	GeocoderGoogle    = "google"
)

type AppConfig struct {
	Port string `validate:"required,numeric"`

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration `validate:"gt=0"`

	// Geocoder selects the location source.
	Geocoder     string `validate:"oneof=openmeteo google"`
	GoogleAPIKey string `validate:"required_if=Geocoder google"`

	GeocodingURL string `validate:"required,url"`
	ForecastURL  string `validate:"required,url"`

	// ForecastDays is the hourly horizon requested from the provider.
	ForecastDays int `validate:"min=1,max=16"`

	// Dashboard cities and how often they are refreshed.
	DashboardCities   []string      `validate:"min=1,dive,required"`
	DashboardInterval time.Duration `validate:"gte=1m"`
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	cfg.Geocoder = getenvDefault("GEOCODER", GeocoderOpenMeteo)
	cfg.GoogleAPIKey = os.Getenv("GOOGLE_GEOCODING_API_KEY")
	cfg.GeocodingURL = getenvDefault("OPENMETEO_GEOCODING_URL", providers.DefaultGeocodingURL)
	cfg.ForecastURL = getenvDefault("OPENMETEO_FORECAST_URL", providers.DefaultForecastURL)
	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 5)

	cfg.DashboardCities = common.SplitList(getenvDefault("DASHBOARD_CITIES", "Cairo,London,Tokyo,New York"))

	interval, err := getenvDuration("DASHBOARD_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.DashboardInterval = interval

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
