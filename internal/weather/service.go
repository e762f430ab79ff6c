package weather

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"weather-mcp-server/internal/cities"
	"weather-mcp-server/internal/openmeteo"
)

var validate = validator.New()

// DefaultForecastDays is applied when the caller does not pass a days value.
const DefaultForecastDays = 3

// alertForecastDays is the fixed window inspected by the alert rules.
const alertForecastDays = 3

// Fetcher abstracts the upstream client so the service can be tested without
// network access. Implemented by *openmeteo.Client.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, params openmeteo.Params) (*openmeteo.ForecastResponse, error)
}

// Service implements the weather query operations. Each operation follows the
// same shape: validate, resolve the city, fetch, format. The service holds no
// per-call state; calls are independent and may run concurrently.
type Service struct {
	registry *cities.Registry
	fetcher  Fetcher
	log      *zap.SugaredLogger
}

// NewService creates a Service over the given registry and upstream fetcher.
func NewService(registry *cities.Registry, fetcher Fetcher, log *zap.SugaredLogger) *Service {
	return &Service{
		registry: registry,
		fetcher:  fetcher,
		log:      log,
	}
}

// forecastQuery carries the caller-supplied forecast parameters through
// validation.
type forecastQuery struct {
	Days int `validate:"gte=1,lte=7"`
}

// CurrentWeather returns a formatted block with the current conditions for a
// supported city.
func (s *Service) CurrentWeather(ctx context.Context, city string) (string, error) {
	s.log.Infow("fetching current weather", "city", city)

	entry, ok := s.registry.Resolve(city)
	if !ok {
		return "", s.unsupportedCity(city)
	}

	resp, err := s.fetcher.Fetch(ctx, entry.Lat, entry.Lon, openmeteo.Params{
		"current": "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m,wind_direction_10m",
	})
	if err != nil {
		return "", newUpstreamError(err, "Error fetching weather data: %v", err)
	}
	if resp.Current == nil {
		return "", newUpstreamError(nil, "Error fetching weather data: response missing current conditions")
	}

	return formatCurrent(entry, resp.Current), nil
}

// Forecast returns formatted per-day blocks for the requested number of days.
// The days value must be an integer in [1, 7]; validation happens before any
// network call.
func (s *Service) Forecast(ctx context.Context, city string, days int) (string, error) {
	s.log.Infow("fetching forecast", "city", city, "days", days)

	if err := validate.Struct(forecastQuery{Days: days}); err != nil {
		return "", InvalidDaysError()
	}

	entry, ok := s.registry.Resolve(city)
	if !ok {
		return "", s.unsupportedCity(city)
	}

	resp, err := s.fetcher.Fetch(ctx, entry.Lat, entry.Lon, openmeteo.Params{
		"daily":         "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max",
		"forecast_days": itoa(days),
	})
	if err != nil {
		return "", newUpstreamError(err, "Error fetching forecast data: %v", err)
	}

	return formatForecast(entry, days, resp.Daily), nil
}

// Alerts evaluates the threshold rules against fresh current and forecast data
// and returns the formatted alert report.
func (s *Service) Alerts(ctx context.Context, city string) (string, error) {
	s.log.Infow("fetching weather alerts", "city", city)

	entry, ok := s.registry.Resolve(city)
	if !ok {
		return "", s.unsupportedCity(city)
	}

	resp, err := s.fetcher.Fetch(ctx, entry.Lat, entry.Lon, openmeteo.Params{
		"current":       "temperature_2m,wind_speed_10m,weather_code",
		"daily":         "temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max",
		"forecast_days": itoa(alertForecastDays),
	})
	if err != nil {
		return "", newUpstreamError(err, "Error fetching weather alerts: %v", err)
	}

	var snap Snapshot
	if resp.Current != nil {
		snap.Temperature = resp.Current.Temperature2m
		snap.WindSpeed = resp.Current.WindSpeed10m
		snap.WeatherCode = resp.Current.WeatherCode
	}
	if resp.Daily != nil {
		snap.DailyPrecipitation = resp.Daily.PrecipitationSum
	}

	findings := EvaluateAlerts(snap)
	return formatAlerts(entry, findings, snap), nil
}

// SupportedCities returns the sorted city listing. It touches no network and
// cannot fail.
func (s *Service) SupportedCities() string {
	return formatSupportedCities(s.registry.All())
}

func (s *Service) unsupportedCity(city string) *ValidationError {
	return newValidationError("Error: City '%s' not supported. Supported cities: %s",
		city, strings.Join(s.registry.Keys(), ", "))
}
