package weather

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"weather-mcp-server/internal/cities"
	"weather-mcp-server/internal/openmeteo"
)

// fakeFetcher records the last request and returns a canned response.
type fakeFetcher struct {
	resp  *openmeteo.ForecastResponse
	err   error
	calls int

	gotLat    float64
	gotLon    float64
	gotParams openmeteo.Params
}

func (f *fakeFetcher) Fetch(ctx context.Context, lat, lon float64, params openmeteo.Params) (*openmeteo.ForecastResponse, error) {
	f.calls++
	f.gotLat = lat
	f.gotLon = lon
	f.gotParams = params
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestService(f *fakeFetcher) *Service {
	return NewService(cities.NewRegistry(), f, zap.NewNop().Sugar())
}

func TestCurrentWeatherFormatsBlock(t *testing.T) {
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{
		Current: &openmeteo.Current{
			Time:               "2024-01-01T12:00",
			Temperature2m:      12.3,
			RelativeHumidity2m: 81,
			WeatherCode:        3,
			WindSpeed10m:       15.2,
			WindDirection10m:   240,
		},
	}}
	svc := newTestService(f)

	out, err := svc.CurrentWeather(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Current Weather for London, UK:",
		"Temperature: 12.3°C",
		"Conditions: Overcast",
		"Humidity: 81%",
		"Wind: 15.2 km/h at 240°",
		"Time: 2024-01-01T12:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if f.gotLat != 51.5074 || f.gotLon != -0.1278 {
		t.Errorf("expected London coordinates, got %v, %v", f.gotLat, f.gotLon)
	}
	if got := f.gotParams["current"]; !strings.Contains(got, "relative_humidity_2m") {
		t.Errorf("expected current params to request humidity, got %q", got)
	}
}

func TestCurrentWeatherUnsupportedCity(t *testing.T) {
	f := &fakeFetcher{}
	svc := newTestService(f)

	_, err := svc.CurrentWeather(context.Background(), "InvalidCity123")
	if err == nil {
		t.Fatal("expected error for unsupported city")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "Error") || !strings.Contains(msg, "InvalidCity123") {
		t.Errorf("expected error marker and city name, got %q", msg)
	}
	for _, key := range []string{"beijing", "london", "new york", "paris", "singapore", "tokyo", "toronto"} {
		if !strings.Contains(msg, key) {
			t.Errorf("expected supported city %q enumerated in %q", key, msg)
		}
	}
	if f.calls != 0 {
		t.Errorf("expected no fetch for unsupported city, got %d calls", f.calls)
	}
}

func TestCurrentWeatherUpstreamFailure(t *testing.T) {
	f := &fakeFetcher{err: openmeteo.ErrUpstream}
	svc := newTestService(f)

	_, err := svc.CurrentWeather(context.Background(), "tokyo")
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %T (%v)", err, err)
	}
	if !strings.Contains(err.Error(), "Error fetching weather data") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestForecastRejectsOutOfRangeDays(t *testing.T) {
	for _, days := range []int{0, 8, -1} {
		f := &fakeFetcher{}
		svc := newTestService(f)

		_, err := svc.Forecast(context.Background(), "Paris", days)
		if err == nil {
			t.Fatalf("days=%d: expected validation error", days)
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("days=%d: expected ValidationError, got %T", days, err)
		}
		if !strings.Contains(err.Error(), "1 and 7") {
			t.Errorf("days=%d: expected range in message, got %q", days, err.Error())
		}
		if f.calls != 0 {
			t.Errorf("days=%d: expected validation to short-circuit before fetch, got %d calls", days, f.calls)
		}
	}
}

func TestForecastRequestParams(t *testing.T) {
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{Daily: &openmeteo.Daily{}}}
	svc := newTestService(f)

	if _, err := svc.Forecast(context.Background(), "paris", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.gotParams["forecast_days"]; got != "5" {
		t.Errorf("expected forecast_days=5, got %q", got)
	}
	if got := f.gotParams["daily"]; !strings.Contains(got, "precipitation_sum") {
		t.Errorf("expected daily params to request precipitation, got %q", got)
	}
}

func TestForecastTruncatesToReturnedDays(t *testing.T) {
	// Five days requested, two returned: output must silently contain two
	// day blocks.
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{
		Daily: &openmeteo.Daily{
			Time:             []string{"2024-01-01", "2024-01-02"},
			WeatherCode:      []int{0, 61},
			Temperature2mMax: []float64{8.1, 9.4},
			Temperature2mMin: []float64{2.0, 3.5},
			PrecipitationSum: []float64{0, 4.2},
			WindSpeed10mMax:  []float64{20, 31},
		},
	}}
	svc := newTestService(f)

	out, err := svc.Forecast(context.Background(), "toronto", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Weather Forecast for Toronto, Canada (5 days):") {
		t.Errorf("missing header:\n%s", out)
	}
	if got := strings.Count(out, "High:"); got != 2 {
		t.Errorf("expected 2 day blocks, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "2024-01-02") || !strings.Contains(out, "Slight rain") {
		t.Errorf("missing day content:\n%s", out)
	}
}

func TestForecastBoundsByShortestArray(t *testing.T) {
	// Time has three entries but wind only one; iteration must stop at one.
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{
		Daily: &openmeteo.Daily{
			Time:             []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			WeatherCode:      []int{0, 0, 0},
			Temperature2mMax: []float64{8, 9, 10},
			Temperature2mMin: []float64{2, 3, 4},
			PrecipitationSum: []float64{0, 0, 0},
			WindSpeed10mMax:  []float64{20},
		},
	}}
	svc := newTestService(f)

	out, err := svc.Forecast(context.Background(), "london", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out, "High:"); got != 1 {
		t.Errorf("expected 1 day block, got %d:\n%s", got, out)
	}
}

func TestForecastMissingDailyBlock(t *testing.T) {
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{}}
	svc := newTestService(f)

	out, err := svc.Forecast(context.Background(), "london", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Weather Forecast for London, UK (3 days):") {
		t.Errorf("missing header:\n%s", out)
	}
	if strings.Contains(out, "High:") {
		t.Errorf("expected no day blocks:\n%s", out)
	}
}

func TestAlertsQuietConditions(t *testing.T) {
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{
		Current: &openmeteo.Current{Temperature2m: 20, WindSpeed10m: 10, WeatherCode: 0},
		Daily:   &openmeteo.Daily{PrecipitationSum: []float64{0, 0, 0}},
	}}
	svc := newTestService(f)

	out, err := svc.Alerts(context.Background(), "singapore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "Weather Alerts for Singapore:") {
		t.Errorf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "No active weather alerts or warnings") {
		t.Errorf("missing explicit no-alerts line:\n%s", out)
	}
	if !strings.Contains(out, "Temperature: 20°C") || !strings.Contains(out, "Wind Speed: 10 km/h") {
		t.Errorf("missing current conditions summary:\n%s", out)
	}
	if got := f.gotParams["forecast_days"]; got != "3" {
		t.Errorf("expected fixed forecast_days=3, got %q", got)
	}
}

func TestAlertsActiveFindings(t *testing.T) {
	f := &fakeFetcher{resp: &openmeteo.ForecastResponse{
		Current: &openmeteo.Current{Temperature2m: 38, WindSpeed10m: 55, WeatherCode: 95},
		Daily:   &openmeteo.Daily{PrecipitationSum: []float64{60, 0, 0}},
	}}
	svc := newTestService(f)

	out, err := svc.Alerts(context.Background(), "beijing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "ACTIVE ALERTS:") {
		t.Errorf("missing alerts section:\n%s", out)
	}
	for _, want := range []string{
		"HIGH TEMPERATURE WARNING",
		"HIGH WIND WARNING",
		"HEAVY RAIN WARNING",
		"THUNDERSTORM WARNING",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "No active weather alerts") {
		t.Errorf("no-alerts line must not appear alongside findings:\n%s", out)
	}
}

func TestAlertsUpstreamFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection refused")}
	svc := newTestService(f)

	_, err := svc.Alerts(context.Background(), "tokyo")
	var uerr *UpstreamError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if !strings.Contains(err.Error(), "Error fetching weather alerts") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestSupportedCitiesListing(t *testing.T) {
	svc := newTestService(&fakeFetcher{})

	out := svc.SupportedCities()
	if !strings.Contains(out, "Total: 7 cities") {
		t.Errorf("missing total count:\n%s", out)
	}
	for _, want := range []string{"London, UK", "Query name: 'new york'", "Coordinates: 35.6762, 139.6503"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}

	// Sorted by key: beijing before london before tokyo.
	if strings.Index(out, "Beijing, China") > strings.Index(out, "London, UK") ||
		strings.Index(out, "London, UK") > strings.Index(out, "Tokyo, Japan") {
		t.Errorf("listing not sorted by key:\n%s", out)
	}
}
