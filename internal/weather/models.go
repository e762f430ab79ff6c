package weather

// Snapshot is the normalized subset of provider data the alert rules read.
// It is built fresh from one fetch and discarded after the call.
type Snapshot struct {
	// Current readings.
	Temperature float64
	WindSpeed   float64
	WeatherCode int

	// DailyPrecipitation holds per-day precipitation sums (mm), index-aligned
	// with the forecast days.
	DailyPrecipitation []float64
}

// Category identifies the rule that produced a finding.
type Category string

const (
	CategoryHighTemp     Category = "high_temp"
	CategoryLowTemp      Category = "low_temp"
	CategoryHighWind     Category = "high_wind"
	CategoryHeavyRain    Category = "heavy_rain"
	CategoryThunderstorm Category = "thunderstorm"
)

// Finding is one synthesized alert. Findings are ephemeral, produced fresh on
// every call.
type Finding struct {
	Category Category
	Message  string
}
