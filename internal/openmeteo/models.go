package openmeteo

// ForecastResponse is the subset of the Open-Meteo forecast payload this
// server reads. Both blocks are optional; which one is present depends on the
// requested parameters.
type ForecastResponse struct {
	Current *Current `json:"current,omitempty"`
	Daily   *Daily   `json:"daily,omitempty"`
}

// Current holds the instantaneous readings. Time is reported in the location's
// local timezone (the request always sets timezone=auto).
type Current struct {
	Time               string  `json:"time"`
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	WeatherCode        int     `json:"weather_code"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
	WindDirection10m   float64 `json:"wind_direction_10m"`
}

// Daily holds per-day forecast arrays, index-aligned by day. The API does not
// guarantee the arrays match the requested forecast_days, so indexed reads
// must be bounded by the shortest array.
type Daily struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
}
