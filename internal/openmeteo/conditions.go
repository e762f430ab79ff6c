package openmeteo

import "fmt"

// conditions maps WMO weather interpretation codes (WW) to short phrases.
// https://open-meteo.com/en/docs
var conditions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns a human-readable condition for a weather code. Unknown
// codes produce a fallback string, so Describe is total over all integers.
func Describe(code int) string {
	if desc, ok := conditions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown (%d)", code)
}
