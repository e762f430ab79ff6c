package weather

import (
	"fmt"
	"strconv"
	"strings"

	"weather-mcp-server/internal/cities"
	"weather-mcp-server/internal/openmeteo"
)

var banner = strings.Repeat("━", 35)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatCurrent(city cities.City, cur *openmeteo.Current) string {
	lines := []string{
		fmt.Sprintf("Current Weather for %s:", city.Name),
		banner,
		fmt.Sprintf("Temperature: %v°C", cur.Temperature2m),
		fmt.Sprintf("Conditions: %s", openmeteo.Describe(cur.WeatherCode)),
		fmt.Sprintf("Humidity: %v%%", cur.RelativeHumidity2m),
		fmt.Sprintf("Wind: %v km/h at %v°", cur.WindSpeed10m, cur.WindDirection10m),
		fmt.Sprintf("Time: %s", cur.Time),
		banner,
	}
	return strings.Join(lines, "\n")
}

func formatForecast(city cities.City, days int, daily *openmeteo.Daily) string {
	lines := []string{
		fmt.Sprintf("Weather Forecast for %s (%d days):", city.Name, days),
		banner,
	}

	for i := 0; i < forecastEntryCount(days, daily); i++ {
		lines = append(lines,
			"\n"+daily.Time[i],
			"   "+openmeteo.Describe(daily.WeatherCode[i]),
			fmt.Sprintf("   High: %v°C | Low: %v°C", daily.Temperature2mMax[i], daily.Temperature2mMin[i]),
			fmt.Sprintf("   Precipitation: %v mm", daily.PrecipitationSum[i]),
			fmt.Sprintf("   Max Wind: %v km/h", daily.WindSpeed10mMax[i]),
		)
	}

	lines = append(lines, banner)
	return strings.Join(lines, "\n")
}

// forecastEntryCount bounds iteration by the shortest returned array. The
// provider does not guarantee the arrays match the requested days; when it
// returns fewer entries the output is truncated silently.
func forecastEntryCount(days int, daily *openmeteo.Daily) int {
	if daily == nil {
		return 0
	}
	n := days
	for _, l := range []int{
		len(daily.Time),
		len(daily.WeatherCode),
		len(daily.Temperature2mMax),
		len(daily.Temperature2mMin),
		len(daily.PrecipitationSum),
		len(daily.WindSpeed10mMax),
	} {
		if l < n {
			n = l
		}
	}
	return n
}

func formatAlerts(city cities.City, findings []Finding, snap Snapshot) string {
	lines := []string{
		fmt.Sprintf("Weather Alerts for %s:", city.Name),
		banner,
	}

	if len(findings) > 0 {
		lines = append(lines, "\nACTIVE ALERTS:")
		for _, f := range findings {
			lines = append(lines, "   • "+f.Message)
		}
	} else {
		lines = append(lines, "\nNo active weather alerts or warnings")
	}

	lines = append(lines,
		"\nCurrent Conditions:",
		fmt.Sprintf("   Temperature: %v°C", snap.Temperature),
		fmt.Sprintf("   Wind Speed: %v km/h", snap.WindSpeed),
		banner,
	)
	return strings.Join(lines, "\n")
}

func formatSupportedCities(all []cities.City) string {
	lines := []string{
		"Supported Cities for Weather Queries:",
		banner,
	}

	for _, c := range all {
		lines = append(lines,
			"\n"+c.Name,
			fmt.Sprintf("   Coordinates: %v, %v", c.Lat, c.Lon),
			fmt.Sprintf("   Query name: '%s'", c.Key),
		)
	}

	lines = append(lines,
		"\n"+banner,
		fmt.Sprintf("Total: %d cities", len(all)),
	)
	return strings.Join(lines, "\n")
}
