package weather

// Alert thresholds. These are fixed literals: the alerts are a local heuristic
// over the snapshot the caller already requested, not an authoritative feed.
const (
	highTempThreshold  = 35.0  // °C
	lowTempThreshold   = -10.0 // °C
	highWindThreshold  = 50.0  // km/h
	heavyRainThreshold = 50.0  // mm per day
	precipWindowDays   = 3
)

// thunderstormCodes are the WMO codes treated as severe weather.
var thunderstormCodes = map[int]bool{95: true, 96: true, 99: true}

// EvaluateAlerts runs the fixed rule set against a snapshot and returns the
// findings in rule order. It is pure and deterministic; findings are neither
// deduplicated nor ranked.
func EvaluateAlerts(s Snapshot) []Finding {
	var findings []Finding

	// Extreme temperature. The two bounds are mutually exclusive for a single
	// reading, so this is an else-if chain.
	if s.Temperature > highTempThreshold {
		findings = append(findings, Finding{
			Category: CategoryHighTemp,
			Message:  "HIGH TEMPERATURE WARNING: Extreme heat detected",
		})
	} else if s.Temperature < lowTempThreshold {
		findings = append(findings, Finding{
			Category: CategoryLowTemp,
			Message:  "LOW TEMPERATURE WARNING: Extreme cold detected",
		})
	}

	if s.WindSpeed > highWindThreshold {
		findings = append(findings, Finding{
			Category: CategoryHighWind,
			Message:  "HIGH WIND WARNING: Strong winds detected",
		})
	}

	// Heavy precipitation anywhere in the forecast window, not just today.
	window := s.DailyPrecipitation
	if len(window) > precipWindowDays {
		window = window[:precipWindowDays]
	}
	for _, p := range window {
		if p > heavyRainThreshold {
			findings = append(findings, Finding{
				Category: CategoryHeavyRain,
				Message:  "HEAVY RAIN WARNING: Significant precipitation expected",
			})
			break
		}
	}

	if thunderstormCodes[s.WeatherCode] {
		findings = append(findings, Finding{
			Category: CategoryThunderstorm,
			Message:  "THUNDERSTORM WARNING: Severe weather detected",
		})
	}

	return findings
}
