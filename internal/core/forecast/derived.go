package forecast

import (
	"math"
	"strings"
)

// Wind levels reported alongside the forecast
const (
	WindUnknown = "unknown"
	WindCalm    = "calm"
	WindBreezy  = "breezy"
	WindStrong  = "strong"
)

const (
	breezyWindMs = 9.0
	strongWindMs = 15.0
)

var wetConditions = map[string]bool{
	"rain":         true,
	"drizzle":      true,
	"thunderstorm": true,
	"snow":         true,
}

// Conditions are presentation metrics computed on read
type Conditions struct {
	WindKph         *float64
	WindLevel       string
	ChanceOfRainPct int
}

// Derive computes the read-path metrics for a stored forecast
func Derive(f *Forecast) Conditions {
	payload, err := ParsePayload(f.Raw)
	if err != nil {
		payload = Payload{}
	}

	return Conditions{
		WindKph:         WindKph(f.WindMs),
		WindLevel:       WindLevel(f.WindMs),
		ChanceOfRainPct: ChanceOfRain(f.RainMm, payload),
	}
}

// ChanceOfRain is a heuristic percentage; the first matching rule wins
func ChanceOfRain(rainMm float64, payload Payload) int {
	if rainMm > 0 {
		return 80
	}

	if weather, ok := payload.PrimaryWeather(); ok {
		if main, ok := weather.String("main"); ok && wetConditions[strings.ToLower(main)] {
			return 75
		}
	}

	if clouds, ok := payload.Number("clouds", "all"); ok {
		switch {
		case clouds >= 85:
			return 45
		case clouds >= 60:
			return 30
		case clouds >= 30:
			return 15
		default:
			return 5
		}
	}

	return 10
}

// WindKph converts m/s to km/h rounded to one decimal
func WindKph(windMs *float64) *float64 {
	if windMs == nil {
		return nil
	}
	kph := math.Round(*windMs*3.6*10) / 10
	return &kph
}

// WindLevel classifies wind speed in m/s
func WindLevel(windMs *float64) string {
	switch {
	case windMs == nil:
		return WindUnknown
	case *windMs >= strongWindMs:
		return WindStrong
	case *windMs >= breezyWindMs:
		return WindBreezy
	default:
		return WindCalm
	}
}
