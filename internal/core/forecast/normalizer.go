package forecast

import (
	"math"
	"time"

	"floodwatch.app/internal/core/location"
)

// Source identifies the location a payload was fetched for
type Source struct {
	LocationID uint
	Timezone   string
}

// Normalize maps an OpenWeather current-conditions payload onto a Forecast.
// Missing or non-numeric fields become nil; it never fails for a JSON object.
func Normalize(src Source, payload Payload, raw []byte, now time.Time) *Forecast {
	tz := location.LoadTimezone(src.Timezone)

	observedAt := now.In(tz)
	if dt, ok := payload.Number("dt"); ok {
		observedAt = time.Unix(int64(dt), 0).In(tz)
	}

	f := &Forecast{
		LocationID: src.LocationID,
		ObservedAt: observedAt,
		TempC:      optionalNumber(payload, "main", "temp"),
		FeelsLikeC: optionalNumber(payload, "main", "feels_like"),
		WindMs:     optionalNumber(payload, "wind", "speed"),
		RainMm:     RainFromPayload(payload),
		Raw:        append([]byte(nil), raw...),
	}

	if humidity, ok := payload.Number("main", "humidity"); ok {
		h := int(math.Round(humidity))
		f.Humidity = &h
	}

	if weather, ok := payload.PrimaryWeather(); ok {
		if description, ok := weather.String("description"); ok {
			f.Summary = &description
		}
	}

	return f
}

// RainFromPayload extracts last-hour rainfall in mm. The provider sends either
// a bare number or an object keyed by accumulation window.
func RainFromPayload(payload Payload) float64 {
	switch rain := payload["rain"].(type) {
	case float64:
		return rain
	case map[string]interface{}:
		if hour, ok := rain["1h"].(float64); ok {
			return hour
		}
	}
	return 0
}

func optionalNumber(payload Payload, path ...string) *float64 {
	n, ok := payload.Number(path...)
	if !ok {
		return nil
	}
	return &n
}
