package alert

import (
	"fmt"
	"time"
)

// Rule maps a rainfall threshold to an alert level
type Rule struct {
	MinRainMm float64
	Level     Level
	Ref       string
}

// RainRules are ordered from most to least severe
var RainRules = []Rule{
	{MinRainMm: 60, Level: LevelEmergency, Ref: "rain>=60mm"},
	{MinRainMm: 40, Level: LevelWarning, Ref: "rain>=40mm"},
	{MinRainMm: 25, Level: LevelWatch, Ref: "rain>=25mm"},
}

// EvaluateRain returns the highest rule whose threshold rainMm reaches
func EvaluateRain(rainMm float64) (Rule, bool) {
	for _, rule := range RainRules {
		if rainMm >= rule.MinRainMm {
			return rule, true
		}
	}
	return Rule{}, false
}

// NewRainAlert builds a flood alert for a matched rule starting at now
func NewRainAlert(locationID uint, locationName string, rule Rule, rainMm float64, now time.Time) *Alert {
	endsAt := now.Add(ActiveWindow)
	message := fmt.Sprintf("Heavy rainfall detected: %.1f mm in the last hour.", rainMm)
	ref := rule.Ref

	return &Alert{
		LocationID: locationID,
		Level:      rule.Level,
		Type:       TypeFlood,
		Title:      fmt.Sprintf("%s alert for %s", rule.Level.Title(), locationName),
		Message:    &message,
		StartsAt:   now,
		EndsAt:     &endsAt,
		Source:     SourceOpenWeather,
		RuleRef:    &ref,
	}
}
