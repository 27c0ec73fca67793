package api

import (
	"time"

	"floodwatch.app/internal/core/alert"
	"floodwatch.app/internal/core/device"
	"floodwatch.app/internal/core/forecast"
	"floodwatch.app/internal/core/ingestion"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/core/report"
)

// LocationResponse is a monitored location
type LocationResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Region    *string `json:"region"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// ForecastResponse is the latest observation with read-time metrics
type ForecastResponse struct {
	ID              uint      `json:"id"`
	LocationID      uint      `json:"location_id"`
	ObservedAt      time.Time `json:"observed_at"`
	TempC           *float64  `json:"temp_c"`
	FeelsLikeC      *float64  `json:"feels_like_c"`
	Humidity        *int      `json:"humidity"`
	WindMs          *float64  `json:"wind_ms"`
	WindKph         *float64  `json:"wind_kph"`
	WindLevel       string    `json:"wind_level"`
	RainMm          float64   `json:"rain_mm"`
	ChanceOfRainPct int       `json:"chance_of_rain_pct"`
	Summary         *string   `json:"summary"`
}

// AlertResponse is an alert row
type AlertResponse struct {
	ID         uint       `json:"id"`
	LocationID uint       `json:"location_id"`
	Level      string     `json:"level"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	Message    *string    `json:"message"`
	StartsAt   time.Time  `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	Source     string     `json:"source"`
	RuleRef    *string    `json:"rule_ref"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// LocationSummaryResponse is the location embedded in hazard listings
type LocationSummaryResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Region *string `json:"region"`
}

// ReportResponse is a hazard report, optionally with its location
type ReportResponse struct {
	ID         uint                     `json:"id"`
	LocationID uint                     `json:"location_id"`
	Type       string                   `json:"type"`
	Severity   *string                  `json:"severity"`
	Note       *string                  `json:"note"`
	PhotoURL   *string                  `json:"photo_url"`
	ReportedAt time.Time                `json:"reported_at"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
	Location   *LocationSummaryResponse `json:"location,omitempty"`
}

// DeviceTokenResponse is a registered push token
type DeviceTokenResponse struct {
	ID         uint      `json:"id"`
	ExpoToken  string    `json:"expo_token"`
	Platform   *string   `json:"platform"`
	LocationID *uint     `json:"location_id"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IngestResultResponse is the outcome for one location
type IngestResultResponse struct {
	LocationID    uint    `json:"location_id"`
	Status        string  `json:"status"`
	ForecastID    *uint   `json:"forecast_id,omitempty"`
	AlertsCreated *int    `json:"alerts_created,omitempty"`
	Message       *string `json:"message,omitempty"`
}

// IngestResponse lists results in location order
type IngestResponse struct {
	Results []IngestResultResponse `json:"results"`
}

// ReportRequest is the body of POST /hazards and POST /reports
type ReportRequest struct {
	LocationID *uint      `json:"location_id" binding:"required"`
	Type       string     `json:"type" binding:"required,max=32"`
	Severity   *string    `json:"severity" binding:"omitempty,max=16"`
	Note       *string    `json:"note"`
	PhotoURL   *string    `json:"photo_url" binding:"omitempty,max=255"`
	ReportedAt *time.Time `json:"reported_at"`
}

// DeviceTokenRequest is the body of POST /device-tokens
type DeviceTokenRequest struct {
	ExpoToken  string  `json:"expo_token" binding:"required,max=255"`
	Platform   *string `json:"platform" binding:"omitempty,max=16"`
	LocationID *uint   `json:"location_id"`
}

// HazardQuery holds the query parameters of hazard listings
type HazardQuery struct {
	LocationID *uint `form:"location_id"`
	Limit      *int  `form:"limit"`
}

func toLocationResponse(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Region:    l.Region,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Timezone:  l.Timezone,
	}
}

func toForecastResponse(s *forecast.Snapshot) ForecastResponse {
	f := s.Forecast
	return ForecastResponse{
		ID:              f.ID,
		LocationID:      f.LocationID,
		ObservedAt:      f.ObservedAt,
		TempC:           f.TempC,
		FeelsLikeC:      f.FeelsLikeC,
		Humidity:        f.Humidity,
		WindMs:          f.WindMs,
		WindKph:         s.Conditions.WindKph,
		WindLevel:       s.Conditions.WindLevel,
		RainMm:          f.RainMm,
		ChanceOfRainPct: s.Conditions.ChanceOfRainPct,
		Summary:         f.Summary,
	}
}

func toAlertResponse(a *alert.Alert) AlertResponse {
	return AlertResponse{
		ID:         a.ID,
		LocationID: a.LocationID,
		Level:      a.Level.String(),
		Type:       a.Type,
		Title:      a.Title,
		Message:    a.Message,
		StartsAt:   a.StartsAt,
		EndsAt:     a.EndsAt,
		Source:     a.Source,
		RuleRef:    a.RuleRef,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func toReportResponse(r *report.Report, withLocation bool) ReportResponse {
	resp := ReportResponse{
		ID:         r.ID,
		LocationID: r.LocationID,
		Type:       r.Type,
		Severity:   r.Severity,
		Note:       r.Note,
		PhotoURL:   r.PhotoURL,
		ReportedAt: r.ReportedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if withLocation && r.Location != nil {
		resp.Location = &LocationSummaryResponse{
			ID:     r.Location.ID,
			Name:   r.Location.Name,
			Region: r.Location.Region,
		}
	}
	return resp
}

func toDeviceTokenResponse(t *device.Token) DeviceTokenResponse {
	return DeviceTokenResponse{
		ID:         t.ID,
		ExpoToken:  t.ExpoToken,
		Platform:   t.Platform,
		LocationID: t.LocationID,
		LastSeenAt: t.LastSeenAt,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func toIngestResponse(run *ingestion.Run) IngestResponse {
	results := make([]IngestResultResponse, len(run.Results))
	for i, r := range run.Results {
		item := IngestResultResponse{
			LocationID:    r.LocationID,
			Status:        string(r.Status),
			ForecastID:    r.ForecastID,
			AlertsCreated: r.AlertsCreated,
		}
		if r.Message != "" {
			message := r.Message
			item.Message = &message
		}
		results[i] = item
	}
	return IngestResponse{Results: results}
}
