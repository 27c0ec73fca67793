package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"floodwatch.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// listLocations handles GET /locations requests
func (s *HTTPServerAdapter) listLocations(c *gin.Context) {
	locations, err := s.locationUseCase.List(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]LocationResponse, len(locations))
	for i, l := range locations {
		response[i] = toLocationResponse(l)
	}
	c.JSON(http.StatusOK, response)
}

// latestForecast handles GET /locations/:id/forecast requests
func (s *HTTPServerAdapter) latestForecast(c *gin.Context) {
	locationID, err := locationIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("Getting latest forecast", "location_id", locationID)

	snapshot, err := s.forecastUseCase.Latest(c.Request.Context(), locationID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toForecastResponse(snapshot))
}

// activeAlerts handles GET /locations/:id/alerts requests
func (s *HTTPServerAdapter) activeAlerts(c *gin.Context) {
	locationID, err := locationIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	alerts, err := s.alertUseCase.ListActive(c.Request.Context(), locationID)
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		response[i] = toAlertResponse(a)
	}
	c.JSON(http.StatusOK, response)
}

// locationIDParam reads the :id path segment; anything that is not a positive
// integer cannot name a location.
func locationIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("Location not found")
	}
	return uint(id), nil
}
