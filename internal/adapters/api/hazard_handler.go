package api

import (
	"net/http"

	"log/slog"

	"floodwatch.app/internal/core/report"
	"github.com/gin-gonic/gin"
)

// listHazards handles GET /hazards requests
func (s *HTTPServerAdapter) listHazards(c *gin.Context) {
	var query HazardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	reports, err := s.reportUseCase.List(c.Request.Context(), report.ListParams{
		LocationID: query.LocationID,
		Limit:      query.Limit,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportListResponse(reports))
}

// locationHazards handles GET /locations/:id/hazards requests
func (s *HTTPServerAdapter) locationHazards(c *gin.Context) {
	locationID, err := locationIDParam(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	var query HazardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	reports, err := s.reportUseCase.ListForLocation(c.Request.Context(), locationID, query.Limit)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReportListResponse(reports))
}

// createHazard handles POST /hazards; the response embeds the location
func (s *HTTPServerAdapter) createHazard(c *gin.Context) {
	s.storeReport(c, true)
}

// createReport handles POST /reports
func (s *HTTPServerAdapter) createReport(c *gin.Context) {
	s.storeReport(c, false)
}

func (s *HTTPServerAdapter) storeReport(c *gin.Context, withLocation bool) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid report request", "error", err)
		s.handleError(c, bindingError(err))
		return
	}

	created, err := s.reportUseCase.Create(c.Request.Context(), report.CreateParams{
		LocationID: req.LocationID,
		Type:       req.Type,
		Severity:   req.Severity,
		Note:       req.Note,
		PhotoURL:   req.PhotoURL,
		ReportedAt: req.ReportedAt,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReportResponse(created, withLocation))
}

func toReportListResponse(reports []*report.Report) []ReportResponse {
	response := make([]ReportResponse, len(reports))
	for i, r := range reports {
		response[i] = toReportResponse(r, true)
	}
	return response
}
