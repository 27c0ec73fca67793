package api

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ingest handles POST /ingest requests. The pipeline runs synchronously and
// the per-location results are returned in location order.
func (s *HTTPServerAdapter) ingest(c *gin.Context) {
	if !s.ingestAuthorized(c) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	// the run completes even if the caller hangs up
	run, err := s.ingestionUseCase.Ingest(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		s.handleError(c, err)
		return
	}

	succeeded, failed, alerts := run.Summary()
	slog.Info("Ingestion triggered over HTTP",
		"run_id", run.ID,
		"succeeded", succeeded,
		"failed", failed,
		"alerts_created", alerts)

	c.JSON(http.StatusOK, toIngestResponse(run))
}

// ingestAuthorized checks the shared secret; an unset secret leaves the
// endpoint open.
func (s *HTTPServerAdapter) ingestAuthorized(c *gin.Context) bool {
	if s.config.IngestSecret == "" {
		return true
	}
	provided := c.GetHeader(ingestSecretHeader)
	return subtle.ConstantTimeCompare([]byte(provided), []byte(s.config.IngestSecret)) == 1
}
