package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"floodwatch.app/internal/adapters/infrastructure"
	"floodwatch.app/internal/core/alert"
	"floodwatch.app/internal/core/device"
	"floodwatch.app/internal/core/forecast"
	"floodwatch.app/internal/core/ingestion"
	"floodwatch.app/internal/core/location"
	"floodwatch.app/internal/core/report"
	"floodwatch.app/internal/mocks"
	"floodwatch.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

type stubIngestion struct {
	run    *ingestion.Run
	err    error
	calls  int
	ctxErr error
}

func (s *stubIngestion) Ingest(ctx context.Context) (*ingestion.Run, error) {
	s.calls++
	s.ctxErr = ctx.Err()
	return s.run, s.err
}

type stubHealth struct {
	statuses map[string]ports.HealthStatus
}

func (s *stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.statuses
}

type stubMetrics struct {
	metrics map[string]interface{}
	err     error
}

func (s *stubMetrics) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

type testHarness struct {
	server    *HTTPServerAdapter
	locations *mocks.LocationRepository
	forecasts *mocks.ForecastRepository
	cache     *mocks.ForecastCache
	alerts    *mocks.AlertRepository
	reports   *mocks.ReportRepository
	tokens    *mocks.DeviceTokenRepository
	config    *mocks.ConfigProvider
	ingestion *stubIngestion
	health    *stubHealth
	metrics   *stubMetrics
	clock     *clockwork.FakeClock
}

func newTestHarness(t *testing.T, serverConfig ServerConfig) *testHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	h := &testHarness{
		locations: mocks.NewLocationRepository(t),
		forecasts: mocks.NewForecastRepository(t),
		cache:     mocks.NewForecastCache(t),
		alerts:    mocks.NewAlertRepository(t),
		reports:   mocks.NewReportRepository(t),
		tokens:    mocks.NewDeviceTokenRepository(t),
		config:    mocks.NewConfigProvider(t),
		ingestion: &stubIngestion{},
		health:    &stubHealth{statuses: map[string]ports.HealthStatus{}},
		metrics:   &stubMetrics{metrics: map[string]interface{}{}},
		clock:     clockwork.NewFakeClockAt(testNow),
	}

	h.config.EXPECT().GetForecastConfig().Return(ports.ForecastConfig{EnableCache: false}).Maybe()

	locationUC, err := location.NewUseCase(location.UseCaseDependencies{
		LocationRepo: h.locations,
		Logger:       logger,
	})
	require.NoError(t, err)

	forecastUC, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		ForecastRepo: h.forecasts,
		LocationRepo: h.locations,
		Cache:        h.cache,
		Config:       h.config,
		Logger:       logger,
	})
	require.NoError(t, err)

	alertUC, err := alert.NewUseCase(alert.UseCaseDependencies{
		AlertRepo:    h.alerts,
		LocationRepo: h.locations,
		Publisher:    mocks.NewAlertPublisher(t),
		Logger:       logger,
		Clock:        h.clock,
	})
	require.NoError(t, err)

	reportUC, err := report.NewUseCase(report.UseCaseDependencies{
		ReportRepo:   h.reports,
		LocationRepo: h.locations,
		Logger:       logger,
		Clock:        h.clock,
	})
	require.NoError(t, err)

	deviceUC, err := device.NewUseCase(device.UseCaseDependencies{
		TokenRepo:    h.tokens,
		LocationRepo: h.locations,
		Logger:       logger,
		Clock:        h.clock,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           serverConfig,
		LocationUseCase:  locationUC,
		ForecastUseCase:  forecastUC,
		AlertUseCase:     alertUC,
		ReportUseCase:    reportUC,
		DeviceUseCase:    deviceUC,
		IngestionUseCase: h.ingestion,
		MetricsCollector: h.metrics,
		HealthChecker:    h.health,
	})
	require.NoError(t, err)
	h.server = server

	return h
}

func (h *testHarness) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			payload, _ := json.Marshal(b)
			reader = bytes.NewBuffer(payload)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.server.GetRouter().ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Message
}

func TestServerOptions_Validate(t *testing.T) {
	opts := ServerOptions{}
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "location use case is required")

	_, err = NewHTTPServerAdapter(ServerOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server options")
}

func TestServer_Health(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})

	for _, path := range []string{"/health", "/api/health"} {
		w := h.do(http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	}
}

func TestServer_HealthDetails(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})

	h.health.statuses = map[string]ports.HealthStatus{
		"database":        {Component: "database", Status: "healthy"},
		"weatherProvider": {Component: "weatherProvider", Status: "degraded", Error: "OpenWeather API key missing."},
	}
	w := h.do(http.MethodGet, "/health/details", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status     string                        `json:"status"`
		Components map[string]ports.HealthStatus `json:"components"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Len(t, body.Components, 2)

	h.health.statuses["database"] = ports.HealthStatus{Component: "database", Status: "unhealthy"}
	w = h.do(http.MethodGet, "/api/health/details", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body.Status)
}

func TestServer_Metrics(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})
	h.metrics.metrics = map[string]interface{}{"provider": map[string]interface{}{"name": "openweather"}}

	w := h.do(http.MethodGet, "/api/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openweather")

	w = h.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestServer_CORS(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})

	w := h.do(http.MethodOptions, "/api/hazards", nil, map[string]string{
		"Origin":                        "http://localhost:8081",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET,POST,OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "x-ingest-secret")

	w = h.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RequestID(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})

	w := h.do(http.MethodGet, "/health", nil, nil)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = h.do(http.MethodGet, "/health", nil, map[string]string{requestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestServer_UnknownRoute(t *testing.T) {
	h := newTestHarness(t, ServerConfig{})

	w := h.do(http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decodeMessage(t, w))
}
