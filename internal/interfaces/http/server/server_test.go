package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	ledgerapp "github.com/findash/backend/internal/application/ledger"
	marketapp "github.com/findash/backend/internal/application/market"
	reportapp "github.com/findash/backend/internal/application/report"
	"github.com/findash/backend/internal/infrastructure/cache"
	"github.com/findash/backend/internal/infrastructure/config"
	"github.com/findash/backend/internal/infrastructure/persistence/memory"
	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "findash-test", Env: "test", Port: "0"},
		HTTP: config.HTTPConfig{
			ReadTimeout:      5 * time.Second,
			WriteTimeout:     5 * time.Second,
			IdleTimeout:      5 * time.Second,
			MaxHeaderBytes:   1 << 20,
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"http://localhost:3000"},
			CORSAllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSAllowHeaders: []string{"Content-Type", "X-Request-ID"},
		},
		Telemetry: config.TelemetryConfig{ServiceName: "findash-test"},
	}
}

type testServer struct {
	engine *gin.Engine
	store  *memory.Storage
	logs   *observer.ObservedLogs
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	store, err := memory.NewSeededStorage(context.Background(), "")
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	svc := Services{
		Reports: reportapp.NewReportService(
			store.ProfitLoss(), store.BalanceSheets(), store.CashFlows(),
			reportapp.WithQueryCache(cache.NewQueryCache(time.Minute, time.Minute)),
		),
		Ledger: ledgerapp.NewLedgerService(store.PlAccounts(), store.IoMappings(), log),
		Market: marketapp.NewMarketService(store.Companies(), store.Market(), log),
	}
	engine := NewEngine(Options{Config: cfg, Logger: log, Records: store}, svc)
	return &testServer{engine: engine, store: store, logs: logs}
}

func (s *testServer) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestNewEngine_Health(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := srv.do(http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "findash-test", resp.Service)
	assert.Equal(t, Version, resp.Version)
	assert.Equal(t, 12+6, resp.Records["profit-loss"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestNewEngine_StatementRoundTrip(t *testing.T) {
	srv := newTestServer(t, testConfig())
	topic := url.QueryEscape("บริษัท ABC จำกัด")

	w := srv.do(http.MethodGet, "/api/profit-loss?topic="+topic+"&startPeriod=2024-06&endPeriod=2024-06", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	id := list[0]["id"].(string)

	w = srv.do(http.MethodPut, "/api/profit-loss/"+id, `{"totalRevenue": "5750000.50"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.do(http.MethodGet, "/api/profit-loss?topic="+topic+"&startPeriod=2024-06&endPeriod=2024-06", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "5750000.50", list[0]["totalRevenue"])
}

func TestNewEngine_RequestLogging(t *testing.T) {
	srv := newTestServer(t, testConfig())

	srv.do(http.MethodGet, "/api/companies", "", map[string]string{"X-Request-ID": "req-123"})

	entries := srv.logs.FilterField(zap.String("request_id", "req-123")).All()
	assert.NotEmpty(t, entries)
}

func TestNewEngine_UnknownRoute(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := srv.do(http.MethodGet, "/api/nope", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewEngine_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := srv.do(http.MethodOptions, "/api/companies", "", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewEngine_BodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.MaxBodySize = 16
	srv := newTestServer(t, cfg)

	w := srv.do(http.MethodPost, "/api/pl-accounts", `{"plAccount": "A very long account name"}`, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestNewEngine_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimitEnabled = true
	cfg.HTTP.RateLimitRequests = 1
	cfg.HTTP.RateLimitWindow = time.Hour
	cfg.HTTP.RateLimitBurst = 1
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, srv.do(http.MethodGet, "/api/companies", "", nil).Code)
	w := srv.do(http.MethodGet, "/api/companies", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestNewEngine_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, testConfig())
		assert.Equal(t, http.StatusNotFound, srv.do(http.MethodGet, "/swagger/doc.json", "", nil).Code)
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.HTTP.SwaggerEnabled = true
		srv := newTestServer(t, cfg)

		w := srv.do(http.MethodGet, "/swagger/doc.json", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Financial Dashboard API")
		assert.Contains(t, w.Body.String(), "/profit-loss/summary")
	})

	t.Run("whitelist", func(t *testing.T) {
		cfg := testConfig()
		cfg.HTTP.SwaggerEnabled = true
		cfg.HTTP.SwaggerAllowedIPs = []string{"10.0.0.0/8"}
		srv := newTestServer(t, cfg)

		assert.Equal(t, http.StatusForbidden, srv.do(http.MethodGet, "/swagger/doc.json", "", nil).Code)
	})
}

func TestNewEngine_SystemRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := srv.do(http.MethodGet, "/api/system/ping", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")

	w = srv.do(http.MethodGet, "/api/system/info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "findash-test")
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	h := http.NewServeMux()

	srv := NewHTTPServer(cfg, h)

	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 1<<20, srv.MaxHeaderBytes)
}
