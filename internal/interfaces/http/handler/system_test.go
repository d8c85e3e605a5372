package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounts map[string]int

func (f fixedCounts) Counts(context.Context) map[string]int { return f }

func TestSystemHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[dto.HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "findash-test", resp.Service)
	assert.Equal(t, env.store.Counts(context.Background()), resp.Records)
}

func TestSystemHandler_HealthWithoutCounter(t *testing.T) {
	h := NewSystemHandler("svc", "1.0.0", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, string(mustField(t, w, "records")))
}

func TestSystemHandler_InfoAndPing(t *testing.T) {
	h := NewSystemHandler("svc", "1.2.3", fixedCounts{"companies": 1})
	router := gin.New()
	router.GET("/info", h.GetSystemInfo)
	router.GET("/ping", h.Ping)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	info := decodeJSON[SystemInfoResponse](t, w)
	assert.Equal(t, "svc", info.Name)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeJSON[PingResponse](t, w).Message)
}

func mustField(t *testing.T, w *httptest.ResponseRecorder, name string) []byte {
	t.Helper()
	fields := decodeJSON[map[string]json.RawMessage](t, w)
	raw, ok := fields[name]
	require.True(t, ok, "missing field %q", name)
	return raw
}
