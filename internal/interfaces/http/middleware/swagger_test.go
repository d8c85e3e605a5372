package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveSwagger(t *testing.T, cfg SwaggerConfig, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection_Disabled(t *testing.T) {
	w := serveSwagger(t, SwaggerConfig{Enabled: false}, "127.0.0.1:1234")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "API documentation is not available", body.Message)
}

func TestSwaggerProtection_NoWhitelist(t *testing.T) {
	w := serveSwagger(t, SwaggerConfig{Enabled: true}, "203.0.113.9:1234")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "docs", w.Body.String())
}

func TestSwaggerProtection_Whitelist(t *testing.T) {
	cfg := SwaggerConfig{
		Enabled:    true,
		AllowedIPs: []string{"127.0.0.1", "10.0.0.0/8", "::1", "not-an-ip"},
	}

	tests := []struct {
		name       string
		remoteAddr string
		wantStatus int
	}{
		{"exact IPv4", "127.0.0.1:5000", http.StatusOK},
		{"inside CIDR", "10.20.30.40:5000", http.StatusOK},
		{"IPv6 loopback", "[::1]:5000", http.StatusOK},
		{"outside CIDR", "192.168.1.10:5000", http.StatusForbidden},
		{"public address", "203.0.113.9:5000", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveSwagger(t, cfg, tt.remoteAddr)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestIsIPAllowed(t *testing.T) {
	prefixes := parseAllowList([]string{"192.168.0.0/16", " 8.8.8.8 ", "bogus/99"})
	require.Len(t, prefixes, 2)

	assert.True(t, isIPAllowed("192.168.4.4", prefixes))
	assert.True(t, isIPAllowed("8.8.8.8", prefixes))
	assert.True(t, isIPAllowed("::ffff:8.8.8.8", prefixes))
	assert.False(t, isIPAllowed("8.8.4.4", prefixes))
	assert.False(t, isIPAllowed("", prefixes))
}
