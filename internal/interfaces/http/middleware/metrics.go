// Package middleware provides HTTP middleware for the dashboard API.
package middleware

import (
	"github.com/findash/backend/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// HTTPMetrics records request count, latency and in-flight requests.
// Routes are labelled by their pattern so that path parameters do not
// explode cardinality. A nil ServiceMetrics turns this into a pass-through.
func HTTPMetrics(sm *telemetry.ServiceMetrics) gin.HandlerFunc {
	if sm == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		done := sm.RequestStarted(c.Request.Context())
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
