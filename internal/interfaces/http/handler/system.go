package handler

import (
	"context"
	"runtime"
	"time"

	"github.com/findash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RecordCounter reports how many records each resource holds
type RecordCounter interface {
	Counts(ctx context.Context) map[string]int
}

// SystemHandler handles liveness and service information endpoints
type SystemHandler struct {
	BaseHandler
	serviceName string
	version     string
	records     RecordCounter
	startTime   time.Time
}

// NewSystemHandler creates a new SystemHandler. records may be nil.
func NewSystemHandler(serviceName, version string, records RecordCounter) *SystemHandler {
	return &SystemHandler{
		serviceName: serviceName,
		version:     version,
		records:     records,
		startTime:   time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"findash-backend"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"goVersion" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

func (h *SystemHandler) uptime() string {
	return time.Since(h.startTime).Round(time.Second).String()
}

// Health godoc
//
//	@ID				health
//	@Summary		Liveness check
//	@Description	Reports the service status and the number of stored records per resource
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	dto.HealthResponse
//	@Router			/health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	records := map[string]int{}
	if h.records != nil {
		records = h.records.Counts(c.Request.Context())
	}
	h.Success(c, dto.HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.version,
		Uptime:  h.uptime(),
		Records: records,
	})
}

// GetSystemInfo godoc
//
//	@ID			getSystemInfo
//	@Summary	Get system information
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	SystemInfoResponse
//	@Router		/system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      h.serviceName,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    h.uptime(),
	})
}

// Ping godoc
//
//	@ID			pingSystem
//	@Summary	Ping the API
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	PingResponse
//	@Router		/system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
