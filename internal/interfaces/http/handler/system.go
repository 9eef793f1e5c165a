package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/candicorner/inventory/internal/interfaces/http/dto"
)

// StoragePinger reports whether the backing store is reachable. Backends
// without a connection to check (memory, text file) pass nil instead.
type StoragePinger interface {
	Ping() error
}

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	storage   StoragePinger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(version string, storage StoragePinger) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startTime: time.Now(),
		storage:   storage,
	}
}

// RegisterRoutes registers system routes on the given router group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ping", h.Ping)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	Storage   string `json:"storage"`
}

// Health reports service liveness and storage reachability. A failing
// storage ping degrades the response to 503.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "ok",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Storage:   "ok",
	}

	if h.storage != nil {
		if err := h.storage.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Storage = "unreachable"
			c.JSON(http.StatusServiceUnavailable, dto.NewPartialResponse(
				resp, dto.ErrCodeStorageFailure, "storage ping failed", getRequestID(c)))
			return
		}
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping is a minimal liveness probe
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}))
}
