package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	pinger    Pinger
}

// Pinger reports whether the backing database is reachable
type Pinger interface {
	Ping() error
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(pinger Pinger) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		pinger:    pinger,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/system/info", h.Info)
}

// Health reports service and database health
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	if h.pinger != nil {
		if err := h.pinger.Ping(); err != nil {
			status = "degraded"
		}
	}
	h.Success(c, gin.H{"status": status})
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Info returns basic process information
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "Storefront Backend API",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
