package httpserver

import (
	"github.com/gin-gonic/gin"

	"timeblock/internal/health"
	"timeblock/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "timeblock"
)

type healthResp struct {
	health.Report
	Service string `json:"service"`
	Version string `json:"version"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check every backing store. Responds 503 when one of them is down.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Failure 503 {object} healthResp "A dependency is down"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	srv.reportHealth(c)
}

// readyCheck handles readiness check, ready once every store answers.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} healthResp "API is ready"
// @Failure 503 {object} healthResp "A dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	srv.reportHealth(c)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func (srv HTTPServer) reportHealth(c *gin.Context) {
	resp := healthResp{
		Report:  srv.health.Check(c.Request.Context()),
		Service: ServiceName,
		Version: HealthVersion,
	}
	if !resp.Healthy() {
		response.ServiceUnavailable(c, resp)
		return
	}
	response.OK(c, resp)
}
