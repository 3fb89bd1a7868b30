package httpserver

import (
	"github.com/gin-gonic/gin"

	"smart-search-products/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Search Products Backend is running"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-search-products"
)

// healthCheck handles liveness requests.
// @Summary Health Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router / [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ok",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
