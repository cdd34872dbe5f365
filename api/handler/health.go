package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/models"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// ProviderStatus reports which provider secrets are present.
type ProviderStatus struct {
	AuditConfigured     bool
	RecommendConfigured bool
}

// Health returns a handler for GET /health.
//
// Reports "degraded" when either provider key is missing, since scans would
// then fail with a configuration error.
func Health(ps ProviderStatus, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		if !ps.AuditConfigured || !ps.RecommendConfigured {
			status = "degraded"
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:              status,
			Uptime:              time.Since(startTime).Round(time.Second).String(),
			Version:             Version,
			AuditConfigured:     ps.AuditConfigured,
			RecommendConfigured: ps.RecommendConfigured,
		})
	}
}
