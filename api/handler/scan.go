package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/models"
)

// Scanner runs one scan. *scan.Scanner satisfies it.
type Scanner interface {
	Scan(ctx context.Context, rawURL string) (*models.ScanResult, error)
}

// Scan returns a handler for POST /scan.
//
// Orchestration flow:
//  1. Parse {"url": ...}; a missing or unreadable body is a 400.
//  2. Scanner.Scan → validate, audit, extract, recommend.
//  3. 200 with the ScanResult, or the mapped error status.
func Scan(sc Scanner) gin.HandlerFunc {
	return func(c *gin.Context) {
		// ── 1. Parse request ────────────────────────────────────────
		var req models.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   models.MsgURLRequired,
				Code:    models.ErrCodeInvalidInput,
				Details: err.Error(),
			})
			return
		}

		// ── 2. Scan ─────────────────────────────────────────────────
		result, err := sc.Scan(c.Request.Context(), req.URL)
		if err != nil {
			respondError(c, err)
			return
		}

		// ── 3. Respond ──────────────────────────────────────────────
		c.JSON(http.StatusOK, result)
	}
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
			Error: "Method not allowed",
			Code:  models.ErrCodeInvalidInput,
		})
	}
}

// respondError maps a ScanError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error) {
	scanErr := models.AsScanError(err)
	c.JSON(mapErrorToStatus(scanErr), scanErr.ToResponse())
}

// mapErrorToStatus translates error kinds to HTTP status codes. Only bad
// input is the caller's fault; everything else is a 500.
func mapErrorToStatus(e *models.ScanError) int {
	switch e.Kind {
	case models.KindValidation:
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
