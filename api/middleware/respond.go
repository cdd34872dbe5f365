package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/models"
)

// identityKey is the context key holding the caller's rate-limit identity.
const identityKey = "seoscan.identity"

// Responder writes the body of a rejected request. The middleware aborts the
// chain after it returns.
type Responder func(c *gin.Context, status int, body models.ErrorResponse)

// JSON rejects with a structured JSON error body.
func JSON(c *gin.Context, status int, body models.ErrorResponse) {
	c.JSON(status, body)
}

// Identity returns who a scan is charged to: the API key the caller
// authenticated with, or its client IP.
func Identity(c *gin.Context) string {
	if id := c.GetString(identityKey); id != "" {
		return id
	}
	return "ip:" + c.ClientIP()
}

func reject(c *gin.Context, deny Responder, status int, body models.ErrorResponse) {
	deny(c, status, body)
	c.Abort()
}
