package middleware

import "github.com/gin-gonic/gin"

// NoCache marks scan responses as uncacheable. Every scan is a fresh
// measurement.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
