package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/use-agent/seoscan/models"
)

// Auth guards a scan route with a fixed set of API keys. The key may be sent
// as X-API-Key, as Authorization: Bearer <key>, or, for the browser form, as
// the api_key form field. An empty key set rejects every request.
func Auth(apiKeys []string, deny Responder) gin.HandlerFunc {
	accepted := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			accepted[k] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		key := requestKey(c)
		if key == "" {
			reject(c, deny, http.StatusUnauthorized, models.ErrorResponse{
				Error: "An API key is required to run a scan.",
				Code:  models.ErrCodeUnauthorized,
			})
			return
		}
		if _, ok := accepted[key]; !ok {
			reject(c, deny, http.StatusUnauthorized, models.ErrorResponse{
				Error: "The API key is not recognised.",
				Code:  models.ErrCodeUnauthorized,
			})
			return
		}

		c.Set(identityKey, "key:"+key)
		c.Next()
	}
}

func requestKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if bearer, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && bearer != "" {
		return bearer
	}
	if c.ContentType() == binding.MIMEPOSTForm {
		return strings.TrimSpace(c.PostForm("api_key"))
	}
	return ""
}
