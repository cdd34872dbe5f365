package audit

import (
	"encoding/json"
	"net/http"

	"github.com/use-agent/seoscan/models"
)

// apiErrorResponse captures a Google API error body.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Classify maps a non-2xx PageSpeed status code to a provider error with a
// fixed user-facing message. No status is retried; the caller resubmits.
func Classify(statusCode int, body []byte) *models.ScanError {
	providerMsg := ""
	var errResp apiErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		providerMsg = errResp.Error.Message
	}

	switch statusCode {
	case http.StatusBadRequest:
		return models.NewProviderError(models.ErrCodeAuditInvalidURL, models.MsgAuditInvalidURL, providerMsg)
	case http.StatusForbidden:
		return models.NewProviderError(models.ErrCodeAuditQuota, models.MsgAuditQuota, providerMsg)
	case http.StatusTooManyRequests:
		return models.NewProviderError(models.ErrCodeAuditRateLimit, models.MsgAuditRateLimit, providerMsg)
	default:
		reason := providerMsg
		if reason == "" {
			reason = http.StatusText(statusCode)
		}
		if reason == "" {
			reason = "unexpected status"
		}
		return models.NewProviderError(models.ErrCodeAuditFailed, "Failed to analyze the website: "+reason, providerMsg)
	}
}
