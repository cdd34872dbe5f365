package scan

import (
	"net/url"
	"strings"

	"github.com/use-agent/seoscan/models"
)

// Validate checks that raw is an absolute http(s) URL with a host and returns
// it trimmed. It never touches the network.
func Validate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", models.NewValidationError(models.MsgURLRequired)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || u.Hostname() == "" {
		return "", models.NewValidationError(models.MsgURLInvalid)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", models.NewValidationError(models.MsgURLInvalid)
	}
	return raw, nil
}
