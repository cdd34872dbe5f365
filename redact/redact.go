// Package redact masks API keys carried as query parameters so outbound URLs
// can be logged and surfaced in errors without leaking secrets.
package redact

import (
	"errors"
	"net/url"
	"strings"
)

// Mask replaces every secret value.
const Mask = "***"

// sensitiveParams are query parameters whose values are always masked.
var sensitiveParams = []string{"key", "api_key", "apikey", "access_token"}

// URL masks sensitive query parameters in raw. Unparseable input is
// returned with its whole query dropped.
func URL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			return raw[:i] + "?" + Mask
		}
		return raw
	}
	if u.RawQuery == "" {
		return raw
	}
	q := u.Query()
	changed := false
	for _, p := range sensitiveParams {
		if _, ok := q[p]; ok {
			q.Set(p, Mask)
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Error masks the URL embedded in a *url.Error, which is what http.Client
// returns for transport failures. Other errors pass through unchanged.
func Error(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = URL(ue.URL)
	}
	return err
}
