package redact

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no query", "https://example.com/run", "https://example.com/run"},
		{"no secret", "https://example.com/run?strategy=DESKTOP", "https://example.com/run?strategy=DESKTOP"},
		{"key masked", "https://example.com/run?key=abc123&url=x", "https://example.com/run?key=%2A%2A%2A&url=x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URL(tt.in); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestError_MasksURLError(t *testing.T) {
	err := &url.Error{Op: "Get", URL: "https://example.com/run?key=s3cret", Err: errors.New("dial tcp: refused")}
	got := Error(err).Error()
	if strings.Contains(got, "s3cret") {
		t.Errorf("secret leaked in %q", got)
	}
}

func TestError_PassThrough(t *testing.T) {
	err := errors.New("plain")
	if Error(err) != err {
		t.Error("non-url errors should pass through unchanged")
	}
}
