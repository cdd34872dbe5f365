package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/models"
)

func init() { gin.SetMode(gin.TestMode) }

func TestAuth_KeySources(t *testing.T) {
	tests := []struct {
		name        string
		header      [2]string
		form        url.Values
		wantStatus  int
		wantIdentity string
	}{
		{"no key", [2]string{}, nil, http.StatusUnauthorized, ""},
		{"wrong header key", [2]string{"X-API-Key", "nope"}, nil, http.StatusUnauthorized, ""},
		{"x-api-key", [2]string{"X-API-Key", "secret"}, nil, http.StatusOK, "key:secret"},
		{"bearer", [2]string{"Authorization", "Bearer secret"}, nil, http.StatusOK, "key:secret"},
		{"empty bearer", [2]string{"Authorization", "Bearer "}, nil, http.StatusUnauthorized, ""},
		{"form field", [2]string{}, url.Values{"api_key": {"secret"}}, http.StatusOK, "key:secret"},
		{"wrong form field", [2]string{}, url.Values{"api_key": {"guess"}}, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/", Auth([]string{"secret", ""}, JSON), func(c *gin.Context) {
				c.String(http.StatusOK, Identity(c))
			})

			var req *http.Request
			if tt.form != nil {
				req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"api_key":"secret"}`))
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.header[0] != "" {
				req.Header.Set(tt.header[0], tt.header[1])
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if got := w.Body.String(); got != tt.wantIdentity {
					t.Errorf("identity = %q, want %q", got, tt.wantIdentity)
				}
				return
			}
			var body models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Code != models.ErrCodeUnauthorized {
				t.Errorf("body = %s", w.Body.String())
			}
		})
	}
}

func TestAuth_EmptyKeySetRejects(t *testing.T) {
	r := gin.New()
	r.POST("/", Auth(nil, JSON), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-API-Key", "anything")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestScanLimiter_Allow(t *testing.T) {
	l := NewScanLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})
	now := time.Unix(1_700_000_000, 0)

	for i, want := range []bool{true, true, false} {
		if got := l.Allow("key:a", now); got != want {
			t.Errorf("key:a call %d: Allow = %v, want %v", i, got, want)
		}
	}
	if !l.Allow("key:b", now) {
		t.Error("key:b should have its own bucket")
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestScanLimiter_EvictsIdleBuckets(t *testing.T) {
	l := NewScanLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	t0 := time.Unix(1_700_000_000, 0)

	l.Allow("old", t0)
	l.Allow("fresh", t0.Add(2*time.Hour))
	l.evictBefore(t0.Add(time.Hour))

	if l.Len() != 1 {
		t.Fatalf("Len = %d, want 1", l.Len())
	}
	l.mu.Lock()
	_, ok := l.buckets["fresh"]
	l.mu.Unlock()
	if !ok {
		t.Error("recently used bucket was evicted")
	}
}

func TestScanLimiter_RunStopsOnCancel(t *testing.T) {
	l := NewScanLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Run(ctx, time.Millisecond, time.Hour)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestScanLimiter_MiddlewareUsesResponder(t *testing.T) {
	l := NewScanLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	var denied models.ErrorResponse
	deny := func(c *gin.Context, status int, body models.ErrorResponse) {
		denied = body
		c.String(status, "denied")
	}

	handlerRuns := 0
	r := gin.New()
	r.GET("/", l.Middleware(deny), func(c *gin.Context) {
		handlerRuns++
		c.Status(http.StatusOK)
	})

	for i, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != want {
			t.Errorf("request %d: status = %d, want %d", i, w.Code, want)
		}
	}
	if handlerRuns != 1 {
		t.Errorf("handler ran %d times, want 1", handlerRuns)
	}
	if denied.Code != models.ErrCodeRateLimited {
		t.Errorf("denied code = %q", denied.Code)
	}
}
