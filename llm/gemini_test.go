package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/use-agent/seoscan/extract"
)

func TestGenerate_RequestShape(t *testing.T) {
	var got generateRequest
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  - shorten the title\n"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), Options{
		BaseURL: srv.URL + "/v1beta/models",
		Model:   "test-model",
		Generation: GenerationParams{
			Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024,
		},
	})

	text, err := c.Generate(context.Background(), "hello", "gk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "- shorten the title" {
		t.Errorf("text = %q", text)
	}
	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "gk" {
		t.Errorf("key = %q", gotKey)
	}
	if len(got.Contents) != 1 || len(got.Contents[0].Parts) != 1 || got.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("contents = %+v", got.Contents)
	}
	if got.GenerationConfig.TopK != 40 || got.GenerationConfig.MaxOutputTokens != 1024 {
		t.Errorf("generation config = %+v", got.GenerationConfig)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantEmpty bool
		wantAPI   int
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"internal"}}`, false, 500},
		{"forbidden", http.StatusForbidden, ``, false, 403},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, true, 0},
		{"no parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]}}]}`, true, 0},
		{"blank text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`, true, 0},
		{"malformed", http.StatusOK, `{"candidates":`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.Client(), Options{BaseURL: srv.URL})
			_, err := c.Generate(context.Background(), "p", "k")
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyResponse) {
				t.Errorf("expected ErrEmptyResponse, got %v", err)
			}
			if tt.wantAPI != 0 {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || apiErr.StatusCode != tt.wantAPI {
					t.Errorf("expected APIError %d, got %v", tt.wantAPI, err)
				}
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("https://example.com", extract.Fields{
		Title: "Example Domain", Meta: extract.NoMeta, H1: "Example", PerformanceScore: 87, SEOScore: 100,
	})
	for _, want := range []string{
		"https://example.com",
		"**Title Tag:** Example Domain",
		"**Meta Description:** " + extract.NoMeta,
		"**H1 Heading:** Example",
		"**Lighthouse Performance Score:** 87/100",
		"**Lighthouse SEO Score:** 100/100",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
