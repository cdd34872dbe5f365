package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/use-agent/seoscan/redact"
)

// DefaultBaseURL is the Generative Language API models root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// ErrEmptyResponse is returned when a 2xx reply carries no candidate text.
var ErrEmptyResponse = errors.New("llm: response contained no candidate text")

// GenerationParams are the sampling parameters sent with every prompt.
type GenerationParams struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

// Options configure the client.
type Options struct {
	BaseURL    string // default: DefaultBaseURL
	Model      string // default: DefaultModel
	UserAgent  string
	Generation GenerationParams
}

// Client is a lightweight Gemini generateContent client.
// It uses net/http directly.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient creates a new LLM client with the given http.Client.
// Pass nil to use a default http.Client.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &Client{httpClient: httpClient, opts: opts}
}

// APIError is a non-2xx reply from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm: API returned %d: %s", e.StatusCode, e.Message)
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateResponse is the minimal generateContent response we need.
type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// apiErrorResponse captures an API error from the provider.
type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends prompt to the model and returns the first candidate's text,
// trimmed. Non-2xx replies return *APIError; a reply without text returns
// ErrEmptyResponse.
func (c *Client) Generate(ctx context.Context, prompt, apiKey string) (string, error) {
	g := c.opts.Generation
	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     g.Temperature,
			TopK:            g.TopK,
			TopP:            g.TopP,
			MaxOutputTokens: g.MaxOutputTokens,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	// Build URL: baseURL + /{model}:generateContent?key=...
	endpoint := strings.TrimRight(c.opts.BaseURL, "/") + "/" + c.opts.Model + ":generateContent?key=" + url.QueryEscape(apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", redact.Error(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", redact.Error(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read llm response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classifyError(resp.StatusCode, respBody)
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("parse llm response: %w: %w", ErrEmptyResponse, err)
	}

	if len(genResp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	cand := genResp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0].Text == nil {
		return "", ErrEmptyResponse
	}
	text := strings.TrimSpace(*cand.Content.Parts[0].Text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// classifyError extracts the provider message from an error body.
func classifyError(statusCode int, body []byte) *APIError {
	var errResp apiErrorResponse
	msg := http.StatusText(statusCode)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		msg = errResp.Error.Message
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
