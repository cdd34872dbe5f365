// Package audit is a minimal client for the PageSpeed Insights v5 API, which
// runs Lighthouse remotely and returns category scores plus audits.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/use-agent/seoscan/models"
	"github.com/use-agent/seoscan/redact"
)

// DefaultEndpoint is the public runPagespeed endpoint.
const DefaultEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Options configure the client.
type Options struct {
	Endpoint  string // default: DefaultEndpoint
	Strategy  string // default: "DESKTOP"
	UserAgent string
}

// Client calls the PageSpeed API over net/http.
type Client struct {
	httpClient *http.Client
	opts       Options
}

// NewClient creates a new audit client. Pass nil to use a default http.Client.
func NewClient(httpClient *http.Client, opts Options) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Strategy == "" {
		opts.Strategy = "DESKTOP"
	}
	return &Client{httpClient: httpClient, opts: opts}
}

// Audit runs one Lighthouse analysis of targetURL for the performance and SEO
// categories. Failures are returned as *models.ScanError: transport problems
// as network errors, non-2xx statuses and unusable payloads as provider errors.
func (c *Client) Audit(ctx context.Context, targetURL, apiKey string) (*Report, error) {
	params := url.Values{}
	params.Set("url", targetURL)
	params.Set("key", apiKey)
	params.Add("category", "PERFORMANCE")
	params.Add("category", "SEO")
	params.Set("strategy", c.opts.Strategy)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("audit: create request: %w", redact.Error(err))
	}
	req.Header.Set("Accept", "application/json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewNetworkError(redact.Error(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32*1024*1024))
	if err != nil {
		return nil, models.NewNetworkError(redact.Error(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, Classify(resp.StatusCode, body)
	}

	var psResp Response
	if err := json.Unmarshal(body, &psResp); err != nil {
		se := models.NewProviderError(models.ErrCodeAuditFailed,
			"Failed to analyze the website: unreadable response from the analysis service", err.Error())
		se.Err = err
		return nil, se
	}
	if psResp.LighthouseResult == nil {
		return nil, models.NewProviderError(models.ErrCodeAuditNoResults, models.MsgAuditNoResults, "")
	}
	return psResp.LighthouseResult, nil
}
