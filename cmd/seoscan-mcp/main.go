package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// scanRequest mirrors the seoscan API request model.
type scanRequest struct {
	URL string `json:"url"`
}

// scanResponse mirrors the seoscan API success and error bodies.
type scanResponse struct {
	Title         string `json:"title"`
	Meta          string `json:"meta"`
	H1            string `json:"h1"`
	Performance   int    `json:"performance"`
	SEOScore      int    `json:"seo_score"`
	AISuggestions string `json:"ai_suggestions"`

	Error string `json:"error"`
	Code  string `json:"code"`
}

func main() {
	apiURL := os.Getenv("SEOSCAN_API_URL")
	if apiURL == "" {
		apiURL = "http://127.0.0.1:8080"
	}
	// Optional: only needed when the server runs with SEOSCAN_AUTH_ENABLED.
	apiKey := os.Getenv("SEOSCAN_API_KEY")

	s := server.NewMCPServer(
		"seoscan",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	scanURLTool := mcp.NewTool("scan_url",
		mcp.WithDescription("Audit a web page with Lighthouse (PageSpeed Insights) and return its title, meta description, first heading, performance and SEO scores, plus AI-generated improvement suggestions."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Absolute URL of the page to scan, including the scheme (e.g. https://example.com)"),
		),
	)
	s.AddTool(scanURLTool, handleScanURL(apiURL, apiKey))

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func handleScanURL(apiURL, apiKey string) server.ToolHandlerFunc {
	// Two sequential provider calls of up to 30s each.
	client := &http.Client{Timeout: 90 * time.Second}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError("url is required"), nil
		}

		body, err := json.Marshal(scanRequest{URL: url})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal request: %v", err)), nil
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(apiURL, "/")+"/scan", bytes.NewReader(body))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create request: %v", err)), nil
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if apiKey != "" {
			httpReq.Header.Set("X-API-Key", apiKey)
		}

		resp, err := client.Do(httpReq)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("API request failed: %v", err)), nil
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read response: %v", err)), nil
		}

		var scanResp scanResponse
		if err := json.Unmarshal(respBody, &scanResp); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse response: %v", err)), nil
		}

		if resp.StatusCode != http.StatusOK {
			return mcp.NewToolResultError(formatError(resp.StatusCode, &scanResp)), nil
		}
		return mcp.NewToolResultText(formatResult(url, &scanResp)), nil
	}
}

// formatError renders a non-200 API reply.
func formatError(status int, r *scanResponse) string {
	msg := r.Error
	if msg == "" {
		msg = http.StatusText(status)
	}
	if r.Code != "" {
		return fmt.Sprintf("[%s] %s", r.Code, msg)
	}
	return msg
}

// formatResult renders a scan as plain text for the model.
func formatResult(url string, r *scanResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SEO report for %s\n\n", url)
	fmt.Fprintf(&b, "Title: %s\n", r.Title)
	fmt.Fprintf(&b, "Meta description: %s\n", r.Meta)
	fmt.Fprintf(&b, "H1: %s\n", r.H1)
	fmt.Fprintf(&b, "Performance score: %d/100\n", r.Performance)
	fmt.Fprintf(&b, "SEO score: %d/100\n\n", r.SEOScore)
	b.WriteString("Suggestions:\n")
	b.WriteString(r.AISuggestions)
	return b.String()
}
