// Package bootstrap wires configuration into the logger and the scanner so
// the server and the CLI start the same way.
package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/use-agent/seoscan/audit"
	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/llm"
	"github.com/use-agent/seoscan/scan"
)

// NewScanner wires the HTTP-backed providers into a scan.Scanner.
func NewScanner(cfg *config.Config, logger *slog.Logger) *scan.Scanner {
	httpClient := &http.Client{}

	auditor := audit.NewClient(httpClient, audit.Options{
		Endpoint:  cfg.Audit.Endpoint,
		Strategy:  cfg.Audit.Strategy,
		UserAgent: cfg.Audit.UserAgent,
	})
	recommender := llm.NewClient(httpClient, llm.Options{
		BaseURL:   cfg.Recommend.BaseURL,
		Model:     cfg.Recommend.Model,
		UserAgent: cfg.Audit.UserAgent,
		Generation: llm.GenerationParams{
			Temperature:     cfg.Recommend.Temperature,
			TopK:            cfg.Recommend.TopK,
			TopP:            cfg.Recommend.TopP,
			MaxOutputTokens: cfg.Recommend.MaxOutputTokens,
		},
	})

	return scan.New(auditor, recommender, scan.Config{
		AuditAPIKey:     cfg.Audit.APIKey,
		RecommendAPIKey: cfg.Recommend.APIKey,
		CallTimeout:     cfg.Scan.CallTimeout,
	}, logger)
}

// NewLogger builds a slog.Logger from the LogConfig writing to w.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}
