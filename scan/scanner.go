// Package scan runs the scan pipeline: validate the URL, fetch a Lighthouse
// audit, extract the SEO fields, ask for recommendations and assemble the
// result. Calls are strictly sequential and nothing is shared between scans.
package scan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/use-agent/seoscan/audit"
	"github.com/use-agent/seoscan/extract"
	"github.com/use-agent/seoscan/llm"
	"github.com/use-agent/seoscan/models"
)

// Environment names of the two secrets, used in configuration errors.
const (
	AuditKeyName     = "PAGESPEED_API_KEY"
	RecommendKeyName = "GEMINI_API_KEY"
)

// DefaultCallTimeout bounds each outbound call when Config.CallTimeout is 0.
const DefaultCallTimeout = 30 * time.Second

// AuditProvider runs a remote Lighthouse analysis.
type AuditProvider interface {
	Audit(ctx context.Context, targetURL, apiKey string) (*audit.Report, error)
}

// Recommender turns a prompt into advisory text.
type Recommender interface {
	Generate(ctx context.Context, prompt, apiKey string) (string, error)
}

// Config carries the secrets and limits of a Scanner.
type Config struct {
	AuditAPIKey     string
	RecommendAPIKey string
	CallTimeout     time.Duration
}

// Scanner orchestrates one scan per Scan call. It holds no per-scan state
// and is safe for concurrent use.
type Scanner struct {
	auditor     AuditProvider
	recommender Recommender
	cfg         Config
	logger      *slog.Logger
}

// New creates a Scanner. A nil logger uses slog.Default().
func New(auditor AuditProvider, recommender Recommender, cfg Config, logger *slog.Logger) *Scanner {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{auditor: auditor, recommender: recommender, cfg: cfg, logger: logger}
}

// Scan audits rawURL and returns the assembled result. Errors are always
// *models.ScanError; no partial result is returned alongside an error.
func (s *Scanner) Scan(ctx context.Context, rawURL string) (*models.ScanResult, error) {
	start := time.Now()

	// ── 1. Validate ─────────────────────────────────────────────────
	target, err := Validate(rawURL)
	if err != nil {
		return nil, err
	}

	// ── 2. Audit credentials ────────────────────────────────────────
	if s.cfg.AuditAPIKey == "" {
		return nil, models.NewConfigurationError(AuditKeyName)
	}

	// ── 3. Audit ────────────────────────────────────────────────────
	auditStart := time.Now()
	report, err := s.runAudit(ctx, target)
	if err != nil {
		s.logger.Warn("audit failed", "url", target, "error", err)
		return nil, err
	}
	auditMs := time.Since(auditStart).Milliseconds()

	// ── 4. Extract ──────────────────────────────────────────────────
	fields := extract.Extract(report)

	// ── 5. Recommendations ──────────────────────────────────────────
	if s.cfg.RecommendAPIKey == "" {
		return nil, models.NewConfigurationError(RecommendKeyName)
	}
	recStart := time.Now()
	suggestions := s.recommend(ctx, target, fields)

	s.logger.Info("scan completed",
		"url", target,
		"performance", fields.PerformanceScore,
		"seo_score", fields.SEOScore,
		"audit_ms", auditMs,
		"recommend_ms", time.Since(recStart).Milliseconds(),
		"total_ms", time.Since(start).Milliseconds(),
	)

	// ── 6. Assemble ─────────────────────────────────────────────────
	return &models.ScanResult{
		Title:         fields.Title,
		Meta:          fields.Meta,
		H1:            fields.H1,
		Performance:   fields.PerformanceScore,
		SEOScore:      fields.SEOScore,
		AISuggestions: suggestions,
	}, nil
}

func (s *Scanner) runAudit(ctx context.Context, target string) (*audit.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	report, err := s.auditor.Audit(ctx, target, s.cfg.AuditAPIKey)
	if err != nil {
		var se *models.ScanError
		if errors.As(err, &se) {
			return nil, se
		}
		return nil, models.NewNetworkError(err)
	}
	if report == nil {
		return nil, models.NewProviderError(models.ErrCodeAuditNoResults, models.MsgAuditNoResults, "")
	}
	return report, nil
}

// recommend never fails: provider problems degrade to a fallback text so the
// measured data is always delivered.
func (s *Scanner) recommend(ctx context.Context, target string, fields extract.Fields) string {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	text, err := s.recommender.Generate(ctx, llm.BuildPrompt(target, fields), s.cfg.RecommendAPIKey)
	if err == nil {
		return text
	}

	s.logger.Warn("recommendations unavailable", "url", target, "error", err)
	if errors.Is(err, llm.ErrEmptyResponse) {
		return llm.FallbackNotGenerated
	}
	return llm.FallbackUnavailable
}
