package models

// ScanResult is the response for a successful POST /scan.
type ScanResult struct {
	// Title is the document title, or a "not found" sentinel.
	Title string `json:"title"`

	// Meta is the meta description, or a "not found" sentinel.
	Meta string `json:"meta"`

	// H1 is the first heading text, or a "not found" sentinel.
	H1 string `json:"h1"`

	// Performance is the Lighthouse performance score scaled to 0-100.
	Performance int `json:"performance"`

	// SEOScore is the Lighthouse SEO score scaled to 0-100.
	SEOScore int `json:"seo_score"`

	// AISuggestions is generated advice, or a fixed fallback message when the
	// recommendation provider was unavailable.
	AISuggestions string `json:"ai_suggestions"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status              string `json:"status"` // "healthy" or "degraded"
	Uptime              string `json:"uptime"`
	Version             string `json:"version"`
	AuditConfigured     bool   `json:"audit_configured"`
	RecommendConfigured bool   `json:"recommend_configured"`
}

// ScoreBand buckets a 0-100 score the way the report page colours it.
type ScoreBand string

const (
	BandGood    ScoreBand = "good"
	BandAverage ScoreBand = "average"
	BandPoor    ScoreBand = "poor"
)

// BandFor returns the band for score.
func BandFor(score int) ScoreBand {
	switch {
	case score >= 90:
		return BandGood
	case score >= 50:
		return BandAverage
	default:
		return BandPoor
	}
}

// Summary is the one-line verdict shown under a score.
func (b ScoreBand) Summary() string {
	switch b {
	case BandGood:
		return "Excellent performance"
	case BandAverage:
		return "Good performance, room for improvement"
	default:
		return "Needs significant improvement"
	}
}
