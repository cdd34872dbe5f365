// Package extract maps a Lighthouse report into the fixed set of SEO fields
// the scan result carries. It never fails: every field has a default.
package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/use-agent/seoscan/audit"
)

// Sentinels returned when a field was checked and found absent.
const (
	NoTitle = "No title found"
	NoMeta  = "No meta description found"
	NoH1    = "No H1 heading found"
)

// Fields are the values pulled out of one report.
type Fields struct {
	Title            string
	Meta             string
	H1               string
	PerformanceScore int
	SEOScore         int
}

// innerText matches the text between the first '>' and the next '<'.
var innerText = regexp.MustCompile(`>([^<]*)<`)

// Extract resolves every field of r, applying sentinels and zero scores for
// missing nodes. A nil report yields all defaults.
func Extract(r *audit.Report) Fields {
	f := Fields{Title: NoTitle, Meta: NoMeta, H1: NoH1}
	if r == nil {
		return f
	}

	if item, ok := r.FirstItem(audit.AuditDocumentTitle); ok && item.Title != nil {
		if v := strings.TrimSpace(*item.Title); v != "" {
			f.Title = v
		}
	}
	if item, ok := r.FirstItem(audit.AuditMetaDescription); ok && item.Description != nil {
		if v := strings.TrimSpace(*item.Description); v != "" {
			f.Meta = v
		}
	}
	if item, ok := r.FirstItem(audit.AuditHeadingOrder); ok && item.Node != nil && item.Node.Snippet != nil {
		if v := HeadingText(*item.Node.Snippet); v != "" {
			f.H1 = v
		}
	}

	f.PerformanceScore = categoryScore(r.Categories.Performance)
	f.SEOScore = categoryScore(r.Categories.SEO)
	return f
}

// HeadingText returns the trimmed text between the first '>' and the
// following '<' of an HTML fragment, or "" when there is none.
//
// This is a best-effort heuristic, not markup parsing: a heading whose text
// sits inside nested elements, such as <h1><span>Text</span></h1>, yields "".
func HeadingText(snippet string) string {
	m := innerText.FindStringSubmatch(snippet)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func categoryScore(c *audit.Category) int {
	if c == nil || c.Score == nil {
		return 0
	}
	return Scale(*c.Score)
}

// Scale converts a Lighthouse fraction into a 0-100 integer, rounding half
// up in decimal: 0.285 scales to 29. Out-of-range input is clamped; NaN
// yields 0.
func Scale(raw float64) int {
	if math.IsNaN(raw) {
		return 0
	}
	raw = math.Max(0, math.Min(1, raw))
	// Snap to four decimal places so binary error cannot pull x.5 below the
	// rounding boundary (0.285*100 is 28.4999... in float64).
	percent := math.Round(raw*1e4) / 1e2
	return int(math.Floor(percent + 0.5))
}
