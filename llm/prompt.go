package llm

import (
	"fmt"

	"github.com/use-agent/seoscan/extract"
)

// Fallback texts placed in the result when recommendations cannot be had.
const (
	// FallbackUnavailable covers provider errors and transport failures.
	FallbackUnavailable = "AI suggestions are temporarily unavailable. Please try again later."
	// FallbackNotGenerated covers 2xx replies without usable text.
	FallbackNotGenerated = "AI suggestions could not be generated for this page."
)

// BuildPrompt creates the recommendation prompt for one scanned page.
func BuildPrompt(pageURL string, f extract.Fields) string {
	return fmt.Sprintf(`Analyze the following SEO data for the webpage at %s and provide actionable improvement tips.
Focus on how to improve the title, meta description, H1 tag, performance score and overall SEO score.
Present the tips as a concise, easy-to-read list of bullet points.

- **URL:** %s
- **Title Tag:** %s
- **Meta Description:** %s
- **H1 Heading:** %s
- **Lighthouse Performance Score:** %d/100
- **Lighthouse SEO Score:** %d/100

**SEO Improvement Suggestions:**
`, pageURL, pageURL, f.Title, f.Meta, f.H1, f.PerformanceScore, f.SEOScore)
}
