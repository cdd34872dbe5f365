package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/use-agent/seoscan/models"
)

// MarkdownWriter outputs the result as a Markdown report for sharing.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the full report.
func (w *MarkdownWriter) Write(pageURL string, result *models.ScanResult) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("SEO Report")
	md.PlainText("Showing results for: " + pageURL)
	md.PlainText("")

	md.H2("Page Elements")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Element", "Value"},
		Rows: [][]string{
			{"Title Tag", result.Title},
			{"Meta Description", result.Meta},
			{"H1 Heading", result.H1},
		},
	})
	md.PlainText("")

	md.H2("Scores")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score", "Verdict"},
		Rows: [][]string{
			scoreRow("Performance", result.Performance),
			scoreRow("SEO", result.SEOScore),
		},
	})
	md.PlainText("")

	md.H2("AI-Powered Suggestions")
	md.PlainText("")
	md.PlainText(result.AISuggestions)

	return md.Build()
}

func scoreRow(label string, score int) []string {
	return []string{
		label,
		fmt.Sprintf("%d/100", score),
		models.BandFor(score).Summary(),
	}
}
