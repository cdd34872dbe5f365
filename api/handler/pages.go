package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/models"
)

// scoreView is a score with its display band.
type scoreView struct {
	Label   string
	Value   int
	Band    models.ScoreBand
	Summary string
}

func newScoreView(label string, value int) scoreView {
	band := models.BandFor(value)
	return scoreView{Label: label, Value: value, Band: band, Summary: band.Summary()}
}

// Pages serves the browser form and its report.
type Pages struct {
	Scanner Scanner

	// AuthRequired adds an API key field to the form.
	AuthRequired bool
}

// Index returns a handler for GET /, the URL entry form.
func (p Pages) Index() gin.HandlerFunc {
	return func(c *gin.Context) {
		p.renderForm(c, http.StatusOK, "", "")
	}
}

// Results returns a handler for POST /results, the form target. It runs the
// same scan as POST /scan and renders the report, or the form again with the
// error message.
func (p Pages) Results() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawURL := strings.TrimSpace(c.PostForm("url"))

		result, err := p.Scanner.Scan(c.Request.Context(), rawURL)
		if err != nil {
			scanErr := models.AsScanError(err)
			p.renderForm(c, mapErrorToStatus(scanErr), rawURL, scanErr.Message)
			return
		}

		c.HTML(http.StatusOK, "results.tmpl", gin.H{
			"URL":    rawURL,
			"Result": result,
			"Scores": []scoreView{
				newScoreView("Performance Score", result.Performance),
				newScoreView("SEO Score", result.SEOScore),
			},
		})
	}
}

// Reject renders the form again with a middleware rejection. It is the
// middleware.Responder for POST /results.
func (p Pages) Reject(c *gin.Context, status int, body models.ErrorResponse) {
	p.renderForm(c, status, strings.TrimSpace(c.PostForm("url")), body.Error)
}

func (p Pages) renderForm(c *gin.Context, status int, rawURL, message string) {
	c.HTML(status, "index.tmpl", gin.H{
		"URL":          rawURL,
		"Error":        message,
		"AuthRequired": p.AuthRequired,
	})
}
