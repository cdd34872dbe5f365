package audit

// Lighthouse audit identifiers consulted by the field extractor.
const (
	AuditDocumentTitle   = "document-title"
	AuditMetaDescription = "meta-description"
	AuditHeadingOrder    = "heading-order"
)

// Response is the top-level runPagespeed payload. Only the parts the scan
// pipeline consults are modeled; every nested node is optional.
type Response struct {
	LighthouseResult *Report `json:"lighthouseResult"`
}

// Report is the Lighthouse result embedded in a PageSpeed response.
type Report struct {
	Audits     map[string]Audit `json:"audits"`
	Categories Categories       `json:"categories"`
}

// Audit is a single Lighthouse finding.
type Audit struct {
	Details *Details `json:"details"`
}

// Details holds the table rows of an audit.
type Details struct {
	Items []Item `json:"items"`
}

// Item is one row of an audit table. Which fields are populated depends on
// the audit.
type Item struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Node        *Node   `json:"node"`
}

// Node describes a DOM element referenced by an audit item.
type Node struct {
	Snippet *string `json:"snippet"`
}

// Categories holds the requested category scores.
type Categories struct {
	Performance *Category `json:"performance"`
	SEO         *Category `json:"seo"`
}

// Category is a scored Lighthouse category. Score is a fraction in [0, 1]
// and is null when Lighthouse could not compute it.
type Category struct {
	Score *float64 `json:"score"`
}

// FirstItem returns the first item of the named audit, if any.
func (r *Report) FirstItem(auditID string) (Item, bool) {
	if r == nil {
		return Item{}, false
	}
	a, ok := r.Audits[auditID]
	if !ok || a.Details == nil || len(a.Details.Items) == 0 {
		return Item{}, false
	}
	return a.Details.Items[0], true
}
