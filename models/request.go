package models

// ScanRequest is the payload for POST /scan.
type ScanRequest struct {
	// URL is the absolute page address to audit, scheme included. Required.
	URL string `json:"url" form:"url"`
}
