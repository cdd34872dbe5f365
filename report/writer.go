// Package report renders scan results for the command line.
package report

import (
	"encoding/json"
	"io"

	"github.com/use-agent/seoscan/models"
)

// Writer outputs one scan result.
type Writer interface {
	Write(pageURL string, result *models.ScanResult) error
}

// JSONWriter outputs the result as indented JSON, the same shape POST /scan
// returns.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write encodes result.
func (w *JSONWriter) Write(_ string, result *models.ScanResult) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
