// Package web embeds the HTML templates for the scan form and report pages.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

// Templates parses every embedded template. Templates are named by file name.
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.tmpl")
}
