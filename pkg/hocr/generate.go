package hocr

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"math"
	"text/template"
)

//go:embed templates/hocr.tmpl
var templateFS embed.FS

// Generate renders the document as an hOCR HTML string using the embedded
// template.
func Generate(doc *Document) (string, error) {
	tmpl, err := template.New("hocr.tmpl").Funcs(template.FuncMap{
		"bbox": formatBBox,
		"esc":  html.EscapeString,
	}).ParseFS(templateFS, "templates/hocr.tmpl")
	if err != nil {
		return "", fmt.Errorf("error parsing hOCR template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("error rendering hOCR template: %w", err)
	}
	return buf.String(), nil
}

// formatBBox renders the hOCR bbox title property. The format wants
// integer pixel-style coordinates.
func formatBBox(b BBox) string {
	return fmt.Sprintf("bbox %d %d %d %d",
		int(math.Round(b.X1)),
		int(math.Round(b.Y1)),
		int(math.Round(b.X2)),
		int(math.Round(b.Y2)))
}
