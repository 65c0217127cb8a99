package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var documentTemplate = template.Must(template.ParseFS(templateFS, "templates/document.html.tmpl"))

// WriteHTML renders the document as a standalone HTML page.
func (d Document) WriteHTML(w io.Writer) error {
	if err := documentTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	return nil
}

func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.WriteHTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
