package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

// LogoPath is where the server exposes the embedded logo.
const LogoPath = "/logo.svg"

//go:embed templates/shell.html.tmpl
var shellTemplatesFS embed.FS

//go:embed assets/logo.svg
var logoSVG []byte

func loadTemplate() (*template.Template, error) {
	b, err := shellTemplatesFS.ReadFile("templates/shell.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("read embedded shell template: %w", err)
	}
	t, err := template.New("shell.html.tmpl").Option("missingkey=zero").Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("parse embedded shell template: %w", err)
	}
	return t, nil
}

// Logo returns a copy of the embedded logo SVG.
func Logo() []byte {
	return bytes.Clone(logoSVG)
}
