// Package renderer produces the markdown reports printed by the xp commands.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate renders one of the embedded markdown templates.
func renderTemplate(name string, data any) string {
	content, err := fs.ReadFile(templates, "templates/"+name)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
