// Package templates embeds the HTML pages so the binary is self-contained.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses the embedded templates into a single set so pages can share
// the layout partials.
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
