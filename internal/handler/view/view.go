// Package view holds the HTML templates rendered by the page handlers.
package view

import (
	"embed"
	"html/template"
	"strings"

	"transferpoints/internal/pkg/errs"
)

// Template names, one per page.
const (
	HomeTemplate     = "home.html"
	BonusesTemplate  = "bonuses.html"
	BonusTemplate    = "bonus.html"
	MatrixTemplate   = "matrix.html"
	ProgramsTemplate = "programs.html"
	PartnersTemplate = "partners.html"
	ErrorTemplate    = "error.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"join": strings.Join,
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
}

// Load parses every page template together with the shared layout blocks.
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errs.Wrap(err, "parse templates")
	}
	return tmpl, nil
}
