// Package views holds the storefront's server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"strings"

	"github.com/junaidrashid-git/storefront/models"
)

//go:embed templates/*.html
var files embed.FS

// Load parses every page. Pages are addressed by file name, e.g. "userCart.html".
// The login page links only to the given providers.
func Load(providers ...models.Provider) (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"providers": func() []models.Provider { return providers },
		"label":     providerLabel,
		"price": func(v float64) string { return "₹" + trimZeros(v) },
		"stars": trimRating,
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
	}).ParseFS(files, "templates/*.html")
}

func providerLabel(p models.Provider) string {
	name := string(p)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
