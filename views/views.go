// Package views holds the server-rendered pages.
package views

import (
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2 Jan 2006")
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

// Parse builds the template set.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "templates/*.html")
}

// Load installs the templates on the engine.
func Load(engine *gin.Engine) error {
	tmpl, err := Parse()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)
	return nil
}
