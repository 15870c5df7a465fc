package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"

	"github.com/HamzaLatif02/portfolio/internal/project"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed data/projects.json
var defaultCatalog []byte

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"fieldError": func(field, message string) fieldErrorData {
		return fieldErrorData{Field: field, Error: message}
	},
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to open embedded static files:", err)
	}
	return sub
}

// loadProjects reads the configured catalog, or the embedded one when no
// path is set.
func loadProjects(path string) (*project.Store, error) {
	if path == "" {
		return project.Decode(defaultCatalog, project.FormatJSON)
	}
	return project.Load(path)
}
