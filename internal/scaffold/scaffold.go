// internal/scaffold/scaffold.go

// Package scaffold lays out a new landing-page project.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/spf13/afero"

	"landingkit/internal/assets"
	"landingkit/internal/config"
	"landingkit/internal/document"
	"landingkit/internal/teamcsv"
)

var ErrProjectExists = errors.New("a project already exists in this directory")

// Placeholder images written under static/, keyed by path. The paths match
// the references in the default document.
var placeholderImages = map[string]string{
	"logos/precision-aq-logo-full-color.png": "Logo",
	"coffee-cup-wooden-table.png":            "Surprise & Delight",
	"professional-headshot.png":              "Headshot",
}

// CreateNewProject writes a starter project into dir: config, default
// document, static folders with placeholder images and a sample team CSV.
// It refuses to touch a directory that already holds a landing.yaml.
func CreateNewProject(fs afero.Fs, dir, title string) error {
	if ok, _ := afero.Exists(fs, filepath.Join(dir, config.FileName)); ok {
		return fmt.Errorf("%w: %s", ErrProjectExists, dir)
	}
	if title == "" {
		title = config.Default().Title
	}

	mkdir := func(path string) error { return fs.MkdirAll(filepath.Join(dir, path), 0755) }
	writeFile := func(path string, content []byte) error {
		return afero.WriteFile(fs, filepath.Join(dir, path), content, 0644)
	}

	dirs := []string{"static/logos", "static/icons", "static/bios"}
	for _, d := range dirs {
		if err := mkdir(d); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	cfg, err := renderConfig(title)
	if err != nil {
		return err
	}
	doc, err := document.Marshal(document.Default())
	if err != nil {
		return fmt.Errorf("failed to encode default document: %w", err)
	}

	files := map[string][]byte{
		config.FileName: cfg,
		"document.json": doc,
		"team.csv":      []byte(teamcsv.Sample()),
		".gitignore":    []byte(gitignoreContent),
	}
	for path, label := range placeholderImages {
		img, err := assets.PlaceholderPNG(label)
		if err != nil {
			return fmt.Errorf("failed to render placeholder %s: %w", path, err)
		}
		files[filepath.Join("static", path)] = img
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	return nil
}

func renderConfig(title string) ([]byte, error) {
	tmpl, err := template.New("config").Parse(landingYamlContent)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Title string }{Title: yamlQuote(title)}); err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return buf.Bytes(), nil
}

// yamlQuote wraps s in single quotes, doubling any inside.
func yamlQuote(s string) string {
	var b bytes.Buffer
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteByte('\'')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

const landingYamlContent = `title: {{ .Title }}
document: document.json
static: static
output: public
port: 8080

export:
  sizeWarning: 6291456   # warn above 6 MB for single-file exports
  fetchTimeout: 15s
  concurrency: 8
  maxAssetBytes: 52428800

storage:
  maxBytes: 4194304
  quotaBytes: 10485760
  maxVersions: 5

history:
  depth: 50

images:
  maxDimension: 1920
  quality: 70
  maxInputBytes: 10485760
  timeout: 30s
`

const gitignoreContent = `public/
.landingkit/
.env
`
