// internal/render/render.go

// Package render produces the static page for a document. Inline output
// carries every asset as a data URI and embeds its stylesheet and script;
// folder output links css/styles.css and js/main.js and resolves asset
// slots through a manifest.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"
	"time"

	"landingkit/internal/assets"
	"landingkit/internal/document"
)

//go:embed templates
var templateFS embed.FS

var (
	pageTemplate = template.Must(template.New("page.html.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/page.html.tmpl"))
	cssTemplate  = template.Must(template.New("styles.css.tmpl").ParseFS(templateFS, "templates/styles.css.tmpl"))
	faqScript    = mustRead("templates/faq.js")
)

var (
	hexColorRe   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	fontFamilyRe = regexp.MustCompile(`^[A-Za-z0-9 ,'"._-]*$`)
)

// Page is a rendered page. In inline mode CSS and JS are already inside
// HTML and both fields are empty.
type Page struct {
	HTML string
	CSS  string
	JS   string
}

// NeedsScript reports whether the page links js/main.js.
func (p Page) NeedsScript() bool { return p.JS != "" }

type Options struct {
	// Now supplies the footer year. Zero means time.Now().
	Now time.Time
}

func (o Options) year() string {
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	return strconv.Itoa(now.Year())
}

// Inline renders a self-contained page. The document's asset references
// should already be data URIs; anything else is emitted as-is.
func Inline(doc document.Document, opts Options) (Page, error) {
	v := buildView(&doc, opts, true, func(_, ref string) string { return ref })
	css, err := stylesheet(&doc)
	if err != nil {
		return Page{}, err
	}
	v.CSS = css
	html, err := execute(v)
	if err != nil {
		return Page{}, err
	}
	return Page{HTML: html}, nil
}

// Folder renders a page that references external files. Slots found in
// the manifest point at their extracted path; the rest keep the
// document's own reference.
func Folder(doc document.Document, manifest assets.Manifest, opts Options) (Page, error) {
	v := buildView(&doc, opts, false, func(slot, ref string) string {
		if p, ok := manifest[slot]; ok {
			return p
		}
		return ref
	})
	css, err := stylesheet(&doc)
	if err != nil {
		return Page{}, err
	}
	html, err := execute(v)
	if err != nil {
		return Page{}, err
	}
	page := Page{HTML: html, CSS: css}
	if v.Script != "" {
		page.JS = faqScript
	}
	return page, nil
}

func execute(v *view) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "main", v); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

type cssView struct {
	FontFamily       string
	Accent           string
	Primary          string
	Secondary        string
	HeroFit          string
	HeroPosition     string
	FooterBackground string
	FooterText       string
	FooterButton     string
}

func stylesheet(doc *document.Document) (string, error) {
	def := document.Default()
	c := doc.Customization
	font := c.FontFamily
	if !fontFamilyRe.MatchString(font) {
		font = ""
	}
	v := cssView{
		FontFamily:       font,
		Accent:           color(c.AccentColor, def.Customization.AccentColor),
		Primary:          color(c.PrimaryColor, def.Customization.PrimaryColor),
		Secondary:        color(c.SecondaryColor, def.Customization.SecondaryColor),
		HeroFit:          doc.Hero.BackgroundFit.CSS(),
		HeroPosition:     doc.Hero.BackgroundPosition.CSS(),
		FooterBackground: color(doc.Footer.BackgroundColor, def.Footer.BackgroundColor),
		FooterText:       color(doc.Footer.TextColor, def.Footer.TextColor),
		FooterButton:     color(doc.Footer.CTAButtonColor, def.Footer.CTAButtonColor),
	}
	if !doc.Hero.BackgroundFit.Valid() {
		v.HeroFit = document.FitCover.CSS()
	}
	if !doc.Hero.BackgroundPosition.Valid() {
		v.HeroPosition = document.PositionCenter.CSS()
	}
	var buf bytes.Buffer
	if err := cssTemplate.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render stylesheet: %w", err)
	}
	return buf.String(), nil
}

func color(v, fallback string) string {
	if hexColorRe.MatchString(v) {
		return v
	}
	return fallback
}

func mustRead(name string) string {
	b, err := templateFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// Year replaces the year token in s.
func Year(s string, opts Options) string {
	return strings.ReplaceAll(s, document.YearToken, opts.year())
}
