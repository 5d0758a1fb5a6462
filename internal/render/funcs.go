// internal/render/funcs.go
package render

import (
	"encoding/json"
	"strings"
	"text/template"

	"landingkit/internal/sanitize"
)

// funcs is the only way author content reaches the page template. Plain
// text goes through esc, rich text through rich, the pitch embed through
// embed, and every attribute URL through url or cssurl.
var funcs = template.FuncMap{
	"esc":    sanitize.EscapeText,
	"rich":   sanitize.RichText,
	"embed":  sanitize.Embed,
	"url":    attrURL,
	"cssurl": cssURL,
	"js":     jsString,
}

var allowedSchemes = map[string]bool{
	"http": true, "https": true, "mailto": true, "tel": true, "data": true,
}

// blockedDataTypes are data: payloads a browser would execute.
var blockedDataTypes = []string{
	"text/html", "application/xhtml", "text/javascript",
	"application/javascript", "application/ecmascript", "text/ecmascript",
}

// safeURL returns u when its scheme is allowed or it is relative, and ""
// otherwise. Control characters are stripped first, as browsers do.
func safeURL(u string) string {
	u = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(u))
	if u == "" {
		return ""
	}
	i := strings.IndexAny(u, ":/?#")
	if i < 0 || u[i] != ':' {
		return u
	}
	scheme := strings.ToLower(u[:i])
	if !allowedSchemes[scheme] {
		return ""
	}
	if scheme == "data" {
		mediaType := strings.ToLower(strings.TrimSpace(u[i+1:]))
		for _, t := range blockedDataTypes {
			if strings.HasPrefix(mediaType, t) {
				return ""
			}
		}
	}
	return u
}

func attrURL(u string) string {
	s := safeURL(u)
	if s == "" {
		return "#"
	}
	return sanitize.EscapeText(s)
}

var cssURLEscaper = strings.NewReplacer(
	"'", "%27",
	`"`, "%22",
	"(", "%28",
	")", "%29",
	`\`, "%5C",
	" ", "%20",
	"<", "%3C",
	">", "%3E",
)

// cssURL prepares u for url('...') inside a style attribute.
func cssURL(u string) string {
	return sanitize.EscapeText(cssURLEscaper.Replace(safeURL(u)))
}

// jsString renders s as a JavaScript string literal. json.Marshal escapes
// <, > and & so the literal cannot close its script element.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
