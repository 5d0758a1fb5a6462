// internal/sanitize/richtext.go

// Package sanitize makes author content safe to place in generated pages.
// RichText filters HTML against a fixed allowlist, EscapeText handles
// every plain-text field, and Embed cleans the free-form pitch embed.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags is the rich-text tag allowlist.
var allowedTags = map[string]bool{
	"p": true, "br": true,
	"strong": true, "b": true, "em": true, "i": true, "u": true, "s": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true,
	"a": true, "blockquote": true, "code": true, "pre": true,
	"span": true, "div": true,
}

// allowedAttrs lists the attributes each tag may keep.
var allowedAttrs = map[string]map[string]bool{
	"a":    {"href": true, "title": true, "target": true, "rel": true},
	"span": {"class": true, "style": true},
	"div":  {"class": true, "style": true},
}

// droppedWithContent are removed together with everything inside them.
// Their children are script or raw text, never author prose.
var droppedWithContent = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "template": true, "noscript": true, "textarea": true,
	"title": true, "svg": true, "math": true,
}

var hrefPrefixes = []string{"http://", "https://", "mailto:", "#"}

// RichText restricts s to the rich-text allowlist. Disallowed elements are
// unwrapped: the tag goes, its sanitized children stay.
func RichText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(s), ctx)
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
	default:
		// Comments, doctypes and anything else never reach the output.
		return
	}

	tag := n.Data
	if droppedWithContent[tag] || n.Namespace != "" {
		return
	}
	if !allowedTags[tag] {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNode(b, c)
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(tag)
	for _, a := range filterAttrs(tag, n.Attr) {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if tag == "br" {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func filterAttrs(tag string, attrs []html.Attribute) []html.Attribute {
	allowed := allowedAttrs[tag]
	if allowed == nil {
		return nil
	}
	var out []html.Attribute
	blank := false
	for _, a := range attrs {
		if a.Namespace != "" || !allowed[a.Key] {
			continue
		}
		switch a.Key {
		case "href":
			if !safeHref(a.Val) {
				continue
			}
			a.Val = strings.TrimSpace(a.Val)
		case "target":
			if strings.TrimSpace(strings.ToLower(a.Val)) != "_blank" {
				continue
			}
			a.Val = "_blank"
			blank = true
		case "rel":
			// Rewritten below when target=_blank is present.
		case "style":
			if !safeStyle(a.Val) {
				continue
			}
		}
		out = append(out, a)
	}
	if blank {
		kept := out[:0]
		for _, a := range out {
			if a.Key != "rel" {
				kept = append(kept, a)
			}
		}
		out = append(kept, html.Attribute{Key: "rel", Val: "noopener noreferrer"})
	}
	return out
}

func safeHref(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, p := range hrefPrefixes {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return false
}

// safeStyle rejects inline styles that can load resources or run code.
func safeStyle(v string) bool {
	l := strings.ToLower(v)
	for _, bad := range []string{"url(", "expression", "javascript:", "@import", "behavior", "<"} {
		if strings.Contains(l, bad) {
			return false
		}
	}
	return true
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes the five HTML-significant characters. It is not
// idempotent; escape once, at render time.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
