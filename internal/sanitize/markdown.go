// internal/sanitize/markdown.go
package sanitize

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(
			util.Prioritized(newContactLinkTransformer(), 100),
		),
	),
	goldmark.WithRendererOptions(
		// Raw HTML is allowed through here because RichText filters the
		// whole result afterwards.
		html.WithUnsafe(),
	),
)

// contactLinkTransformer rewrites link destinations that are bare email
// addresses into mailto: links, so authors can write [Mail us](team@x.com).
// Phone numbers are left alone: RichText admits no tel: hrefs.
type contactLinkTransformer struct{}

func newContactLinkTransformer() parser.ASTTransformer {
	return &contactLinkTransformer{}
}

func (t *contactLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		dest := string(link.Destination)
		if normalized := NormalizeLink(dest); normalized != dest && strings.HasPrefix(normalized, "mailto:") {
			link.Destination = []byte(normalized)
		}
		return ast.WalkContinue, nil
	})
}

// Markdown renders Markdown to HTML and filters it through RichText.
func Markdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	return RichText(buf.String()), nil
}
