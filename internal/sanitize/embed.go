// internal/sanitize/embed.go
package sanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	embedPolicy     *bluemonday.Policy
	embedPolicyOnce sync.Once
)

var httpsOnly = regexp.MustCompile(`^https://`)

// getEmbedPolicy builds the policy for the pitch embed on first use. It is
// wider than RichText: authors paste slide-deck iframes, video players and
// tables here.
func getEmbedPolicy() *bluemonday.Policy {
	embedPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()

		p.AllowElements("iframe")
		p.AllowAttrs("src").Matching(httpsOnly).OnElements("iframe")
		p.AllowAttrs("width", "height", "frameborder", "allow", "allowfullscreen", "title", "loading").OnElements("iframe")

		p.AllowElements("video", "source")
		p.AllowAttrs("src").Matching(httpsOnly).OnElements("video", "source")
		p.AllowAttrs("type").OnElements("source")
		p.AllowAttrs("controls", "width", "height", "poster", "muted", "loop", "playsinline").OnElements("video")

		p.AllowElements("figure", "figcaption", "u", "s", "mark")
		p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td")
		p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		p.AllowAttrs("class").Globally()
		p.AllowAttrs("style").OnElements("div", "span", "table", "th", "td", "iframe")

		p.RequireNoReferrerOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)

		embedPolicy = p
	})
	return embedPolicy
}

// Embed sanitizes the raw HTML an author pastes into the pitch section.
// Scripts, event handlers and non-https frames are removed.
func Embed(s string) string {
	if s == "" {
		return ""
	}
	return getEmbedPolicy().Sanitize(s)
}
