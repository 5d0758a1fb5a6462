package render

import (
	"strings"
	"testing"
	"time"

	"landingkit/internal/assets"
	"landingkit/internal/document"
)

var fixedNow = Options{Now: time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)}

func mustInline(t *testing.T, doc document.Document) Page {
	t.Helper()
	page, err := Inline(doc, fixedNow)
	if err != nil {
		t.Fatalf("Inline() error = %v", err)
	}
	return page
}

func mustFolder(t *testing.T, doc document.Document, m assets.Manifest) Page {
	t.Helper()
	page, err := Folder(doc, m, fixedNow)
	if err != nil {
		t.Fatalf("Folder() error = %v", err)
	}
	return page
}

func withFAQ(doc document.Document) document.Document {
	doc.FAQ.Items = []document.FAQItem{{ID: "1", Question: "Why us?", Answer: "Because."}}
	return doc
}

func TestInlineDefaultDocument(t *testing.T) {
	page := mustInline(t, document.Default())

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Thanks for having us!",
		"<style>",
		"#cb009f",
		"© 2025 Precision AQ. All rights reserved.",
		`href="mailto:hello@precisionaq.com"`,
		"https://formspree.io/f/YOUR_FORM_ID",
		"Content-Security-Policy",
	} {
		if !strings.Contains(page.HTML, want) {
			t.Errorf("inline page missing %q", want)
		}
	}
	for _, unwanted := range []string{"css/styles.css", "js/main.js", "data-faq-toggle", "correctPassword"} {
		if strings.Contains(page.HTML, unwanted) {
			t.Errorf("inline page unexpectedly contains %q", unwanted)
		}
	}
	if page.CSS != "" || page.JS != "" {
		t.Error("inline page should not carry separate CSS or JS")
	}
}

func TestFooterYearLeavesDocumentUnchanged(t *testing.T) {
	doc := document.Default()
	before := doc.Footer.CopyrightText
	page := mustInline(t, doc)
	if strings.Contains(page.HTML, document.YearToken) {
		t.Error("year token was not replaced")
	}
	if doc.Footer.CopyrightText != before {
		t.Errorf("copyright text mutated to %q", doc.Footer.CopyrightText)
	}
}

func TestPlainTextIsEscaped(t *testing.T) {
	doc := document.Default()
	doc.Hero.Title = `<script>alert("x")</script>`
	doc.Team.Members = []document.TeamMember{{ID: "1", Name: "A & B", Role: "<b>lead</b>"}}

	for name, html := range map[string]string{
		"inline": mustInline(t, doc).HTML,
		"folder": mustFolder(t, doc, nil).HTML,
	} {
		if strings.Contains(html, `<script>alert`) {
			t.Errorf("%s: raw title script rendered", name)
		}
		for _, want := range []string{"&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;", "A &amp; B", "&lt;b&gt;lead&lt;/b&gt;"} {
			if !strings.Contains(html, want) {
				t.Errorf("%s: missing escaped %q", name, want)
			}
		}
	}
}

func TestRichTextIsSanitized(t *testing.T) {
	doc := document.Default()
	doc.Hero.UseRichText = true
	doc.Hero.RichTextContent = `<p onclick="x()">Hello <strong>there</strong></p><script>bad()</script>`
	html := mustInline(t, doc).HTML
	if !strings.Contains(html, "<p>Hello <strong>there</strong></p>") {
		t.Error("rich text not rendered")
	}
	if strings.Contains(html, "onclick") || strings.Contains(html, "bad()") {
		t.Error("rich text not sanitized")
	}
}

func TestHiddenHeroIsAbsentInBothModes(t *testing.T) {
	doc := document.Default()
	doc.Hero.Visible = false
	for name, html := range map[string]string{
		"inline": mustInline(t, doc).HTML,
		"folder": mustFolder(t, doc, nil).HTML,
	} {
		if strings.Contains(html, `id="hero"`) {
			t.Errorf("%s: hidden hero rendered", name)
		}
		if strings.Contains(html, "<h1>Thanks for having us!</h1>") {
			t.Errorf("%s: hidden hero title rendered", name)
		}
	}
}

func TestEmptyFAQRendersNothing(t *testing.T) {
	doc := document.Default()
	doc.FAQ.Visible = true
	doc.FAQ.Items = nil

	inline := mustInline(t, doc)
	folder := mustFolder(t, doc, nil)
	for name, html := range map[string]string{"inline": inline.HTML, "folder": folder.HTML} {
		if strings.Contains(html, `id="faq"`) || strings.Contains(html, "data-faq-toggle") {
			t.Errorf("%s: empty FAQ rendered", name)
		}
	}
	if folder.NeedsScript() || strings.Contains(folder.HTML, "js/main.js") {
		t.Error("folder page links a script it does not need")
	}
}

func TestFAQScript(t *testing.T) {
	doc := withFAQ(document.Default())

	inline := mustInline(t, doc)
	if !strings.Contains(inline.HTML, `data-faq-toggle="faq-0"`) {
		t.Error("inline FAQ toggle missing")
	}
	if !strings.Contains(inline.HTML, "closest('[data-faq-toggle]')") {
		t.Error("inline FAQ script not embedded")
	}
	if !strings.Contains(inline.HTML, "script-src 'self' 'unsafe-inline'") {
		t.Error("inline FAQ script blocked by CSP")
	}

	folder := mustFolder(t, doc, nil)
	if !folder.NeedsScript() {
		t.Fatal("folder page with FAQ should need js/main.js")
	}
	if !strings.Contains(folder.HTML, `<script src="js/main.js" defer></script>`) {
		t.Error("folder page does not link js/main.js")
	}
	if strings.Contains(folder.HTML, "'unsafe-inline'; style-src") {
		t.Error("folder CSP allows inline script without need")
	}
}

func TestSectionOrderIsHonored(t *testing.T) {
	doc := withFAQ(document.Default())
	doc.Team.Members = []document.TeamMember{{ID: "1", Name: "Ada"}}
	doc.SectionOrder = []document.SectionID{
		document.SectionFAQ,
		document.SectionTeam,
		document.SectionHero,
		document.SectionFooter,
		document.SectionPitch,
		document.SectionCaseStudies,
		document.SectionSurpriseDelight,
	}
	html := mustInline(t, doc).HTML
	ids := []string{`id="faq"`, `id="team"`, `id="hero"`, `id="contact"`, `id="pitch"`, `id="surprise"`}
	last := -1
	for _, id := range ids {
		i := strings.Index(html, id)
		if i < 0 {
			t.Fatalf("%s not rendered", id)
		}
		if i < last {
			t.Errorf("%s rendered out of order", id)
		}
		last = i
	}
	if strings.Index(html, `class="logo-header"`) > strings.Index(html, `id="faq"`) {
		t.Error("logo header should come first")
	}
}

func TestFolderUsesManifest(t *testing.T) {
	doc := document.Default()
	doc.Team.Members = []document.TeamMember{{ID: "1", Name: "Ada", Image: "https://example.com/ada.png"}}
	m := assets.Manifest{
		"logo":          "assets/images/aaaaaaaaaaaa.png",
		"teamMember_0":  "assets/images/bbbbbbbbbbbb.png",
		"surpriseImage": "assets/images/cccccccccccc.png",
	}
	page := mustFolder(t, doc, m)
	for _, want := range []string{
		`<img src="assets/images/aaaaaaaaaaaa.png" alt="Logo">`,
		`src="assets/images/bbbbbbbbbbbb.png"`,
		`src="assets/images/cccccccccccc.png"`,
		`<link rel="stylesheet" href="css/styles.css">`,
	} {
		if !strings.Contains(page.HTML, want) {
			t.Errorf("folder page missing %q", want)
		}
	}
	if !strings.Contains(page.CSS, "#cb009f") {
		t.Error("folder stylesheet missing primary colour")
	}
	if strings.Contains(page.HTML, "<style>") {
		t.Error("folder page should not embed its stylesheet")
	}
}

func TestPasswordGate(t *testing.T) {
	doc := document.Default()
	doc.PasswordProtection = &document.PasswordProtection{Enabled: true, Password: `pa"ss</script>`}
	html := mustInline(t, doc).HTML
	if !strings.Contains(html, `var correctPassword = "pa\"ss\u003c/script\u003e";`) {
		t.Error("password not JSON-encoded")
	}
	if !strings.Contains(html, "about:blank") || !strings.Contains(html, "sessionStorage") {
		t.Error("password gate script incomplete")
	}
	if strings.Index(html, "correctPassword") > strings.Index(html, `class="logo-header"`) {
		t.Error("password gate should run before content")
	}
}

func TestAnalytics(t *testing.T) {
	doc := document.Default()
	doc.Analytics = &document.Analytics{GoogleAnalytics: "G-ABC123", CustomCode: `<meta name="x" content="y">`}
	html := mustInline(t, doc).HTML
	for _, want := range []string{
		"https://www.googletagmanager.com/gtag/js?id=G-ABC123",
		`gtag('config', "G-ABC123");`,
		`<meta name="x" content="y">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Index(html, "gtag/js") > strings.Index(html, "</head>") {
		t.Error("analytics should be in head")
	}
}

func TestPitchEmbedTakesPrecedence(t *testing.T) {
	doc := document.Default()
	doc.Pitch.DocumentURL = "data:application/pdf;base64,JVBERg=="
	doc.Pitch.HTMLEmbed = `<p>Deck</p><script>x()</script>`
	html := mustInline(t, doc).HTML
	if !strings.Contains(html, `<div class="html-embed"><p>Deck</p></div>`) {
		t.Error("embed not rendered")
	}
	if strings.Contains(html, "<iframe src=\"data:application/pdf") {
		t.Error("document rendered despite embed")
	}
}

func TestPitchDisplayTypes(t *testing.T) {
	cases := []struct {
		display document.DisplayType
		want    string
	}{
		{document.DisplayInline, `<iframe src="/deck.pdf" title="Deck"></iframe>`},
		{document.DisplayDownload, `download="Deck">Download Deck</a>`},
		{document.DisplayLink, `target="_blank" rel="noopener noreferrer" class="btn">Open Deck</a>`},
	}
	for _, tc := range cases {
		doc := document.Default()
		doc.Pitch.DocumentURL = "/deck.pdf"
		doc.Pitch.DocumentName = "Deck"
		doc.Pitch.DisplayType = tc.display
		html := mustInline(t, doc).HTML
		if !strings.Contains(html, tc.want) {
			t.Errorf("%s: missing %q", tc.display, tc.want)
		}
	}
}

func TestHeroBackgroundAndCTA(t *testing.T) {
	doc := document.Default()
	doc.Hero.BackgroundImage = "data:image/png;base64,iVBORw0KGgo="
	doc.Hero.CTALink = "hello@example.com"
	html := mustInline(t, doc).HTML
	if !strings.Contains(html, `class="hero has-bg"`) {
		t.Error("hero background class missing")
	}
	if !strings.Contains(html, "url('data:image/png;base64,iVBORw0KGgo=')") {
		t.Error("hero background not inlined")
	}
	if !strings.Contains(html, `href="mailto:hello@example.com" class="btn"`) {
		t.Error("CTA link not normalized")
	}

	doc.Hero.ShowCTA = false
	if strings.Contains(mustInline(t, doc).HTML, "Be in Touch</a>") {
		t.Error("CTA rendered with showCta off")
	}
}

func TestCTAFollowsShowCTAOnly(t *testing.T) {
	doc := document.Default()
	doc.Hero.CTAText = ""
	doc.Hero.CTALink = ""
	if !strings.Contains(mustInline(t, doc).HTML, `href="#contact" class="btn"`) {
		t.Error("CTA with empty text was dropped")
	}

	doc.Hero.ShowCTA = false
	if strings.Contains(mustInline(t, doc).HTML, `class="btn"></a>`) {
		t.Error("CTA rendered with showCta off")
	}
}

func TestAttrURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"https://example.com/a?b=1&c=2", "https://example.com/a?b=1&amp;c=2"},
		{"/logo.png", "/logo.png"},
		{"#contact", "#contact"},
		{"mailto:a@b.co", "mailto:a@b.co"},
		{"tel:+15551234", "tel:+15551234"},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"javascript:alert(1)", "#"},
		{"java\tscript:alert(1)", "#"},
		{"JAVASCRIPT:alert(1)", "#"},
		{"data:text/html,<script>x</script>", "#"},
		{"vbscript:msgbox", "#"},
		{"", "#"},
		{`"><script>`, "&quot;&gt;&lt;script&gt;"},
	}
	for _, tc := range cases {
		if got := attrURL(tc.in); got != tc.want {
			t.Errorf("attrURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCSSURL(t *testing.T) {
	if got := cssURL(`/bg image's.png`); got != "/bg%20image%27s.png" {
		t.Errorf("cssURL = %q", got)
	}
	if got := cssURL("javascript:x"); got != "" {
		t.Errorf("cssURL(javascript) = %q, want empty", got)
	}
}

func TestContentSecurityPolicy(t *testing.T) {
	plain := contentSecurityPolicy(policyInput{})
	if !strings.Contains(plain, "script-src 'self';") {
		t.Errorf("plain policy = %q", plain)
	}
	ga := contentSecurityPolicy(policyInput{analytics: true})
	if !strings.Contains(ga, "script-src 'self' 'unsafe-inline' https://www.googletagmanager.com;") {
		t.Errorf("analytics policy = %q", ga)
	}
	if !strings.Contains(plain, "form-action 'self' https://formspree.io") {
		t.Error("form-action must allow the lead form endpoint")
	}
}

func TestInvalidColorsFallBack(t *testing.T) {
	doc := document.Default()
	doc.Customization.PrimaryColor = "red;}</style><script>"
	page := mustFolder(t, doc, nil)
	if strings.Contains(page.CSS, "</style>") {
		t.Error("invalid colour reached the stylesheet")
	}
	if !strings.Contains(page.CSS, "#cb009f") {
		t.Error("fallback colour missing")
	}
}
