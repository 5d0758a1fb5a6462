// internal/validate/rules.go
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"landingkit/internal/document"
)

var (
	hexColorRe   = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	fontFamilyRe = regexp.MustCompile(`^[A-Za-z0-9 ,'"._-]*$`)
	phoneRe      = regexp.MustCompile(`^\+?[0-9][0-9 ().-]*$`)
	measureIDRe  = regexp.MustCompile(`^[A-Za-z0-9-]*$`)
)

func checkHero(c *collector, h *document.HeroSection) {
	required(c, "hero.title", h.Title)
	link(c, "hero.ctaLink", h.CTALink)
	assetRef(c, "hero.backgroundImage", h.BackgroundImage)
	assetRef(c, "hero.videoUrl", h.VideoURL)
	if !h.BackgroundFit.Valid() {
		c.add("hero.backgroundFit", fmt.Sprintf("must be one of cover, contain, fill (got %q)", h.BackgroundFit))
	}
	if !h.BackgroundPosition.Valid() {
		c.add("hero.backgroundPosition", fmt.Sprintf("must be one of center, top, bottom, left, right (got %q)", h.BackgroundPosition))
	}
}

func checkPitch(c *collector, p *document.PitchSection) {
	required(c, "pitch.title", p.Title)
	if !p.DisplayType.Valid() {
		c.add("pitch.displayType", fmt.Sprintf("must be one of inline, download, link (got %q)", p.DisplayType))
	}
	assetRef(c, "pitch.documentUrl", p.DocumentURL)
}

func checkTeam(c *collector, t *document.TeamSection) {
	required(c, "team.title", t.Title)
	ids := make(map[string]bool, len(t.Members))
	for i, m := range t.Members {
		base := fmt.Sprintf("team.members.%d", i)
		uniqueID(c, base+".id", m.ID, ids)
		required(c, base+".name", m.Name)
		assetRef(c, base+".image", m.Image)
		webURL(c, base+".linkedin", m.LinkedIn)
		email(c, base+".email", m.Email)
	}
}

func checkCaseStudies(c *collector, s *document.CaseStudiesSection) {
	required(c, "caseStudies.title", s.Title)
	ids := make(map[string]bool, len(s.Studies))
	for i, st := range s.Studies {
		base := fmt.Sprintf("caseStudies.studies.%d", i)
		uniqueID(c, base+".id", st.ID, ids)
		required(c, base+".title", st.Title)
		assetRef(c, base+".icon", st.Icon)
		assetRef(c, base+".documentUrl", st.DocumentURL)
	}
}

func checkFAQ(c *collector, f *document.FAQSection) {
	required(c, "faq.title", f.Title)
	ids := make(map[string]bool, len(f.Items))
	for i, it := range f.Items {
		base := fmt.Sprintf("faq.items.%d", i)
		uniqueID(c, base+".id", it.ID, ids)
		required(c, base+".question", it.Question)
		required(c, base+".answer", it.Answer)
	}
}

func checkSurprise(c *collector, s *document.SurpriseDelightSection) {
	required(c, "surpriseDelight.title", s.Title)
	assetRef(c, "surpriseDelight.imageUrl", s.ImageURL)
	email(c, "surpriseDelight.notifyEmail", s.NotifyEmail)
}

func checkCustomization(c *collector, cu *document.Customization) {
	color(c, "customization.primaryColor", cu.PrimaryColor)
	color(c, "customization.secondaryColor", cu.SecondaryColor)
	color(c, "customization.accentColor", cu.AccentColor)
	if !fontFamilyRe.MatchString(cu.FontFamily) {
		c.add("customization.fontFamily", "may only contain letters, digits, spaces, commas, quotes, dots and hyphens")
	}
	assetRef(c, "customization.logo", cu.Logo)
	if !cu.Theme.Valid() {
		c.add("customization.theme", fmt.Sprintf("unknown theme %q", cu.Theme))
	}
}

func checkFooter(c *collector, f *document.FooterSection) {
	email(c, "footer.ctaEmail", f.CTAEmail)
	color(c, "footer.backgroundColor", f.BackgroundColor)
	color(c, "footer.textColor", f.TextColor)
	color(c, "footer.ctaButtonColor", f.CTAButtonColor)
}

func checkSectionOrder(c *collector, order []document.SectionID) {
	seen := make(map[document.SectionID]bool, len(order))
	for i, id := range order {
		path := fmt.Sprintf("sectionOrder.%d", i)
		switch {
		case !id.Valid():
			c.add(path, fmt.Sprintf("unknown section %q", id))
		case seen[id]:
			c.add(path, fmt.Sprintf("section %q listed twice", id))
		}
		seen[id] = true
	}
	for _, id := range document.OrderableSections() {
		if !seen[id] {
			c.add("sectionOrder", fmt.Sprintf("missing section %q", id))
		}
	}
}

func checkProtection(c *collector, p *document.PasswordProtection) {
	if p != nil && p.Enabled && strings.TrimSpace(p.Password) == "" {
		c.add("passwordProtection.password", "is required when password protection is enabled")
	}
}

func checkAnalytics(c *collector, a *document.Analytics) {
	if a != nil && !measureIDRe.MatchString(a.GoogleAnalytics) {
		c.add("analytics.googleAnalytics", "must be a measurement id such as G-XXXXXXX")
	}
}

func required(c *collector, path, v string) {
	if strings.TrimSpace(v) == "" {
		c.add(path, "is required")
	}
}

func uniqueID(c *collector, path, id string, seen map[string]bool) {
	if strings.TrimSpace(id) == "" {
		c.add(path, "is required")
		return
	}
	if seen[id] {
		c.add(path, fmt.Sprintf("duplicate id %q", id))
	}
	seen[id] = true
}

func color(c *collector, path, v string) {
	if !hexColorRe.MatchString(v) {
		c.add(path, fmt.Sprintf("must be a hex colour like #1a2b3c (got %q)", v))
	}
}

func email(c *collector, path, v string) {
	if v == "" {
		return
	}
	if !IsEmail(v) {
		c.add(path, fmt.Sprintf("invalid email address %q", v))
	}
}

func webURL(c *collector, path, v string) {
	if v == "" {
		return
	}
	if !isWebURL(v) {
		c.add(path, "must be an http or https URL")
	}
}

func assetRef(c *collector, path, v string) {
	switch document.KindOf(v) {
	case document.RefUnsupported:
		c.add(path, "must be a data: URI, a path or an http(s) URL")
	case document.RefURL:
		if !isWebURL(strings.TrimSpace(v)) {
			c.add(path, "malformed URL")
		}
	}
}

func link(c *collector, path, v string) {
	if !IsLink(v) {
		c.add(path, "must be a URL, mailto: or tel: link, #anchor, email address or phone number")
	}
}

// IsEmail reports whether s is a bare email address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsPhone reports whether s looks like a bare phone number.
func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

// IsLink reports whether s is acceptable as a call-to-action target.
func IsLink(s string) bool {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case s == "":
		return true
	case strings.HasPrefix(s, "#"):
		return true
	case strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//"):
		return true
	case strings.HasPrefix(lower, "mailto:"):
		return len(s) > len("mailto:")
	case strings.HasPrefix(lower, "tel:"):
		return len(s) > len("tel:")
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return isWebURL(s)
	}
	return IsEmail(s) || IsPhone(s)
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
