// internal/render/view.go
package render

import (
	"fmt"
	"strings"

	"landingkit/internal/document"
	"landingkit/internal/sanitize"
)

const formspreeEndpoint = "https://formspree.io/f/"

// resolveFunc maps an asset slot to the reference the page should use.
type resolveFunc func(slot, ref string) string

type view struct {
	Inline        bool
	CSP           string
	Title         string
	Description   string
	ThemeColor    string
	Favicon       string
	Logo          string
	CSS           string
	MeasurementID string
	CustomCode    string
	Password      string
	Sections      []sectionView
	Script        string
}

type sectionView struct {
	Kind        string
	Hero        *heroView
	Pitch       *pitchView
	Team        *teamView
	CaseStudies *caseStudiesView
	FAQ         *faqView
	Surprise    *surpriseView
	Footer      *footerView
}

type heroView struct {
	Title      string
	Subtitle   string
	Rich       bool
	RichText   string
	Background string
	Video      string
	ShowCTA    bool
	CTALink    string
	CTAText    string
}

type pitchView struct {
	Title         string
	Description   string
	Rich          bool
	RichText      string
	Embed         string
	Document      string
	DocumentLabel string
	DownloadName  string
	DisplayType   string
}

type memberView struct {
	Name     string
	Role     string
	Bio      string
	Image    string
	LinkedIn string
	Email    string
}

type teamView struct {
	Title    string
	Subtitle string
	Members  []memberView
}

type studyView struct {
	Title        string
	Description  string
	Results      string
	Icon         string
	Document     string
	DownloadName string
	ButtonText   string
}

type caseStudiesView struct {
	Title       string
	Description string
	Studies     []studyView
}

type faqItemView struct {
	Anchor   string
	Question string
	Answer   string
}

type faqView struct {
	Title    string
	Subtitle string
	Items    []faqItemView
}

type surpriseView struct {
	Title      string
	Subtitle   string
	Image      string
	FormTitle  string
	CTAText    string
	FormAction string
}

type footerView struct {
	Copyright string
	CTAText   string
	CTAEmail  string
}

func buildView(doc *document.Document, opts Options, inline bool, resolve resolveFunc) *view {
	v := &view{
		Inline:        inline,
		Title:         doc.Hero.Title,
		Description:   doc.Hero.Subtitle,
		ThemeColor:    color(doc.Customization.PrimaryColor, document.Default().Customization.PrimaryColor),
		MeasurementID: doc.MeasurementID(),
		CustomCode:    doc.CustomCode(),
	}
	if logo := resolve("logo", doc.Customization.Logo); logo != "" {
		v.Logo = logo
		v.Favicon = logo
	}
	if doc.PasswordEnabled() {
		v.Password = doc.PasswordProtection.Password
	}

	for _, s := range doc.Sections() {
		if !s.IsVisible() {
			continue
		}
		sv := sectionView{Kind: string(s.SectionID())}
		switch sec := s.(type) {
		case *document.HeroSection:
			sv.Hero = heroSection(sec, resolve)
		case *document.PitchSection:
			sv.Pitch = pitchSection(sec, resolve)
		case *document.TeamSection:
			sv.Team = teamSection(sec, resolve)
		case *document.CaseStudiesSection:
			sv.CaseStudies = caseStudiesSection(sec, resolve)
		case *document.FAQSection:
			sv.FAQ = faqSection(sec)
		case *document.SurpriseDelightSection:
			sv.Surprise = surpriseSection(sec, resolve)
		case *document.FooterSection:
			sv.Footer = footerSection(sec, opts)
		}
		if sv.empty() {
			continue
		}
		v.Sections = append(v.Sections, sv)
		if sv.FAQ != nil {
			v.Script = faqScript
		}
	}

	v.CSP = contentSecurityPolicy(policyInput{
		inlineScript: inline && v.Script != "",
		password:     v.Password != "",
		analytics:    v.MeasurementID != "",
		customCode:   strings.TrimSpace(v.CustomCode) != "",
	})
	return v
}

// empty reports whether a list section has nothing to show.
func (sv sectionView) empty() bool {
	switch {
	case sv.Team != nil:
		return len(sv.Team.Members) == 0
	case sv.CaseStudies != nil:
		return len(sv.CaseStudies.Studies) == 0
	case sv.FAQ != nil:
		return len(sv.FAQ.Items) == 0
	}
	return sv.Hero == nil && sv.Pitch == nil && sv.Surprise == nil && sv.Footer == nil
}

func heroSection(h *document.HeroSection, resolve resolveFunc) *heroView {
	v := &heroView{
		Title:      h.Title,
		Subtitle:   h.Subtitle,
		Rich:       h.UseRichText && strings.TrimSpace(h.RichTextContent) != "",
		RichText:   h.RichTextContent,
		Background: resolve("heroBackground", h.BackgroundImage),
		Video:      resolve("heroVideo", h.VideoURL),
		CTAText:    h.CTAText,
	}
	if h.ShowCTA {
		v.ShowCTA = true
		v.CTALink = sanitize.NormalizeLink(h.CTALink)
		if v.CTALink == "" {
			v.CTALink = "#contact"
		}
	}
	return v
}

func pitchSection(p *document.PitchSection, resolve resolveFunc) *pitchView {
	v := &pitchView{
		Title:        p.Title,
		Description:  p.Description,
		Rich:         p.UseRichText && strings.TrimSpace(p.RichTextContent) != "",
		RichText:     p.RichTextContent,
		Document:     resolve("pitchDocument", p.DocumentURL),
		DisplayType:  string(p.DisplayType),
		DownloadName: p.DocumentName,
	}
	if strings.TrimSpace(p.HTMLEmbed) != "" {
		v.Embed = p.HTMLEmbed
	}
	v.DocumentLabel = p.DocumentName
	if v.DocumentLabel == "" {
		v.DocumentLabel = "Document"
	}
	if v.DownloadName == "" {
		v.DownloadName = "document"
	}
	if !p.DisplayType.Valid() {
		v.DisplayType = string(document.DisplayDownload)
	}
	return v
}

func teamSection(t *document.TeamSection, resolve resolveFunc) *teamView {
	v := &teamView{Title: t.Title, Subtitle: t.Subtitle}
	for i, m := range t.Members {
		v.Members = append(v.Members, memberView{
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			Image:    resolve(fmt.Sprintf("teamMember_%d", i), m.Image),
			LinkedIn: m.LinkedIn,
			Email:    m.Email,
		})
	}
	return v
}

func caseStudiesSection(c *document.CaseStudiesSection, resolve resolveFunc) *caseStudiesView {
	v := &caseStudiesView{Title: c.Title, Description: c.Description}
	for i, s := range c.Studies {
		sv := studyView{
			Title:        s.Title,
			Description:  s.Description,
			Results:      s.Results,
			Icon:         resolve(fmt.Sprintf("caseStudyIcon_%d", i), s.Icon),
			Document:     resolve(fmt.Sprintf("caseStudyDoc_%d", i), s.DocumentURL),
			DownloadName: s.DocumentName,
			ButtonText:   s.ButtonText,
		}
		if sv.DownloadName == "" {
			sv.DownloadName = "case-study"
		}
		if sv.ButtonText == "" {
			sv.ButtonText = "Download Case Study"
		}
		v.Studies = append(v.Studies, sv)
	}
	return v
}

func faqSection(f *document.FAQSection) *faqView {
	v := &faqView{Title: f.Title, Subtitle: f.Subtitle}
	for i, item := range f.Items {
		v.Items = append(v.Items, faqItemView{
			Anchor:   fmt.Sprintf("faq-%d", i),
			Question: item.Question,
			Answer:   item.Answer,
		})
	}
	return v
}

func surpriseSection(s *document.SurpriseDelightSection, resolve resolveFunc) *surpriseView {
	formID := strings.TrimSpace(s.NotifyEmail)
	if formID == "" {
		formID = "YOUR_FORM_ID"
	}
	return &surpriseView{
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		Image:      resolve("surpriseImage", s.ImageURL),
		FormTitle:  s.FormTitle,
		CTAText:    s.CTAText,
		FormAction: formspreeEndpoint + formID,
	}
}

func footerSection(f *document.FooterSection, opts Options) *footerView {
	v := &footerView{
		Copyright: Year(f.CopyrightText, opts),
		CTAEmail:  strings.TrimSpace(f.CTAEmail),
		CTAText:   f.CTAText,
	}
	if v.CTAText == "" {
		v.CTAText = v.CTAEmail
	}
	return v
}
