// internal/document/document.go

// Package document holds the landing-page content model: the sections a
// page is made of, their presentation settings, and the default instance a
// new project starts from.
package document

// Document is the single source of truth for a landing page. Field names
// on the wire are camelCase so exported JSON re-imports unchanged.
type Document struct {
	Hero               HeroSection            `json:"hero"`
	Pitch              PitchSection           `json:"pitch"`
	Team               TeamSection            `json:"team"`
	CaseStudies        CaseStudiesSection     `json:"caseStudies"`
	FAQ                FAQSection             `json:"faq"`
	SurpriseDelight    SurpriseDelightSection `json:"surpriseDelight"`
	Customization      Customization          `json:"customization"`
	Footer             FooterSection          `json:"footer"`
	SectionOrder       []SectionID            `json:"sectionOrder"`
	PasswordProtection *PasswordProtection    `json:"passwordProtection,omitempty"`
	Analytics          *Analytics             `json:"analytics,omitempty"`
}

type HeroSection struct {
	Title              string             `json:"title"`
	Subtitle           string             `json:"subtitle"`
	CTAText            string             `json:"ctaText"`
	CTALink            string             `json:"ctaLink"`
	VideoURL           string             `json:"videoUrl"`
	BackgroundImage    string             `json:"backgroundImage"`
	SelectedBackground string             `json:"selectedBackground"`
	Visible            bool               `json:"visible"`
	UseRichText        bool               `json:"useRichText"`
	RichTextContent    string             `json:"richTextContent"`
	ShowCTA            bool               `json:"showCta"`
	BackgroundFit      BackgroundFit      `json:"backgroundFit"`
	BackgroundPosition BackgroundPosition `json:"backgroundPosition"`
}

type PitchSection struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	DocumentURL     string      `json:"documentUrl"`
	DocumentName    string      `json:"documentName"`
	DisplayType     DisplayType `json:"displayType"`
	Visible         bool        `json:"visible"`
	UseRichText     bool        `json:"useRichText"`
	RichTextContent string      `json:"richTextContent"`
	// HTMLEmbed is raw author HTML; it is sanitized before it reaches a page.
	HTMLEmbed string `json:"htmlEmbed"`
}

type TeamSection struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Members  []TeamMember `json:"members"`
	Visible  bool         `json:"visible"`
}

type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email"`
}

type CaseStudiesSection struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Studies     []CaseStudy `json:"studies"`
	Visible     bool        `json:"visible"`
}

type CaseStudy struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Results      string `json:"results"`
	Icon         string `json:"icon"`
	DocumentURL  string `json:"documentUrl"`
	DocumentName string `json:"documentName"`
	ButtonText   string `json:"buttonText"`
}

type FAQSection struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Items    []FAQItem `json:"items"`
	Visible  bool      `json:"visible"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SurpriseDelightSection struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	ImageURL    string `json:"imageUrl"`
	FormTitle   string `json:"formTitle"`
	CTAText     string `json:"ctaText"`
	NotifyEmail string `json:"notifyEmail"`
	Visible     bool   `json:"visible"`
}

// FooterSection has no visibility flag; a page always ends with it.
type FooterSection struct {
	CopyrightText   string `json:"copyrightText"`
	CTAText         string `json:"ctaText"`
	CTAEmail        string `json:"ctaEmail"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	CTAButtonColor  string `json:"ctaButtonColor"`
}

type Customization struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	FontFamily     string `json:"fontFamily"`
	Logo           string `json:"logo"`
	Theme          Theme  `json:"theme"`
}

type PasswordProtection struct {
	Enabled  bool   `json:"enabled"`
	Password string `json:"password"`
}

type Analytics struct {
	GoogleAnalytics string `json:"googleAnalytics"`
	CustomCode      string `json:"customCode"`
}

// PasswordEnabled reports whether the page should carry the password gate.
func (d *Document) PasswordEnabled() bool {
	return d.PasswordProtection != nil && d.PasswordProtection.Enabled && d.PasswordProtection.Password != ""
}

// MeasurementID returns the Google Analytics id, or "".
func (d *Document) MeasurementID() string {
	if d.Analytics == nil {
		return ""
	}
	return d.Analytics.GoogleAnalytics
}

// CustomCode returns the author's analytics snippet, or "".
func (d *Document) CustomCode() string {
	if d.Analytics == nil {
		return ""
	}
	return d.Analytics.CustomCode
}

// Clone returns a deep copy. Exports work on a clone so asset rewriting
// never touches the live document.
func (d Document) Clone() Document {
	c := d
	c.Team.Members = append([]TeamMember(nil), d.Team.Members...)
	c.CaseStudies.Studies = append([]CaseStudy(nil), d.CaseStudies.Studies...)
	c.FAQ.Items = append([]FAQItem(nil), d.FAQ.Items...)
	c.SectionOrder = append([]SectionID(nil), d.SectionOrder...)
	if d.PasswordProtection != nil {
		pp := *d.PasswordProtection
		c.PasswordProtection = &pp
	}
	if d.Analytics != nil {
		a := *d.Analytics
		c.Analytics = &a
	}
	return c
}
