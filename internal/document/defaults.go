// internal/document/defaults.go
package document

// YearToken is replaced by the current year when the footer renders. The
// stored copyright text always keeps the token.
const YearToken = "{year}"

// Default returns the document a new project starts from. Every call
// returns an independent value.
func Default() Document {
	return Document{
		Hero: HeroSection{
			Title:              "Thanks for having us!",
			Subtitle:           "It was an honor and a privilege to be considered for your RFP and for the time that we shared. In case you forgot anything we shared, please have a look around.",
			CTAText:            "Be in Touch",
			CTALink:            "#contact",
			SelectedBackground: "gradient-magenta",
			Visible:            true,
			ShowCTA:            true,
			BackgroundFit:      FitCover,
			BackgroundPosition: PositionCenter,
		},
		Pitch: PitchSection{
			Title:       "What we shared with you",
			Description: "In case you missed it, here's a refresher of what we shared with you in our presentation",
			DisplayType: DisplayInline,
			Visible:     true,
		},
		Team: TeamSection{
			Title:    "Meet Your Team",
			Subtitle: "The folks on your side throughout the work",
			Members:  []TeamMember{},
			Visible:  true,
		},
		CaseStudies: CaseStudiesSection{
			Title:       "Show Your Work",
			Description: "We have loads of experience and here are some relevant case studies from our recent work",
			Studies:     []CaseStudy{},
			Visible:     true,
		},
		FAQ: FAQSection{
			Title:    "Learn more about Precision AQ",
			Subtitle: "Additional background on Precision AQ and other things",
			Items:    []FAQItem{},
			Visible:  true,
		},
		SurpriseDelight: SurpriseDelightSection{
			Title:     "Know what's keeping you up at night",
			Subtitle:  "With our partnership, you can sleep easy knowing we have your back. Now, the only thing keeping you up will be the coffee!",
			ImageURL:  "/coffee-cup-wooden-table.png",
			FormTitle: "Free cup on us!",
			CTAText:   "Give Me Coffee",
			Visible:   true,
		},
		Customization: Customization{
			PrimaryColor:   "#cb009f",
			SecondaryColor: "#850064",
			AccentColor:    "#0f1822",
			FontFamily:     "Proxima Nova, Arial, sans-serif",
			Logo:           "/logos/precision-aq-logo-full-color.png",
			Theme:          ThemeDefault,
		},
		Footer: FooterSection{
			CopyrightText:   "© " + YearToken + " Precision AQ. All rights reserved.",
			CTAText:         "Get in touch with Precision",
			CTAEmail:        "hello@precisionaq.com",
			BackgroundColor: "#111827",
			TextColor:       "#ffffff",
			CTAButtonColor:  "#2563eb",
		},
		SectionOrder:       OrderableSections(),
		PasswordProtection: &PasswordProtection{},
		Analytics:          &Analytics{},
	}
}
