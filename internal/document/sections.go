// internal/document/sections.go
package document

// SectionID identifies one of the orderable sections. Customization is
// deliberately not a SectionID: it has no place in the page order.
type SectionID string

const (
	SectionHero            SectionID = "hero"
	SectionPitch           SectionID = "pitch"
	SectionTeam            SectionID = "team"
	SectionCaseStudies     SectionID = "caseStudies"
	SectionFAQ             SectionID = "faq"
	SectionSurpriseDelight SectionID = "surpriseDelight"
	SectionFooter          SectionID = "footer"
)

// OrderableSections returns the canonical section order. The result is a
// fresh slice.
func OrderableSections() []SectionID {
	return []SectionID{
		SectionHero,
		SectionPitch,
		SectionTeam,
		SectionCaseStudies,
		SectionFAQ,
		SectionSurpriseDelight,
		SectionFooter,
	}
}

func (id SectionID) Valid() bool {
	for _, s := range OrderableSections() {
		if s == id {
			return true
		}
	}
	return false
}

// Section is implemented by exactly the seven section types.
type Section interface {
	SectionID() SectionID
	IsVisible() bool
	section()
}

func (*HeroSection) SectionID() SectionID            { return SectionHero }
func (*PitchSection) SectionID() SectionID           { return SectionPitch }
func (*TeamSection) SectionID() SectionID            { return SectionTeam }
func (*CaseStudiesSection) SectionID() SectionID     { return SectionCaseStudies }
func (*FAQSection) SectionID() SectionID             { return SectionFAQ }
func (*SurpriseDelightSection) SectionID() SectionID { return SectionSurpriseDelight }
func (*FooterSection) SectionID() SectionID          { return SectionFooter }

func (s *HeroSection) IsVisible() bool            { return s.Visible }
func (s *PitchSection) IsVisible() bool           { return s.Visible }
func (s *TeamSection) IsVisible() bool            { return s.Visible }
func (s *CaseStudiesSection) IsVisible() bool     { return s.Visible }
func (s *FAQSection) IsVisible() bool             { return s.Visible }
func (s *SurpriseDelightSection) IsVisible() bool { return s.Visible }
func (*FooterSection) IsVisible() bool            { return true }

func (*HeroSection) section()            {}
func (*PitchSection) section()           {}
func (*TeamSection) section()            {}
func (*CaseStudiesSection) section()     {}
func (*FAQSection) section()             {}
func (*SurpriseDelightSection) section() {}
func (*FooterSection) section()          {}

// Section returns the section with the given id.
func (d *Document) Section(id SectionID) (Section, bool) {
	switch id {
	case SectionHero:
		return &d.Hero, true
	case SectionPitch:
		return &d.Pitch, true
	case SectionTeam:
		return &d.Team, true
	case SectionCaseStudies:
		return &d.CaseStudies, true
	case SectionFAQ:
		return &d.FAQ, true
	case SectionSurpriseDelight:
		return &d.SurpriseDelight, true
	case SectionFooter:
		return &d.Footer, true
	}
	return nil, false
}

// Sections returns the sections in SectionOrder. Unknown ids are skipped and
// any orderable section missing from the order is appended in canonical
// position, so the footer can never be lost.
func (d *Document) Sections() []Section {
	seen := make(map[SectionID]bool, len(d.SectionOrder))
	out := make([]Section, 0, len(OrderableSections()))
	for _, id := range d.SectionOrder {
		if seen[id] {
			continue
		}
		if s, ok := d.Section(id); ok {
			seen[id] = true
			out = append(out, s)
		}
	}
	for _, id := range OrderableSections() {
		if !seen[id] {
			s, _ := d.Section(id)
			out = append(out, s)
		}
	}
	return out
}
