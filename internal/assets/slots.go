// internal/assets/slots.go
package assets

import (
	"fmt"
	"strings"

	"landingkit/internal/document"
)

// Kind groups assets by the folder they are bundled into.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindDocument Kind = "document"
)

// Dir is the bundle folder for the kind, e.g. "images".
func (k Kind) Dir() string {
	return string(k) + "s"
}

// accepts reports whether fetched content of mimeType is plausible for the
// kind. An HTML error page served with 200 is not an image.
func (k Kind) accepts(mimeType string) bool {
	switch k {
	case KindImage:
		return strings.HasPrefix(mimeType, "image/")
	case KindVideo:
		return strings.HasPrefix(mimeType, "video/")
	}
	return mimeType != "text/html"
}

// Slot is one asset-reference field of a document, addressed by a stable
// logical name such as "teamMember_2".
type Slot struct {
	Name string
	Kind Kind
	get  func(*document.Document) *string
}

// Get returns the slot's current reference.
func (s Slot) Get(d *document.Document) string {
	return *s.get(d)
}

// Set replaces the slot's reference.
func (s Slot) Set(d *document.Document, ref string) {
	*s.get(d) = ref
}

// Slots lists every asset-reference field of d in a fixed order.
func Slots(d *document.Document) []Slot {
	slots := []Slot{
		{Name: "logo", Kind: KindImage, get: func(d *document.Document) *string { return &d.Customization.Logo }},
		{Name: "heroBackground", Kind: KindImage, get: func(d *document.Document) *string { return &d.Hero.BackgroundImage }},
		{Name: "heroVideo", Kind: KindVideo, get: func(d *document.Document) *string { return &d.Hero.VideoURL }},
	}
	for i := range d.Team.Members {
		slots = append(slots, Slot{
			Name: fmt.Sprintf("teamMember_%d", i),
			Kind: KindImage,
			get:  func(d *document.Document) *string { return &d.Team.Members[i].Image },
		})
	}
	for i := range d.CaseStudies.Studies {
		slots = append(slots,
			Slot{
				Name: fmt.Sprintf("caseStudyIcon_%d", i),
				Kind: KindImage,
				get:  func(d *document.Document) *string { return &d.CaseStudies.Studies[i].Icon },
			},
			Slot{
				Name: fmt.Sprintf("caseStudyDoc_%d", i),
				Kind: KindDocument,
				get:  func(d *document.Document) *string { return &d.CaseStudies.Studies[i].DocumentURL },
			},
		)
	}
	slots = append(slots,
		Slot{Name: "surpriseImage", Kind: KindImage, get: func(d *document.Document) *string { return &d.SurpriseDelight.ImageURL }},
		Slot{Name: "pitchDocument", Kind: KindDocument, get: func(d *document.Document) *string { return &d.Pitch.DocumentURL }},
	)
	return slots
}

// SlotByName finds a slot by logical name.
func SlotByName(d *document.Document, name string) (Slot, bool) {
	for _, s := range Slots(d) {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}
