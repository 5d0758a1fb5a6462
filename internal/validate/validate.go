// internal/validate/validate.go

// Package validate checks landing-page documents against the content
// schema. Absent fields fall back to defaults; present but invalid values
// are rejected, never passed through.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"landingkit/internal/document"
)

// Validate decodes raw JSON on top of document.Default and checks the
// result. On failure it returns the zero Document and a *Error listing
// every violation.
func Validate(raw []byte) (document.Document, error) {
	doc := document.Default()
	if err := document.Decode(raw, &doc); err != nil {
		return document.Document{}, decodeError(err)
	}
	normalize(&doc)
	if err := Document(doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

// Document checks an in-memory document. Every violation is collected.
func Document(doc document.Document) error {
	c := &collector{}
	checkHero(c, &doc.Hero)
	checkPitch(c, &doc.Pitch)
	checkTeam(c, &doc.Team)
	checkCaseStudies(c, &doc.CaseStudies)
	checkFAQ(c, &doc.FAQ)
	checkSurprise(c, &doc.SurpriseDelight)
	checkCustomization(c, &doc.Customization)
	checkFooter(c, &doc.Footer)
	checkSectionOrder(c, doc.SectionOrder)
	checkProtection(c, doc.PasswordProtection)
	checkAnalytics(c, doc.Analytics)
	return c.err()
}

// normalize replaces JSON nulls with empty values so later stages never
// branch on nil.
func normalize(doc *document.Document) {
	if doc.Team.Members == nil {
		doc.Team.Members = []document.TeamMember{}
	}
	if doc.CaseStudies.Studies == nil {
		doc.CaseStudies.Studies = []document.CaseStudy{}
	}
	if doc.FAQ.Items == nil {
		doc.FAQ.Items = []document.FAQItem{}
	}
	if doc.SectionOrder == nil {
		doc.SectionOrder = document.OrderableSections()
	}
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = "(root)"
		}
		return &Error{Fields: []FieldError{{
			Path:    path,
			Message: fmt.Sprintf("expected %s, got %s", typeErr.Type.Kind(), typeErr.Value),
		}}}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &Error{Fields: []FieldError{{
			Message: fmt.Sprintf("malformed JSON at offset %d: %s", syntaxErr.Offset, syntaxErr.Error()),
		}}}
	}
	return &Error{Fields: []FieldError{{Message: strings.TrimPrefix(err.Error(), "json: ")}}}
}
