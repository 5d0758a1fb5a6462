package validate

import (
	"errors"
	"testing"

	"landingkit/internal/document"
)

func TestValidateMergesDefaults(t *testing.T) {
	doc, err := Validate([]byte(`{"hero":{"title":"Welcome aboard"}}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if doc.Hero.Title != "Welcome aboard" {
		t.Errorf("hero title = %q, want %q", doc.Hero.Title, "Welcome aboard")
	}
	if doc.Footer.CTAEmail != "hello@precisionaq.com" {
		t.Errorf("footer email = %q, want default", doc.Footer.CTAEmail)
	}
	if doc.Team.Members == nil {
		t.Error("members should be an empty slice, not nil")
	}
}

func TestValidateEmptyObjectIsDefault(t *testing.T) {
	if _, err := Validate([]byte(`{}`)); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		path string
	}{
		{"blank hero title", `{"hero":{"title":"  "}}`, "hero.title"},
		{"bad display type", `{"pitch":{"displayType":"popup"}}`, "pitch.displayType"},
		{"bad fit", `{"hero":{"backgroundFit":"stretch"}}`, "hero.backgroundFit"},
		{"bad position", `{"hero":{"backgroundPosition":"middle"}}`, "hero.backgroundPosition"},
		{"bad color", `{"customization":{"primaryColor":"red"}}`, "customization.primaryColor"},
		{"short color", `{"footer":{"textColor":"#fff"}}`, "footer.textColor"},
		{"css injection in font", `{"customization":{"fontFamily":"Arial;}body{display:none"}}`, "customization.fontFamily"},
		{"bad theme", `{"customization":{"theme":"neon"}}`, "customization.theme"},
		{"javascript logo", `{"customization":{"logo":"javascript:alert(1)"}}`, "customization.logo"},
		{"javascript cta", `{"hero":{"ctaLink":"javascript:alert(1)"}}`, "hero.ctaLink"},
		{"bad email", `{"team":{"members":[{"id":"a","name":"A","email":"not-an-email"}]}}`, "team.members.0.email"},
		{"bad linkedin", `{"team":{"members":[{"id":"a","name":"A","linkedin":"ftp://x"}]}}`, "team.members.0.linkedin"},
		{"missing member name", `{"team":{"members":[{"id":"a","name":""}]}}`, "team.members.0.name"},
		{"duplicate member id", `{"team":{"members":[{"id":"a","name":"A"},{"id":"a","name":"B"}]}}`, "team.members.1.id"},
		{"faq without answer", `{"faq":{"items":[{"id":"q","question":"Why?","answer":""}]}}`, "faq.items.0.answer"},
		{"unknown section", `{"sectionOrder":["hero","pitch","team","caseStudies","faq","surpriseDelight","footer","customization"]}`, "sectionOrder.7"},
		{"duplicate section", `{"sectionOrder":["hero","hero","pitch","team","caseStudies","faq","surpriseDelight","footer"]}`, "sectionOrder.1"},
		{"missing section", `{"sectionOrder":["hero","pitch","team","caseStudies","faq","surpriseDelight"]}`, "sectionOrder"},
		{"password enabled without password", `{"passwordProtection":{"enabled":true,"password":""}}`, "passwordProtection.password"},
		{"bad measurement id", `{"analytics":{"googleAnalytics":"G-1');alert(1)//"}}`, "analytics.googleAnalytics"},
		{"wrong type", `{"hero":{"visible":"yes"}}`, "hero.visible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Validate([]byte(tt.json))
			if err == nil {
				t.Fatalf("Validate(%s) succeeded, want error at %s", tt.json, tt.path)
			}
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if !verr.Has(tt.path) {
				t.Errorf("errors = %q, want one at %q", verr.All(), tt.path)
			}
			if doc.Hero.Title != "" {
				t.Error("invalid input must not pass through")
			}
		})
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	_, err := Validate([]byte(`{"hero":{"title":""},"pitch":{"title":""},"customization":{"accentColor":"blue"}}`))
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *Error", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("got %d violations (%s), want 3", len(verr.Fields), verr.All())
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"hero":`)); err == nil {
		t.Fatal("malformed JSON must fail")
	}
}

func TestIsLink(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"#contact", true},
		{"/pricing", true},
		{"https://example.com/path?q=1", true},
		{"mailto:hi@example.com", true},
		{"tel:+15551234567", true},
		{"hi@example.com", true},
		{"555-123-4567", true},
		{"+44 20 7946 0958", true},
		{"javascript:alert(1)", false},
		{"//evil.example.com", false},
		{"https://", false},
		{"call us maybe", false},
	}
	for _, tt := range tests {
		if got := IsLink(tt.in); got != tt.want {
			t.Errorf("IsLink(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDocumentAcceptsDefault(t *testing.T) {
	if err := Document(document.Default()); err != nil {
		t.Fatalf("Document(Default()) = %v", err)
	}
}
