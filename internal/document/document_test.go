package document

import (
	"reflect"
	"testing"
)

func TestDefaultRoundTrip(t *testing.T) {
	want := Default()
	want.Team.Members = []TeamMember{{ID: "m1", Name: "Ada", Role: "Engineer", Email: "ada@example.com"}}
	want.FAQ.Items = []FAQItem{{ID: "q1", Question: "Why?", Answer: "<p>Because</p>"}}

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got Document
	if err := Decode(data, &got); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestDecodeKeepsDefaultsForAbsentKeys(t *testing.T) {
	d := Default()
	if err := Decode([]byte(`{"hero":{"title":"Hello"}}`), &d); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if d.Hero.Title != "Hello" {
		t.Errorf("hero title = %q, want %q", d.Hero.Title, "Hello")
	}
	if !d.Hero.ShowCTA {
		t.Error("showCta default lost")
	}
	if d.Customization.PrimaryColor != "#cb009f" {
		t.Errorf("primary color = %q, want default", d.Customization.PrimaryColor)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Default()
	orig.Team.Members = []TeamMember{{ID: "a", Name: "A", Image: "/a.png"}}
	c := orig.Clone()
	c.Team.Members[0].Image = "data:image/png;base64,AAAA"
	c.PasswordProtection.Password = "secret"
	c.SectionOrder[0] = SectionFooter

	if orig.Team.Members[0].Image != "/a.png" {
		t.Error("clone shares member slice")
	}
	if orig.PasswordProtection.Password != "" {
		t.Error("clone shares password pointer")
	}
	if orig.SectionOrder[0] != SectionHero {
		t.Error("clone shares section order")
	}
}

func TestSectionsFollowOrder(t *testing.T) {
	d := Default()
	d.SectionOrder = []SectionID{SectionFAQ, SectionHero, SectionFAQ, "bogus"}
	var got []SectionID
	for _, s := range d.Sections() {
		got = append(got, s.SectionID())
	}
	want := []SectionID{SectionFAQ, SectionHero, SectionPitch, SectionTeam, SectionCaseStudies, SectionSurpriseDelight, SectionFooter}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %v, want %v", got, want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   string
		want RefKind
	}{
		{"", RefEmpty},
		{"  ", RefEmpty},
		{"data:image/png;base64,AAAA", RefDataURI},
		{"https://cdn.example.com/a.png", RefURL},
		{"HTTP://example.com/a.png", RefURL},
		{"/logos/logo.png", RefPath},
		{"images/a.png", RefPath},
		{"javascript:alert(1)", RefUnsupported},
		{"//evil.example.com/x.png", RefUnsupported},
	}
	for _, tt := range tests {
		if got := KindOf(tt.in); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFooterIsAlwaysVisible(t *testing.T) {
	d := Default()
	s, ok := d.Section(SectionFooter)
	if !ok || !s.IsVisible() {
		t.Fatal("footer must always be visible")
	}
}
