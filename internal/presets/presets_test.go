package presets

import (
	"testing"
)

func TestFAQPresets(t *testing.T) {
	presets, err := FAQPresets()
	if err != nil {
		t.Fatalf("FAQPresets() error = %v", err)
	}
	if len(presets) < 2 {
		t.Fatalf("got %d presets", len(presets))
	}
	for _, p := range presets {
		if p.ID == "" || p.Name == "" || len(p.Questions) == 0 {
			t.Errorf("incomplete preset %+v", p)
		}
		items := p.Items()
		seen := map[string]bool{}
		for _, it := range items {
			if it.Question == "" || it.Answer == "" || seen[it.ID] {
				t.Errorf("%s: bad item %+v", p.ID, it)
			}
			seen[it.ID] = true
		}
	}
}

func TestFindFAQPreset(t *testing.T) {
	p, ok, err := FindFAQPreset("peanuts")
	if err != nil || !ok || p.Name != "Peanuts" {
		t.Errorf("FindFAQPreset(peanuts) = %+v, %v, %v", p, ok, err)
	}
	if _, ok, _ := FindFAQPreset("nope"); ok {
		t.Error("unknown preset found")
	}
}

func TestTeamBioMember(t *testing.T) {
	bios, err := TeamBios()
	if err != nil {
		t.Fatal(err)
	}
	if len(bios) == 0 {
		t.Fatal("no team bios")
	}
	m := bios[0].Member()
	if m.Name != bios[0].Name || m.Role != bios[0].Title {
		t.Errorf("member = %+v", m)
	}
	if m.Image != BioImageDir+bios[0].Image {
		t.Errorf("Image = %q", m.Image)
	}
	if m.ID == "" {
		t.Error("member has no id")
	}
}

func TestSearchTeamBios(t *testing.T) {
	tests := []struct {
		term string
		want int
	}{
		{"", 4},
		{"priya", 1},
		{"DIRECTOR", 2},
		{"nobody", 0},
	}
	for _, tt := range tests {
		got, err := SearchTeamBios(tt.term)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("SearchTeamBios(%q) = %d results, want %d", tt.term, len(got), tt.want)
		}
	}
}
