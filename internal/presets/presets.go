// internal/presets/presets.go

// Package presets serves the read-only FAQ sets and team biographies the
// editor offers as starting points.
package presets

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"landingkit/internal/document"
)

//go:embed data/*.json
var dataFS embed.FS

// BioImageDir is where preset headshots live under the static directory.
const BioImageDir = "/bios/bio images/"

type FAQPreset struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Questions []FAQQuestion `json:"questions"`
}

type FAQQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Items converts the preset into FAQ items with fresh ids.
func (p FAQPreset) Items() []document.FAQItem {
	items := make([]document.FAQItem, 0, len(p.Questions))
	for _, q := range p.Questions {
		items = append(items, document.FAQItem{ID: uuid.NewString(), Question: q.Question, Answer: q.Answer})
	}
	return items
}

// TeamBio mirrors the team-bios feed, whose keys are capitalised.
type TeamBio struct {
	Name     string `json:"Name"`
	Title    string `json:"Title"`
	Bio      string `json:"Bio"`
	LinkedIn string `json:"LinkedIn"`
	Image    string `json:"Image"`
	Email    string `json:"Email,omitempty"`
}

// Member converts the bio into a team member with a fresh id.
func (b TeamBio) Member() document.TeamMember {
	m := document.TeamMember{
		ID:       uuid.NewString(),
		Name:     b.Name,
		Role:     b.Title,
		Bio:      b.Bio,
		LinkedIn: b.LinkedIn,
		Email:    b.Email,
	}
	if b.Image != "" {
		m.Image = BioImageDir + b.Image
	}
	return m
}

func FAQPresets() ([]FAQPreset, error) {
	var out []FAQPreset
	if err := load("data/faq-presets.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindFAQPreset looks a preset up by id.
func FindFAQPreset(id string) (FAQPreset, bool, error) {
	all, err := FAQPresets()
	if err != nil {
		return FAQPreset{}, false, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, true, nil
		}
	}
	return FAQPreset{}, false, nil
}

func TeamBios() ([]TeamBio, error) {
	var out []TeamBio
	if err := load("data/team-bios.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTeamBios filters bios by a case-insensitive match on name or
// title. An empty term returns everything.
func SearchTeamBios(term string) ([]TeamBio, error) {
	all, err := TeamBios()
	if err != nil {
		return nil, err
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all, nil
	}
	var out []TeamBio
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Name), term) || strings.Contains(strings.ToLower(b.Title), term) {
			out = append(out, b)
		}
	}
	return out, nil
}

func load(name string, into any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
