package scaffold

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"landingkit/internal/config"
	"landingkit/internal/teamcsv"
	"landingkit/internal/validate"
)

func TestCreateNewProject(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := CreateNewProject(fs, "/site", "Acme's Pitch"); err != nil {
		t.Fatalf("CreateNewProject() error = %v", err)
	}

	for _, p := range []string{
		"/site/static/icons",
		"/site/static/bios",
		"/site/static/logos/precision-aq-logo-full-color.png",
		"/site/static/coffee-cup-wooden-table.png",
		"/site/static/professional-headshot.png",
		"/site/.gitignore",
	} {
		if ok, _ := afero.Exists(fs, p); !ok {
			t.Errorf("missing %s", p)
		}
	}

	logo, err := afero.ReadFile(fs, "/site/static/logos/precision-aq-logo-full-color.png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(logo, []byte("\x89PNG")) {
		t.Error("logo placeholder is not a PNG")
	}

	raw, err := afero.ReadFile(fs, "/site/document.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := validate.Validate(raw); err != nil {
		t.Errorf("scaffolded document does not validate: %v", err)
	}

	cfgData, err := afero.ReadFile(fs, "/site/landing.yaml")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		t.Fatalf("landing.yaml does not parse: %v", err)
	}
	if cfg.Title != "Acme's Pitch" {
		t.Errorf("title = %q", cfg.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("landing.yaml is invalid: %v", err)
	}

	csvFile, err := fs.Open("/site/team.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer csvFile.Close()
	members, err := teamcsv.Parse(csvFile)
	if err != nil || len(members) == 0 {
		t.Errorf("sample team.csv: %d members, err %v", len(members), err)
	}
}

func TestCreateNewProjectRefusesExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := CreateNewProject(fs, "/site", ""); err != nil {
		t.Fatal(err)
	}
	if err := CreateNewProject(fs, "/site", ""); !errors.Is(err, ErrProjectExists) {
		t.Errorf("second CreateNewProject() error = %v, want ErrProjectExists", err)
	}
}
