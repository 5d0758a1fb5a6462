package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"landingkit/internal/document"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := writeFileAtomic(fs, "/out/landing-page.html", []byte("v1")); err != nil {
		t.Fatalf("writeFileAtomic() error = %v", err)
	}
	if err := writeFileAtomic(fs, "/out/landing-page.html", []byte("v2")); err != nil {
		t.Fatalf("overwrite error = %v", err)
	}
	got, err := afero.ReadFile(fs, "/out/landing-page.html")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "v2" {
		t.Errorf("got %q, want v2", got)
	}
	entries, err := afero.ReadDir(fs, "/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"new", "validate", "gen", "export", "size", "serve", "import-csv",
		"export-csv", "richtext", "embed", "image", "versions", "restore", "preset"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestSetPitchEmbed(t *testing.T) {
	doc := document.Default()
	setPitchEmbed(&doc, `<iframe src="https://player.vimeo.com/video/1" allowfullscreen></iframe><script>alert(1)</script>`)
	if !strings.Contains(doc.Pitch.HTMLEmbed, `src="https://player.vimeo.com/video/1"`) {
		t.Errorf("iframe dropped: %q", doc.Pitch.HTMLEmbed)
	}
	if strings.Contains(doc.Pitch.HTMLEmbed, "<script") {
		t.Errorf("script kept: %q", doc.Pitch.HTMLEmbed)
	}

	setPitchEmbed(&doc, "  \n")
	if doc.Pitch.HTMLEmbed != "" {
		t.Errorf("blank snippet stored as %q", doc.Pitch.HTMLEmbed)
	}
}
