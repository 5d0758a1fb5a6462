package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
title: Pitch for Acme
port: 9000
export:
  fetchTimeout: 5s
images:
  quality: 85
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title != "Pitch for Acme" || cfg.Port != 9000 {
		t.Errorf("got title %q port %d", cfg.Title, cfg.Port)
	}
	if cfg.Export.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.Export.FetchTimeout)
	}
	if cfg.Images.Quality != 85 {
		t.Errorf("Quality = %d, want 85", cfg.Images.Quality)
	}
	def := Default()
	if cfg.Export.SizeWarning != def.Export.SizeWarning || cfg.Storage != def.Storage {
		t.Error("omitted keys lost their defaults")
	}
	if cfg.Root != filepath.Dir(path) {
		t.Errorf("Root = %q", cfg.Root)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "port: [1"},
		{"bad port", "port: 0"},
		{"bad quality", "images:\n  quality: 101"},
		{"bad duration", "export:\n  fetchTimeout: soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Root != dir || cfg.Port != 8080 {
		t.Errorf("got root %q port %d", cfg.Root, cfg.Port)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"LANDINGKIT_DOCUMENT":      "site.json",
		"LANDINGKIT_PORT":          "3000",
		"LANDINGKIT_SIZE_WARNING":  "1024",
		"LANDINGKIT_FETCH_TIMEOUT": "2s",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Document != "site.json" || cfg.Port != 3000 || cfg.Export.SizeWarning != 1024 || cfg.Export.FetchTimeout != 2*time.Second {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Static != "static" {
		t.Errorf("unset variable changed Static to %q", cfg.Static)
	}

	cfg = Default()
	if err := cfg.ApplyEnv(func(k string) string {
		if k == "LANDINGKIT_PORT" {
			return "eighty"
		}
		return ""
	}); err == nil {
		t.Error("ApplyEnv() accepted a non-numeric port")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LANDINGKIT_TEST_VALUE=from-env-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LANDINGKIT_TEST_VALUE", "")
	os.Unsetenv("LANDINGKIT_TEST_VALUE")
	if err := LoadEnvFile(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("LANDINGKIT_TEST_VALUE"); got != "from-env-file" {
		t.Errorf("got %q, want from-env-file", got)
	}
}

func TestPath(t *testing.T) {
	cfg := Default()
	cfg.Root = "/srv/site"
	if got := cfg.Path("static"); got != filepath.Join("/srv/site", "static") {
		t.Errorf("Path(static) = %q", got)
	}
	if got := cfg.Path("/abs/out"); got != "/abs/out" {
		t.Errorf("Path(/abs/out) = %q", got)
	}
	cfg.Document = "data/page.json"
	if cfg.DocumentDir() != filepath.Join("/srv/site", "data") || cfg.DocumentName() != "page.json" {
		t.Errorf("document split = %q %q", cfg.DocumentDir(), cfg.DocumentName())
	}
}
