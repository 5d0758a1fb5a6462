// internal/config/config.go

// Package config loads the project file landing.yaml and the environment
// overrides that sit on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the project file the CLI looks for by default.
const FileName = "landing.yaml"

// Config holds the configuration from landing.yaml.
type Config struct {
	Title    string `yaml:"title"`
	Document string `yaml:"document"`
	Static   string `yaml:"static"`
	Output   string `yaml:"output"`
	Port     int    `yaml:"port"`

	Export  ExportConfig  `yaml:"export"`
	Storage StorageConfig `yaml:"storage"`
	History HistoryConfig `yaml:"history"`
	Images  ImagesConfig  `yaml:"images"`

	// Root is the directory of the loaded file; relative paths resolve
	// against it.
	Root string `yaml:"-"`
}

type ExportConfig struct {
	SizeWarning   int           `yaml:"sizeWarning"`
	FetchTimeout  time.Duration `yaml:"fetchTimeout"`
	Concurrency   int           `yaml:"concurrency"`
	MaxAssetBytes int64         `yaml:"maxAssetBytes"`
}

type StorageConfig struct {
	MaxBytes    int `yaml:"maxBytes"`
	QuotaBytes  int `yaml:"quotaBytes"`
	MaxVersions int `yaml:"maxVersions"`
}

type HistoryConfig struct {
	Depth int `yaml:"depth"`
}

type ImagesConfig struct {
	MaxDimension  int           `yaml:"maxDimension"`
	Quality       int           `yaml:"quality"`
	MaxInputBytes int           `yaml:"maxInputBytes"`
	Timeout       time.Duration `yaml:"timeout"`
}

func Default() Config {
	return Config{
		Title:    "Landing Page",
		Document: "document.json",
		Static:   "static",
		Output:   "public",
		Port:     8080,
		Export: ExportConfig{
			SizeWarning:   6 << 20,
			FetchTimeout:  15 * time.Second,
			Concurrency:   8,
			MaxAssetBytes: 50 << 20,
		},
		Storage: StorageConfig{
			MaxBytes:    4 << 20,
			QuotaBytes:  10 << 20,
			MaxVersions: 5,
		},
		History: HistoryConfig{Depth: 50},
		Images: ImagesConfig{
			MaxDimension:  1920,
			Quality:       70,
			MaxInputBytes: 10 << 20,
			Timeout:       30 * time.Second,
		},
		Root: ".",
	}
}

// Load overlays the file at path onto Default. Keys the file omits keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	cfg.Root = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default rooted
// at the file's directory.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.Root = filepath.Dir(path)
		return cfg, nil
	}
	return cfg, err
}

// LoadEnvFile reads a .env file into the process environment. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides file values with LANDINGKIT_* variables read through
// getenv (os.Getenv in the CLI).
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, into *string) {
		if v := getenv(key); v != "" {
			*into = v
		}
	}
	str("LANDINGKIT_DOCUMENT", &c.Document)
	str("LANDINGKIT_STATIC", &c.Static)
	str("LANDINGKIT_OUTPUT", &c.Output)

	if v := getenv("LANDINGKIT_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANDINGKIT_PORT: %w", err)
		}
		c.Port = n
	}
	if v := getenv("LANDINGKIT_SIZE_WARNING"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LANDINGKIT_SIZE_WARNING: %w", err)
		}
		c.Export.SizeWarning = n
	}
	if v := getenv("LANDINGKIT_FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("LANDINGKIT_FETCH_TIMEOUT: %w", err)
		}
		c.Export.FetchTimeout = d
	}
	return c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("port %d out of range", c.Port)
	case c.Document == "":
		return errors.New("document path is empty")
	case c.Export.SizeWarning < 0, c.Export.Concurrency < 0, c.Export.MaxAssetBytes < 0:
		return errors.New("export limits must not be negative")
	case c.Export.FetchTimeout < 0, c.Images.Timeout < 0:
		return errors.New("timeouts must not be negative")
	case c.Images.Quality < 0 || c.Images.Quality > 100:
		return fmt.Errorf("image quality %d out of range", c.Images.Quality)
	}
	return nil
}

// Path resolves p against Root unless it is already absolute.
func (c Config) Path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// DocumentDir and DocumentName split the document path for the store.
func (c Config) DocumentDir() string  { return filepath.Dir(c.Path(c.Document)) }
func (c Config) DocumentName() string { return filepath.Base(c.Document) }
