// cmd/landingkit/project.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"landingkit/internal/assets"
	"landingkit/internal/builder"
	"landingkit/internal/config"
	"landingkit/internal/document"
	"landingkit/internal/imaging"
	"landingkit/internal/logging"
	"landingkit/internal/store"
)

// project bundles everything a command needs once landing.yaml is read.
type project struct {
	cfg     config.Config
	fs      afero.Fs
	log     *zap.Logger
	store   *store.Store
	builder *builder.Builder
}

func loadProject() (*project, error) {
	if err := config.LoadEnvFile(filepath.Join(filepath.Dir(configPath), ".env")); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	log := logging.Must(debug)
	fs := afero.NewOsFs()
	p := &project{
		cfg: cfg,
		fs:  fs,
		log: log,
		store: &store.Store{
			Fs:          fs,
			Dir:         cfg.DocumentDir(),
			Name:        cfg.DocumentName(),
			MaxBytes:    cfg.Storage.MaxBytes,
			QuotaBytes:  cfg.Storage.QuotaBytes,
			MaxVersions: cfg.Storage.MaxVersions,
			Logger:      log,
		},
		builder: &builder.Builder{
			Fetcher:     assets.NewLoader(fs, cfg.Path(cfg.Static), cfg.Export.FetchTimeout, cfg.Export.MaxAssetBytes),
			Logger:      log,
			Concurrency: cfg.Export.Concurrency,
			SizeWarning: cfg.Export.SizeWarning,
		},
	}
	return p, nil
}

// document loads the saved document. Unlike the preview server, commands
// refuse to work from defaults the user never saved.
func (p *project) document() (document.Document, error) {
	doc, err := p.store.Load()
	if err != nil {
		return document.Document{}, err
	}
	if doc == nil {
		return document.Document{}, fmt.Errorf("no document at %s; run 'landingkit new' first", p.cfg.Path(p.cfg.Document))
	}
	return *doc, nil
}

func (p *project) imageOptions() imaging.Options {
	return imaging.Options{
		MaxDimension:  p.cfg.Images.MaxDimension,
		Quality:       p.cfg.Images.Quality,
		MaxInputBytes: p.cfg.Images.MaxInputBytes,
	}
}

// writeFileAtomic writes data next to path and renames it into place, so a
// failed export never leaves a partial file behind.
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(name)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(name)
		return err
	}
	if err := fs.Chmod(name, 0644); err != nil {
		fs.Remove(name)
		return err
	}
	if err := fs.Rename(name, path); err != nil {
		fs.Remove(name)
		return fmt.Errorf("failed to move export into place: %w", err)
	}
	return nil
}
