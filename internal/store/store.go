// internal/store/store.go

// Package store persists the working document on disk, keeping a small
// side-store of previous versions that is sacrificed first when space runs
// out.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"landingkit/internal/document"
	"landingkit/internal/validate"
)

var (
	ErrSizeExceeded    = errors.New("document exceeds the storage size limit")
	ErrQuotaExceeded   = errors.New("storage quota exceeded; export your data and free some space")
	ErrVersionNotFound = errors.New("version not found")
	errNoSpace         = errors.New("no space left")
)

const (
	DefaultMaxBytes    = 4 << 20
	DefaultQuotaBytes  = 10 << 20
	DefaultMaxVersions = 5
	DefaultName        = "document.json"

	versionsDir = ".landingkit/versions"
)

// Store reads and writes one document file under Dir.
type Store struct {
	Fs          afero.Fs
	Dir         string
	Name        string // document file name; DefaultName when empty
	MaxBytes    int
	QuotaBytes  int
	MaxVersions int
	Logger      *zap.Logger
	Now         func() time.Time
}

// Usage is how much of the quota the document and its versions occupy.
type Usage struct {
	Used    int
	Max     int
	Percent float64
}

func (s *Store) path() string {
	name := s.Name
	if name == "" {
		name = DefaultName
	}
	return filepath.Join(s.Dir, name)
}

func (s *Store) versionsPath() string {
	return filepath.Join(s.Dir, filepath.FromSlash(versionsDir))
}

func (s *Store) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Save writes doc. The document it replaces is kept as a version. When the
// write would exceed the quota the versions are cleared and the write is
// tried once more.
func (s *Store) Save(doc document.Document) error {
	data, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if max := orDefault(s.MaxBytes, DefaultMaxBytes); len(data) > max {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrSizeExceeded, len(data), max)
	}

	if err := s.archiveCurrent(data); err != nil {
		s.log().Warn("version snapshot skipped", zap.Error(err))
	}

	err = s.write(data)
	if err == nil || !errors.Is(err, errNoSpace) {
		return err
	}

	s.log().Warn("storage quota reached; clearing version history", zap.Error(err))
	if err := s.ClearVersions(); err != nil {
		return err
	}
	if err := s.write(data); err != nil {
		if errors.Is(err, errNoSpace) {
			return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
		}
		return err
	}
	return nil
}

func (s *Store) write(data []byte) error {
	u, err := s.Usage()
	if err != nil {
		return err
	}
	current := 0
	if fi, err := s.Fs.Stat(s.path()); err == nil {
		current = int(fi.Size())
	}
	if u.Used-current+len(data) > u.Max {
		return fmt.Errorf("%w: %d of %d bytes in use", errNoSpace, u.Used, u.Max)
	}

	if err := s.Fs.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	tmp := s.path() + ".tmp"
	if err := afero.WriteFile(s.Fs, tmp, data, 0644); err != nil {
		_ = s.Fs.Remove(tmp)
		if errors.Is(err, syscall.ENOSPC) {
			return fmt.Errorf("%w: %v", errNoSpace, err)
		}
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := s.Fs.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path(), err)
	}
	return nil
}

// Load returns the saved document, or nil when nothing has been saved.
// Stored content is validated like any other input.
func (s *Store) Load() (*document.Document, error) {
	data, err := afero.ReadFile(s.Fs, s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path(), err)
	}
	doc, err := validate.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("stored document is invalid: %w", err)
	}
	return &doc, nil
}

// Usage sums the document and every stored version.
func (s *Store) Usage() (Usage, error) {
	used := 0
	if fi, err := s.Fs.Stat(s.path()); err == nil {
		used += int(fi.Size())
	}
	versions, err := s.Versions()
	if err != nil {
		return Usage{}, err
	}
	for _, v := range versions {
		used += v.Size
	}
	max := orDefault(s.QuotaBytes, DefaultQuotaBytes)
	return Usage{Used: used, Max: max, Percent: float64(used) / float64(max) * 100}, nil
}

// archiveCurrent copies the document on disk into the versions store
// unless it is identical to next.
func (s *Store) archiveCurrent(next []byte) error {
	cur, err := afero.ReadFile(s.Fs, s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if bytes.Equal(cur, next) {
		return nil
	}
	return s.addVersion(cur)
}
