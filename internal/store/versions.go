// internal/store/versions.go
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"landingkit/internal/document"
	"landingkit/internal/validate"
)

const versionLayout = "20060102T150405.000000000Z"

var versionIDRe = regexp.MustCompile(`^[0-9]{8}T[0-9]{6}\.[0-9]{9}Z$`)

// Version describes one stored snapshot. IDs sort chronologically.
type Version struct {
	ID      string
	SavedAt time.Time
	Size    int
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Store) addVersion(data []byte) error {
	dir := s.versionsPath()
	if err := s.Fs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	id := s.now().UTC().Format(versionLayout)
	if err := afero.WriteFile(s.Fs, filepath.Join(dir, id+".json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write version %s: %w", id, err)
	}
	return s.prune()
}

// prune drops the oldest versions beyond MaxVersions.
func (s *Store) prune() error {
	versions, err := s.Versions()
	if err != nil {
		return err
	}
	keep := orDefault(s.MaxVersions, DefaultMaxVersions)
	for _, v := range versions[min(keep, len(versions)):] {
		if err := s.Fs.Remove(filepath.Join(s.versionsPath(), v.ID+".json")); err != nil {
			return err
		}
	}
	return nil
}

// Versions lists stored versions, newest first.
func (s *Store) Versions() ([]Version, error) {
	entries, err := afero.ReadDir(s.Fs, s.versionsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []Version
	for _, e := range entries {
		id := strings.TrimSuffix(e.Name(), ".json")
		if e.IsDir() || !versionIDRe.MatchString(id) {
			continue
		}
		at, err := time.Parse(versionLayout, id)
		if err != nil {
			continue
		}
		out = append(out, Version{ID: id, SavedAt: at, Size: int(e.Size())})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Restore makes version id the current document. The document it
// replaces becomes a version in turn.
func (s *Store) Restore(id string) (*document.Document, error) {
	if !versionIDRe.MatchString(id) {
		return nil, fmt.Errorf("%w: %q", ErrVersionNotFound, id)
	}
	data, err := afero.ReadFile(s.Fs, filepath.Join(s.versionsPath(), id+".json"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrVersionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	doc, err := validate.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("version %s is invalid: %w", id, err)
	}
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ClearVersions removes every stored version.
func (s *Store) ClearVersions() error {
	if err := s.Fs.RemoveAll(s.versionsPath()); err != nil {
		return fmt.Errorf("failed to clear version history: %w", err)
	}
	return nil
}
