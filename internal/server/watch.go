// internal/server/watch.go
package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const debounceDuration = 500 * time.Millisecond

// watchSet decides which watcher events matter. Directories are watched
// recursively; a file is watched through its parent directory, which
// catches editors that save by writing a swap file and renaming it.
type watchSet struct {
	dirs  []string
	files map[string]bool
}

func (w *watchSet) matches(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	for _, d := range w.dirs {
		if name == d || strings.HasPrefix(name, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *Server) watch(paths []string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}
	set := &watchSet{files: make(map[string]bool)}
	watched := make(map[string]bool)
	addWatch := func(dir string) {
		dir = filepath.Clean(dir)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			s.log.Warn("could not watch directory", zap.String("dir", dir), zap.Error(err))
			return
		}
		s.log.Debug("watching directory", zap.String("dir", dir))
		watched[dir] = true
	}

	for _, path := range paths {
		info, err := s.opts.Fs.Stat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("could not stat path %s: %w", path, err)
		}
		if !info.IsDir() {
			set.files[filepath.Clean(path)] = true
			addWatch(filepath.Dir(path))
			continue
		}
		set.dirs = append(set.dirs, filepath.Clean(path))
		err = afero.Walk(s.opts.Fs, path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				addWatch(p)
			}
			return nil
		})
		if err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
	}
	s.watched = set
	return watcher, nil
}

// watchForChanges rebuilds once events have been quiet for
// debounceDuration, then tells connected browsers to reload.
func (s *Server) watchForChanges(ctx context.Context, watcher *fsnotify.Watcher) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	const ops = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&ops == 0 || !s.watched.matches(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						s.log.Warn("could not watch directory", zap.String("dir", event.Name), zap.Error(err))
					}
				}
			}
			s.log.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounceDuration)
			} else {
				timer.Reset(debounceDuration)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			s.log.Info("change detected, rebuilding")
			s.rebuildAndReload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("watcher error", zap.Error(err))
		}
	}
}
