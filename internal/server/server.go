// internal/server/server.go

// Package server is the local preview: it builds the project into the
// output directory, serves it with live reload and exposes a small JSON API
// for presets, exports and undo/redo.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"landingkit/internal/builder"
	"landingkit/internal/document"
	"landingkit/internal/history"
	"landingkit/internal/store"
)

type Options struct {
	Port      int
	Fs        afero.Fs
	OutputDir string
	// WatchPaths are the files and directories whose changes trigger a
	// rebuild: the document, the config file, the static directory.
	WatchPaths   []string
	Builder      *builder.Builder
	Store        *store.Store
	HistoryDepth int
	Logger       *zap.Logger
}

type Server struct {
	opts    Options
	hub     *Hub
	history *history.Stack[document.Document]
	log     *zap.Logger
	watched *watchSet

	buildMu sync.Mutex
}

func New(opts Options) (*Server, error) {
	if opts.Builder == nil || opts.Store == nil {
		return nil, errors.New("server needs a builder and a store")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "public"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		opts:    opts,
		hub:     newHub(log),
		history: history.New[document.Document](opts.HistoryDepth),
		log:     log,
	}, nil
}

// document is the saved document, or the defaults when nothing is saved.
func (s *Server) document() (document.Document, error) {
	doc, err := s.opts.Store.Load()
	if err != nil {
		return document.Document{}, err
	}
	if doc == nil {
		return document.Default(), nil
	}
	return *doc, nil
}

// Rebuild writes the saved document into the output directory. A document
// that differs from the snapshot under the history cursor is pushed as a
// new snapshot; one that matches (an undo or redo being written back) is
// not.
func (s *Server) Rebuild(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	doc, err := s.document()
	if err != nil {
		return err
	}
	n, err := s.opts.Builder.BuildSite(ctx, doc, s.opts.Fs, s.opts.OutputDir, builder.BuildOptions{CleanDestination: true})
	if err != nil {
		return err
	}
	if cur, ok := s.history.Current(); !ok || !reflect.DeepEqual(cur, doc) {
		s.history.Push(doc)
	}
	s.log.Info("site rebuilt", zap.Int("files", n), zap.Int("history", s.history.Len()))
	return nil
}

func (s *Server) rebuildAndReload(ctx context.Context) {
	if err := s.Rebuild(ctx); err != nil {
		s.log.Warn("rebuild failed", zap.Error(err))
		return
	}
	s.hub.broadcast([]byte("reload"))
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/ws", s.hub.serveWs)
	r.Get(liveReloadPath, serveLiveReloadClient)
	r.Route("/api", func(r chi.Router) {
		r.Get("/faq-presets", s.handleFAQPresets)
		r.Get("/team-bios", s.handleTeamBios)
		r.Get("/size", s.handleSize)
		r.Get("/history", s.handleHistory)
		r.Post("/undo", s.handleUndo)
		r.Post("/redo", s.handleRedo)
	})
	r.Get("/export/{format}", s.handleExport)

	fileServer := http.FileServer(afero.NewHttpFs(s.opts.Fs).Dir(s.opts.OutputDir))
	r.Handle("/*", liveReloadWrapper(fileServer))
	return r
}

// Run builds the site, starts watching for changes and serves until ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	s, err := New(opts)
	if err != nil {
		return err
	}
	if err := s.Rebuild(ctx); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := s.watch(opts.WatchPaths)
	if err != nil {
		return err
	}
	defer watcher.Close()
	go s.watchForChanges(ctx, watcher)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	fmt.Printf("Serving site on http://localhost%s\n", srv.Addr)
	fmt.Println("Press Ctrl+C to stop")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
