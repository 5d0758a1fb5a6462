// internal/server/api.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"landingkit/internal/builder"
	"landingkit/internal/document"
	"landingkit/internal/presets"
	"landingkit/internal/store"
	"landingkit/internal/validate"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeFailure maps pipeline errors onto status codes. Validation failures
// list every field.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, store.ErrQuotaExceeded), errors.Is(err, store.ErrSizeExceeded):
		writeError(w, http.StatusInsufficientStorage, err.Error())
	default:
		s.log.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleFAQPresets(w http.ResponseWriter, r *http.Request) {
	list, err := presets.FAQPresets()
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleTeamBios lists the bios, filtered by the optional q parameter.
func (s *Server) handleTeamBios(w http.ResponseWriter, r *http.Request) {
	list, err := presets.SearchTeamBios(r.URL.Query().Get("q"))
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	if list == nil {
		list = []presets.TeamBio{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := builder.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	doc, err := s.document()
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	art, err := s.opts.Builder.Export(r.Context(), doc, format)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.Write(art.Data)
}

type sizeResponse struct {
	Bytes     int    `json:"bytes"`
	Size      string `json:"size"`
	Oversized bool   `json:"oversized"`
}

func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	doc, err := s.document()
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	rep, err := s.opts.Builder.EstimateSingleFileSize(r.Context(), doc)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sizeResponse{Bytes: rep.Bytes, Size: rep.String(), Oversized: rep.Oversized})
}

type historyResponse struct {
	CanUndo bool `json:"canUndo"`
	CanRedo bool `json:"canRedo"`
	Entries int  `json:"entries"`
}

func (s *Server) historyState() historyResponse {
	return historyResponse{
		CanUndo: s.history.CanUndo(),
		CanRedo: s.history.CanRedo(),
		Entries: s.history.Len(),
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.historyState())
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.step(w, r, s.history.Undo, "nothing to undo")
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.step(w, r, s.history.Redo, "nothing to redo")
}

// step moves the history cursor, writes the snapshot back to the store and
// rebuilds the preview.
func (s *Server) step(w http.ResponseWriter, r *http.Request, move func() (document.Document, bool), empty string) {
	doc, ok := move()
	if !ok {
		writeError(w, http.StatusConflict, empty)
		return
	}
	if err := s.opts.Store.Save(doc); err != nil {
		s.writeFailure(w, err)
		return
	}
	if err := s.Rebuild(r.Context()); err != nil {
		s.writeFailure(w, err)
		return
	}
	s.hub.broadcast([]byte("reload"))
	writeJSON(w, http.StatusOK, s.historyState())
}
