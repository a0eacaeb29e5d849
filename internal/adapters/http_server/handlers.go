package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/washyaderner/vibe-n-thrive/internal/app"
	"github.com/washyaderner/vibe-n-thrive/internal/render"
	"github.com/washyaderner/vibe-n-thrive/internal/shared"
)

type Handlers struct {
	Content *app.ContentService
	Engine  *render.Engine
	Copy    *shared.SiteCopy
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.getPage)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func etagFor(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

// getPage resolves the content snapshot (live, cached, or fallback — the
// content service guarantees it never comes back partial) and assembles
// the document. A render error here is a template defect: abort with 500
// rather than serve a broken page.
func (h *Handlers) getPage(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Content.Fetch(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("content fetch failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "content unavailable")
		return
	}

	body, err := h.Engine.AssemblePage(render.NewPageData(h.Copy, snap.Posts, snap.Reviews))
	if err != nil {
		log.Error().Err(err).Msg("page assembly failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "render failed")
		return
	}

	etag := etagFor(body)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}
