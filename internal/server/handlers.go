package server

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"phone2mail/cmd/web/pages"
)

// Page Handlers
func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	props := pages.UploadPageProps{
		Endpoint: "/send-email",
		MaxSize:  humanize.Bytes(uint64(s.config.UploadMaxSize)),
	}
	templ.Handler(pages.UploadPage(props)).ServeHTTP(w, r)
}

// API Handlers
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, HealthResponse{Status: "Server is running"})
}

// Error Handlers
func (s *Server) handleError404(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		if err := pages.NotFoundPage().Render(r.Context(), w); err != nil {
			log.Error().Err(err).Msg("Error rendering 404 page")
		}
		return
	}
	s.sendJSON(w, http.StatusNotFound, ErrorResponse{Success: false, Error: "Not found"})
}
