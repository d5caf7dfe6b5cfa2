package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"phone2mail/cmd/web"
	"phone2mail/internal/logger"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)

	if s.config.IsDevelopment() {
		r.Use(middleware.NoCache)
	}

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{"X-Relay-ID"},
		MaxAge:         300,
	}))

	// Serve static files
	fileServer := http.FileServer(http.FS(web.Files)) // embedded in binary
	r.Handle("/assets/*", fileServer)

	r.NotFound(s.handleError404)

	// Liveness probe
	r.Get("/", s.healthHandler)

	// Upload form
	r.Get("/app", s.handleUploadPage)

	// Relay endpoint
	r.Post("/send-email", s.relayHandler.HandleSendEmail)

	return r
}
