package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"phone2mail/internal/config"
	"phone2mail/internal/mailer"
	"phone2mail/internal/relay"
)

// Server represents the HTTP server and its dependencies
type Server struct {
	config       *config.Config
	relayHandler *relay.Handler
}

// NewServer creates a new server instance
func NewServer(config *config.Config, sender mailer.Sender) (*Server, error) {
	if sender == nil {
		return nil, fmt.Errorf("email sender is required")
	}

	relayService := relay.NewService(sender, config.Email.From)
	relayHandler := relay.NewHandler(relayService, config.UploadMaxSize)

	return &Server{
		config:       config,
		relayHandler: relayHandler,
	}, nil
}

// Start initializes the HTTP server
func (s *Server) Start() (*http.Server, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Int("port", s.config.Port).
		Str("env", s.config.Env).
		Msg("Starting server")

	return srv, nil
}

// sendJSON sends a JSON response with consistent formatting
func (s *Server) sendJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Error encoding JSON response")
	}
}
