package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"phone2mail/internal/config"
	"phone2mail/internal/logger"
	"phone2mail/internal/mailer"
	"phone2mail/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("phone2mail %s\n", formatVersionInfo())
		return
	}

	// Initialize logger first
	env := config.AppEnv()
	logger.Init(env)

	log.Info().
		Str("environment", env).
		Str("log_level", zerolog.GlobalLevel().String()).
		Str("version", version).
		Str("commit", commit).
		Str("built", date).
		Msg("Starting phone2mail")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration; missing credentials stop the process here
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	cfg.Log()

	sender, err := mailer.New(cfg.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating email sender")
	}
	verifySender(ctx, sender)

	srv, err := server.NewServer(cfg, sender)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating server")
	}

	httpServer, err := srv.Start()
	if err != nil {
		log.Fatal().Err(err).Msg("Error starting server")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info().Msg("Shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		httpServer.SetKeepAlivesEnabled(false)

		// In-flight sends finish before Shutdown returns
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
		}

		cancel()
	}()

	log.Info().
		Str("addr", httpServer.Addr).
		Str("provider", sender.Name()).
		Msg("Server is ready to handle requests")

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-ctx.Done()
	log.Info().Msg("Server shutdown completed")
}

// verifySender checks provider connectivity once. A failure is only logged:
// the provider may recover before the first upload arrives.
func verifySender(ctx context.Context, sender mailer.Sender) {
	verifier, ok := sender.(mailer.Verifier)
	if !ok {
		return
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := verifier.Verify(verifyCtx); err != nil {
		log.Warn().Err(err).Str("provider", sender.Name()).Msg("Error verifying email transport")
		return
	}
	log.Info().Str("provider", sender.Name()).Msg("Email transport ready")
}

func formatVersionInfo() string {
	return fmt.Sprintf(`Version: %s
Commit: %s
Built: %s`, version, commit, date)
}
