package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"phone2mail/internal/config"
	"phone2mail/internal/lambdaproxy"
	"phone2mail/internal/logger"
	"phone2mail/internal/mailer"
	"phone2mail/internal/server"
)

func main() {
	logger.Init(config.AppEnv())

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	cfg.Log()

	sender, err := mailer.New(cfg.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating email sender")
	}

	srv, err := server.NewServer(cfg, sender)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating server")
	}

	lambda.Start(lambdaproxy.New(srv.RegisterRoutes()).Handle)
}
