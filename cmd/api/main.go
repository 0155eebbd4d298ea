package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"book-manager/internal/config"
	"book-manager/pkg/logger"
)

func main() {
	// .env is optional; deployed environments use real variables.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if envErr != nil {
		log.Debug().Msg("No .env file found, using system environment variables")
	}

	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
}
