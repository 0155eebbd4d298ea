// Command migrate manages the database schema and exits.
//
//	migrate            apply pending migrations
//	migrate -down 1    revert the last migration
//	migrate -version   print the applied version
package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"book-manager/internal/config"
	"book-manager/internal/infrastructure/database"
	"book-manager/pkg/logger"
)

func main() {
	down := flag.Int("down", 0, "number of migrations to revert")
	showVersion := flag.Bool("version", false, "print the applied schema version")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	err = run(ctx, db, *down, *showVersion)
	db.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}

func run(ctx context.Context, db *database.PostgresDB, down int, showVersion bool) error {
	switch {
	case showVersion:
		version, dirty, err := db.SchemaVersion()
		if err != nil {
			return err
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema version")
		return nil
	case down > 0:
		if err := db.Rollback(ctx, down); err != nil {
			return err
		}
		log.Info().Int("steps", down).Msg("Rollback complete")
		return nil
	default:
		if err := db.Migrate(ctx); err != nil {
			return err
		}
		log.Info().Msg("Migrations complete")
		return nil
	}
}
