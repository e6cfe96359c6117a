package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/rpupo63/blogstore/config"
	"github.com/rpupo63/blogstore/database"
)

// The blogstore binary bootstraps the storage schema: it connects to the
// engine selected by DB_TYPE and idempotently ensures every model's tables
// and indexes exist.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()

	handle, err := database.Open(c)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}

	db := database.New(handle, logger)
	if err := db.InitSchema(); err != nil {
		logger.Error().Err(err).Msg("failed to initialize schema")
		os.Exit(1)
	}

	logger.Info().
		Str("db_type", config.GetString(c, "DB_TYPE", database.SqliteDBType)).
		Msg("schema initialized")
}
