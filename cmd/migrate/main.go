package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/BCarroll524/money-tracker-turbo/internal/config"
	"github.com/BCarroll524/money-tracker-turbo/internal/logger"
)

func main() {
	log := logger.New()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("error pinging database")
	}

	path := "migrations/migrations.sql"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading migrations file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Info().Str("path", path).Msg("applying migrations")
	if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	log.Info().Msg("migrations applied")
}
