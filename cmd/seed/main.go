package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/BCarroll524/money-tracker-turbo/internal/config"
	"github.com/BCarroll524/money-tracker-turbo/internal/logger"
)

const (
	demoEmail    = "blake@remix.run"
	demoPassword = "blakeiscool"
)

type seedSource struct {
	name    string
	typ     string
	balance int64
}

var seedSources = []seedSource{
	{"Chase Sapphire Preferred", "credit_card", -100000},
	{"Rapid Rewards Premier Card", "credit_card", -25000},
	{"Wells Fargo Checking Account", "checking_account", 140000},
	{"Wells Fargo Savings Account", "savings_account", 5000},
}

var (
	seedNames  = []string{"Prime Pizza", "Alfalfa", "Blue Bottle Coffee", "Shell Gas", "Equinox", "Trader Joe's", "Uber", "Amazon"}
	seedLabels = []string{"🏋🏻", "☕️", "⛽️", "🍔", "🧾"}
	seedTypes  = []string{"need", "nice-to-have", "splurge"}
)

func main() {
	log := logger.New()
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating pgx pool")
	}
	defer pool.Close()

	// start fresh for the demo account
	if _, err := pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, demoEmail); err != nil {
		log.Fatal().Err(err).Msg("error cleaning demo user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing demo password")
	}

	var userID string
	err = pool.QueryRow(ctx, `
INSERT INTO users (email, password_hash, name)
VALUES ($1, $2, 'Blake')
RETURNING id::text
`, demoEmail, string(hashed)).Scan(&userID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating demo user")
	}

	sourceIDs := make([]uuid.UUID, 0, len(seedSources))
	for _, s := range seedSources {
		var id uuid.UUID
		err := pool.QueryRow(ctx, `
INSERT INTO sources (user_id, name, type, balance)
VALUES ($1::uuid, $2, $3, $4)
RETURNING id
`, userID, s.name, s.typ, s.balance).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("source", s.name).Msg("error creating source")
		}
		sourceIDs = append(sourceIDs, id)
	}

	// spread transactions over the last couple of weeks
	for i := 0; i < 25; i++ {
		createdAt := time.Now().AddDate(0, 0, -rand.Intn(16))
		_, err := pool.Exec(ctx, `
INSERT INTO transactions (user_id, source_id, name, amount, label, type, created_at)
VALUES ($1::uuid, $2, $3, $4, $5, $6, $7)
`, userID,
			sourceIDs[rand.Intn(len(sourceIDs))],
			seedNames[rand.Intn(len(seedNames))],
			int64(rand.Intn(10000)+100),
			seedLabels[rand.Intn(len(seedLabels))],
			seedTypes[rand.Intn(len(seedTypes))],
			createdAt,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating transaction")
		}
	}

	log.Info().Str("email", demoEmail).Msg("seeded demo account")
}
