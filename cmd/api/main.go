package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/BCarroll524/money-tracker-turbo/internal/audit"
	"github.com/BCarroll524/money-tracker-turbo/internal/config"
	apphttp "github.com/BCarroll524/money-tracker-turbo/internal/http"
	"github.com/BCarroll524/money-tracker-turbo/internal/logger"
	"github.com/BCarroll524/money-tracker-turbo/internal/reports"
	"github.com/BCarroll524/money-tracker-turbo/internal/router"
	"github.com/BCarroll524/money-tracker-turbo/internal/sources"
	"github.com/BCarroll524/money-tracker-turbo/internal/transactions"
)

func main() {
	log := logger.New()
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}
	secret := []byte(cfg.JWTSecret)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating pgx pool")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("error pinging database")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger(log))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	auditLog := audit.New(pool, log)
	sourcesRepo := sources.NewRepo(pool)
	txRepo := transactions.NewRepo(pool)

	r := &router.Router{
		AuthHandler:         &apphttp.AuthHandler{DB: pool, JWTSecret: secret},
		OnboardingHandler:   &apphttp.OnboardingHandler{DB: pool},
		SourcesHandler:      sources.NewHandler(sourcesRepo, auditLog),
		TransactionsHandler: transactions.NewHandler(txRepo, sourcesRepo, auditLog),
		ReportsHandler:      reports.NewHandler(txRepo),
		AuthMW:              buildJWTMiddleware(secret),
	}
	r.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}

func buildJWTMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		userID, ok := claims["user_id"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
