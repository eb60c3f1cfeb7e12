package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/BCarroll524/money-tracker-turbo/internal/http"
	"github.com/BCarroll524/money-tracker-turbo/internal/reports"
	"github.com/BCarroll524/money-tracker-turbo/internal/sources"
	"github.com/BCarroll524/money-tracker-turbo/internal/transactions"
)

type Router struct {
	AuthHandler         *handlers.AuthHandler
	OnboardingHandler   *handlers.OnboardingHandler
	SourcesHandler      *sources.Handler
	TransactionsHandler *transactions.Handler
	ReportsHandler      *reports.Handler
	AuthMW              fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Post("/api/auth/signup", RateLimitAuth(), r.AuthHandler.Signup)
	app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
	app.Get("/api/me", r.AuthMW, r.AuthHandler.Me)

	app.Put("/api/me/name", r.AuthMW, r.OnboardingHandler.UpdateName)
	app.Post("/api/onboarding/complete", r.AuthMW, r.OnboardingHandler.Complete)

	app.Get("/api/sources", r.AuthMW, r.SourcesHandler.List)
	app.Post("/api/sources", r.AuthMW, RateLimitWrite(), r.SourcesHandler.Create)
	app.Put("/api/sources/:id/balance", r.AuthMW, RateLimitWrite(), r.SourcesHandler.SetBalance)

	app.Get("/api/feed", r.AuthMW, r.TransactionsHandler.Feed)
	app.Post("/api/transactions", r.AuthMW, RateLimitWrite(), r.TransactionsHandler.Create)
	app.Post("/api/transactions/parse", r.AuthMW, r.TransactionsHandler.Parse)

	app.Get("/api/reports/categories", r.AuthMW, r.ReportsHandler.Categories)
	app.Get("/api/reports/monthly.pdf", r.AuthMW, r.ReportsHandler.MonthlyPDF)
}
