package transactions

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BCarroll524/money-tracker-turbo/internal/audit"
	"github.com/BCarroll524/money-tracker-turbo/internal/money"
	"github.com/BCarroll524/money-tracker-turbo/internal/sources"
	"github.com/BCarroll524/money-tracker-turbo/internal/textparse"
)

// parseHelp is the fixed instructional message shown for any parse
// failure, with the raw input echoed back for correction.
const parseHelp = "Error parsing text. Please make sure it is formatted correctly.\nEx: Credit Card: You made a $10.00 transaction with MERCHANT on Jan 1, 2022 at 12:00 PM ET"

// Store is the persistence surface the handlers need. Kept as an
// interface so tests can substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, p CreateParams) (Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]Transaction, error)
	TotalSpent(ctx context.Context, userID string) (int64, error)
}

// SourceStore is the slice of the sources repo the feed and create
// paths rely on.
type SourceStore interface {
	Get(ctx context.Context, id string) (sources.Source, error)
	ListByUser(ctx context.Context, userID string) ([]sources.Source, error)
}

type Handler struct {
	Store   Store
	Sources SourceStore
	Audit   *audit.Log
}

func NewHandler(store Store, srcs SourceStore, auditLog *audit.Log) *Handler {
	return &Handler{Store: store, Sources: srcs, Audit: auditLog}
}

type createRequest struct {
	Name string `json:"name"`
	// Amount is in cents. AmountDollars ("18.74") is accepted as a
	// fallback for clients that submit the raw form value.
	Amount        int64  `json:"amount"`
	AmountDollars string `json:"amount_dollars"`
	SourceID      string `json:"source_id"`
	Type          string `json:"type"`
	Label         string `json:"label"`
	Date          string `json:"date"` // RFC3339, optional
}

type parseRequest struct {
	Text string `json:"text"`
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body createRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}
	if body.Amount == 0 && strings.TrimSpace(body.AmountDollars) != "" {
		cents, err := money.DollarsToCents(strings.TrimSpace(body.AmountDollars))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be a dollar value like 10.00")
		}
		body.Amount = cents
	}
	if body.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")
	}
	if strings.TrimSpace(body.SourceID) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "source_id required")
	}
	typ := TxType(strings.TrimSpace(body.Type))
	if !typ.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "type must be need, nice-to-have or splurge")
	}
	if strings.TrimSpace(body.Label) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "category required")
	}

	createdAt := time.Now()
	if strings.TrimSpace(body.Date) != "" {
		parsed, err := time.Parse(time.RFC3339, body.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be RFC3339")
		}
		createdAt = parsed
	}

	ctx := userContext(c)

	src, err := h.Sources.Get(ctx, body.SourceID)
	if errors.Is(err, sources.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load source: "+err.Error())
	}
	if src.UserID != userID {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}

	tx, err := h.Store.Create(ctx, CreateParams{
		Name:      body.Name,
		Amount:    body.Amount,
		Label:     body.Label,
		Type:      typ,
		CreatedAt: createdAt,
		UserID:    userID,
		SourceID:  body.SourceID,
	})
	if errors.Is(err, sources.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create transaction: "+err.Error())
	}

	h.Audit.Record(ctx, audit.Entry{
		UserID:     &userID,
		Action:     "transaction.create",
		EntityType: "transaction",
		EntityID:   &tx.ID,
	})

	return c.Status(fiber.StatusCreated).JSON(tx)
}

// Parse previews a pasted bank notification as a draft transaction.
// Nothing is persisted here; the client confirms via Create.
func (h *Handler) Parse(c *fiber.Ctx) error {
	if _, ok := getUserID(c); !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body parseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text required")
	}

	draft, err := textparse.Parse(body.Text)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": parseHelp,
			"text":  body.Text,
		})
	}

	return c.JSON(fiber.Map{
		"amount_cents": draft.AmountCents,
		"merchant":     draft.Merchant,
		"date":         draft.Day.Format(time.RFC3339),
		"raw_day":      draft.RawDay,
		"raw_time":     draft.RawTime,
	})
}

type feedResponse struct {
	TotalSpent int64            `json:"total_spent"`
	SpentToday int64            `json:"spent_today"`
	Groups     []DayGroup       `json:"groups"`
	Sources    []sources.Source `json:"sources"`
}

// Feed returns everything the home screen needs. The three reads are
// independent, so they run concurrently.
func (h *Handler) Feed(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	var (
		wg         sync.WaitGroup
		txs        []Transaction
		totalSpent int64
		srcs       []sources.Source
		txErr      error
		totalErr   error
		srcErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		txs, txErr = h.Store.ListByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		totalSpent, totalErr = h.Store.TotalSpent(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		srcs, srcErr = h.Sources.ListByUser(ctx, userID)
	}()
	wg.Wait()

	for _, err := range []error{txErr, totalErr, srcErr} {
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load feed: "+err.Error())
		}
	}

	now := time.Now()
	return c.JSON(feedResponse{
		TotalSpent: totalSpent,
		SpentToday: SpentSince(txs, StartOfDay(now)),
		Groups:     GroupByDayAt(txs, now),
		Sources:    srcs,
	})
}

func getUserID(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
