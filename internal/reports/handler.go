package reports

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BCarroll524/money-tracker-turbo/internal/transactions"
)

// TxLister is the read surface reports need from the transactions repo.
type TxLister interface {
	ListByUser(ctx context.Context, userID string) ([]transactions.Transaction, error)
}

type Handler struct {
	Store TxLister
}

func NewHandler(store TxLister) *Handler {
	return &Handler{Store: store}
}

// Categories returns the per-category spend breakdown for a month.
// month is YYYY-MM and defaults to the current month.
func (h *Handler) Categories(c *fiber.Ctx) error {
	userID := getUserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	anchor, err := monthAnchor(c.Query("month"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	txs, err := h.Store.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions: "+err.Error())
	}

	return c.JSON(transactions.SpendByCategory(txs, anchor))
}

func monthAnchor(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01", raw, time.Local)
}

func getUserID(c *fiber.Ctx) string {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
