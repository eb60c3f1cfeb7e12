package sources

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/BCarroll524/money-tracker-turbo/internal/audit"
)

type Handler struct {
	Repo  *Repo
	Audit *audit.Log
}

func NewHandler(repo *Repo, auditLog *audit.Log) *Handler {
	return &Handler{Repo: repo, Audit: auditLog}
}

type createSourceRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type setBalanceRequest struct {
	Balance *int64 `json:"balance"`
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Repo.ListByUser(userContext(c), userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load sources: "+err.Error())
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body createSourceRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}
	typ := Type(strings.TrimSpace(body.Type))
	if !typ.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "type must be credit_card, debit_card, checking_account or savings_account")
	}

	ctx := userContext(c)
	s, err := h.Repo.Create(ctx, userID, body.Name, typ)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create source: "+err.Error())
	}

	h.Audit.Record(ctx, audit.Entry{
		UserID:     &userID,
		Action:     "source.create",
		EntityType: "source",
		EntityID:   &s.ID,
	})

	return c.Status(fiber.StatusCreated).JSON(s)
}

// SetBalance overwrites a source balance. The raw amount from the
// client is always positive; credit cards store it negated.
func (h *Handler) SetBalance(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	sourceID := strings.TrimSpace(c.Params("id"))
	if sourceID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "source id required")
	}

	var body setBalanceRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Balance == nil {
		return fiber.NewError(fiber.StatusBadRequest, "balance required")
	}

	ctx := userContext(c)

	src, err := h.Repo.Get(ctx, sourceID)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load source: "+err.Error())
	}
	if src.UserID != userID {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}

	stored, err := h.Repo.SetBalance(ctx, sourceID, *body.Balance)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "source not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to set balance: "+err.Error())
	}

	h.Audit.Record(ctx, audit.Entry{
		UserID:     &userID,
		Action:     "source.set_balance",
		EntityType: "source",
		EntityID:   &sourceID,
	})

	return c.JSON(fiber.Map{"id": sourceID, "balance": stored})
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
