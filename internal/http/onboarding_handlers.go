package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OnboardingHandler struct {
	DB *pgxpool.Pool
}

type updateNameRequest struct {
	Name string `json:"name"`
}

// UpdateName sets the display name collected during onboarding.
func (h *OnboardingHandler) UpdateName(c *fiber.Ctx) error {
	userID := strings.TrimSpace(getUserID(c))
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var body updateNameRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	name := strings.TrimSpace(body.Name)

	ctx := userContext(c)
	if _, err := h.DB.Exec(ctx, `UPDATE users SET name = $1 WHERE id = $2::uuid`, name, userID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update name")
	}

	return c.JSON(fiber.Map{"ok": true, "name": name})
}

// Complete finishes onboarding. Users need at least one payment source
// before the feed is useful, so completion is gated on that.
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	userID := strings.TrimSpace(getUserID(c))
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := userContext(c)

	var count int
	if err := h.DB.QueryRow(ctx, `SELECT COUNT(*) FROM sources WHERE user_id = $1::uuid`, userID).Scan(&count); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to check sources")
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "add at least one payment source to continue")
	}

	return c.JSON(fiber.Map{"ok": true})
}
