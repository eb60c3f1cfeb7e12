package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/BCarroll524/money-tracker-turbo/internal/domain"
)

type AuthHandler struct {
	DB        *pgxpool.Pool
	JWTSecret []byte
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(h.JWTSecret)
}

func validEmail(email string) bool {
	return len(email) > 3 && strings.Contains(email, "@")
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body signupRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	body.Email = strings.TrimSpace(body.Email)
	if !validEmail(body.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "valid email required")
	}
	if len(body.Password) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}

	ctx := userContext(c)

	var userID string
	err = h.DB.QueryRow(ctx, `
INSERT INTO users (email, password_hash, name)
VALUES ($1, $2, '')
RETURNING id::text
`, body.Email, string(hashed)).Scan(&userID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "a user already exists with this email")
	}

	token, err := h.generateToken(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(authResponse{Token: token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	var (
		userID       string
		passwordHash string
	)

	ctx := userContext(c)
	err := h.DB.QueryRow(ctx, `
SELECT id::text, password_hash FROM users WHERE email = $1
`, strings.TrimSpace(body.Email)).Scan(&userID, &passwordHash)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(body.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.generateToken(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create token")
	}

	return c.JSON(authResponse{Token: token})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID := getUserID(c)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	user := domain.User{ID: userID}
	err := h.DB.QueryRow(userContext(c), `
SELECT email, name, created_at FROM users WHERE id = $1::uuid
`, userID).Scan(&user.Email, &user.Name, &user.CreatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(user)
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
