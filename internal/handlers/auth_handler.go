package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Viren021/ai-job-tracker/internal/models"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
)

type AuthHandler struct {
	userRepo     repositories.UserRepository
	jwtSecret    string
	userEmail    string
	userPassword string
}

func NewAuthHandler(
	userRepo repositories.UserRepository,
	jwtSecret, userEmail, userPassword string,
) *AuthHandler {
	return &AuthHandler{
		userRepo:     userRepo,
		jwtSecret:    jwtSecret,
		userEmail:    userEmail,
		userPassword: userPassword,
	}
}

// HandleLogin handles POST /login. Single-user deployment: credentials are
// checked against the configured test identity and a short-lived token is
// issued. Mobile keyboards add capitals and trailing spaces, so input is
// normalized first.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.LoginResponse{
			Success: false,
			Error:   "Invalid request payload",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if email != h.userEmail || password != h.userPassword {
		return c.Status(fiber.StatusUnauthorized).JSON(models.LoginResponse{
			Success: false,
			Error:   "Invalid credentials",
		})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.LoginResponse{
			Success: false,
			Error:   "Failed to issue token",
		})
	}

	return c.JSON(models.LoginResponse{Success: true, Token: signed})
}

// HandleProfile handles GET /profile.
func (h *AuthHandler) HandleProfile(c *fiber.Ctx) error {
	hasResume := false
	if user, err := h.userRepo.FindByEmail(h.userEmail); err == nil {
		hasResume = user.ResumeText != ""
	}

	return c.JSON(models.ProfileResponse{
		Email:     h.userEmail,
		HasResume: hasResume,
	})
}
