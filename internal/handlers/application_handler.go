package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Viren021/ai-job-tracker/internal/models"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
)

type ApplicationHandler struct {
	appRepo   repositories.ApplicationRepository
	userRepo  repositories.UserRepository
	userEmail string
}

func NewApplicationHandler(
	appRepo repositories.ApplicationRepository,
	userRepo repositories.UserRepository,
	userEmail string,
) *ApplicationHandler {
	return &ApplicationHandler{
		appRepo:   appRepo,
		userRepo:  userRepo,
		userEmail: userEmail,
	}
}

// HandleCreate handles POST /applications. Confirming the same job twice
// updates the existing application's status instead of duplicating it.
func (h *ApplicationHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	user, err := h.userRepo.FindByEmail(h.userEmail)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	status := req.Status
	if status == "" {
		status = "Applied"
	}

	app := &models.Application{
		ID:        uuid.New(),
		UserID:    user.ID,
		JobID:     jobID,
		JobTitle:  req.JobTitle,
		Company:   req.Company,
		Status:    status,
		AppliedAt: time.Now(),
	}

	if err := h.appRepo.Upsert(app); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save application",
		})
	}

	return c.JSON(app)
}

// HandleList handles GET /applications.
func (h *ApplicationHandler) HandleList(c *fiber.Ctx) error {
	apps, err := h.appRepo.ListRecent(100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(apps)
}
