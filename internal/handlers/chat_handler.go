package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Viren021/ai-job-tracker/internal/models"
	"github.com/Viren021/ai-job-tracker/internal/services"
)

type ChatHandler struct {
	agent services.AgentService
}

func NewChatHandler(agent services.AgentService) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// HandleChat handles POST /chat. Beyond input validation this endpoint cannot
// fail: the agent always produces a reply, degraded or not.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	return c.JSON(h.agent.HandleChat(c.Context(), req.Message))
}
