package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Viren021/ai-job-tracker/internal/repositories"
	"github.com/Viren021/ai-job-tracker/internal/services"
)

type ResumeHandler struct {
	userRepo       repositories.UserRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	matchCache     services.MatchCacheManager
	userEmail      string
	userPassword   string
	maxFileSize    int64
}

func NewResumeHandler(
	userRepo repositories.UserRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	matchCache services.MatchCacheManager,
	userEmail, userPassword string,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		userRepo:       userRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		matchCache:     matchCache,
		userEmail:      userEmail,
		userPassword:   userPassword,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload-resume. The stored resume text is a full
// replace; the ranked-jobs cache is invalidated so old scores are never
// served against the new resume.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to save resume: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			log.Printf("⚠️ Failed to clean up resume file: %v", err)
		}
	}()

	resumeText, err := h.pdfParser.ExtractText(filePath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to parse PDF",
		})
	}

	user, err := h.userRepo.UpsertResume(h.userEmail, h.userPassword, resumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume",
		})
	}

	h.matchCache.Invalidate(c.Context())
	log.Printf("🔄 Resume updated (version %d)", user.ResumeVersion)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Resume parsed & saved!",
	})
}
