package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Viren021/ai-job-tracker/internal/repositories"
	"github.com/Viren021/ai-job-tracker/internal/services"
)

const seedSearchTerm = "software engineer"

type JobHandler struct {
	jobRepo    repositories.JobRepository
	appRepo    repositories.ApplicationRepository
	matchCache services.MatchCacheManager
	provider   services.JobSearchProvider
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	matchCache services.MatchCacheManager,
	provider services.JobSearchProvider,
) *JobHandler {
	return &JobHandler{
		jobRepo:    jobRepo,
		appRepo:    appRepo,
		matchCache: matchCache,
		provider:   provider,
	}
}

// HandleGetJobs handles GET /jobs. Always answers with a ranked list; cache
// misses, oracle timeouts and store failures all degrade inside the match
// cache manager.
func (h *JobHandler) HandleGetJobs(c *fiber.Ctx) error {
	return c.JSON(h.matchCache.GetRankedJobs(c.Context()))
}

// HandleSeed handles POST /seed: wipe everything and refill the job store
// from the external provider.
func (h *JobHandler) HandleSeed(c *fiber.Ctx) error {
	if err := h.appRepo.DeleteAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Seed failed",
		})
	}
	if err := h.jobRepo.DeleteAll(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Seed failed",
		})
	}

	h.matchCache.Invalidate(c.Context())

	jobs := h.provider.Search(c.Context(), seedSearchTerm)
	if len(jobs) == 0 {
		return c.JSON(fiber.Map{"message": "Failed to fetch jobs."})
	}

	inserted, err := h.jobRepo.InsertSkipDuplicates(jobs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Seed failed",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("✅ Reset complete. Seeded %d jobs.", inserted),
	})
}
