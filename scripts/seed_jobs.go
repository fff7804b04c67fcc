package main

import (
	"context"
	"log"
	"os"

	"github.com/Viren021/ai-job-tracker/internal/config"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
	"github.com/Viren021/ai-job-tracker/internal/services"
)

// Seeds the job store from the external provider without going through the
// HTTP API. Usage: go run scripts/seed_jobs.go [search term]
func main() {
	log.Println("🚀 Starting job seeding...")

	term := "software engineer"
	if len(os.Args) > 1 {
		term = os.Args[1]
	}

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)
	provider := services.NewAdzunaProvider(cfg.Adzuna.AppID, cfg.Adzuna.AppKey, cfg.Adzuna.BaseURL)

	jobs := provider.Search(context.Background(), term)
	if len(jobs) == 0 {
		log.Fatal("❌ Provider returned no jobs")
	}

	inserted, err := jobRepo.InsertSkipDuplicates(jobs)
	if err != nil {
		log.Fatalf("❌ Failed to insert jobs: %v", err)
	}

	log.Printf("✅ Seeded %d new jobs (%d fetched) for %q", inserted, len(jobs), term)
}
