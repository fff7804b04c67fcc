package services

import (
	"context"
	"log"
	"sort"

	"github.com/Viren021/ai-job-tracker/internal/models"
	"github.com/Viren021/ai-job-tracker/internal/repositories"
)

const (
	noResumeReason = "Upload resume to see score"
	noScoreReason  = "N/A"
)

// RankingService orchestrates one full scoring pass: load jobs and resume,
// score the batch, merge, sort. It owns no caching logic and never fails the
// caller; the worst case is an empty list.
type RankingService interface {
	Compute(ctx context.Context) []models.RankedJob
}

type rankingService struct {
	jobRepo   repositories.JobRepository
	userRepo  repositories.UserRepository
	scorer    ScorerService
	userEmail string
	pageSize  int
}

func NewRankingService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	scorer ScorerService,
	userEmail string,
	pageSize int,
) RankingService {
	return &rankingService{
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		scorer:    scorer,
		userEmail: userEmail,
		pageSize:  pageSize,
	}
}

// Compute implements RankingService.
func (r *rankingService) Compute(ctx context.Context) []models.RankedJob {
	jobs, err := r.jobRepo.ListRecent(r.pageSize)
	if err != nil {
		log.Printf("❌ Job fetch error: %v", err)
		return []models.RankedJob{}
	}

	user, err := r.userRepo.FindByEmail(r.userEmail)
	if err != nil || user.ResumeText == "" {
		// No resume yet: skip the oracle entirely, every job scores 0.
		ranked := make([]models.RankedJob, 0, len(jobs))
		for _, job := range jobs {
			ranked = append(ranked, models.RankedJob{
				Job:         job,
				MatchScore:  0,
				MatchReason: noResumeReason,
			})
		}
		return ranked
	}

	scores := r.scorer.ScoreJobs(ctx, user.ResumeText, jobs)

	// Jobs the oracle skipped default to zero rather than dropping out of
	// the feed.
	ranked := make([]models.RankedJob, 0, len(jobs))
	for _, job := range jobs {
		entry, ok := scores[job.ID.String()]
		if !ok {
			entry = MatchScore{Score: 0, Reason: noScoreReason}
		}
		ranked = append(ranked, models.RankedJob{
			Job:         job,
			MatchScore:  entry.Score,
			MatchReason: entry.Reason,
		})
	}

	// Stable keeps the original retrieval order (newest first) for ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	return ranked
}
