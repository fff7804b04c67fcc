package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

const fallbackReason = "⚡ Fast Match (AI busy) - keywords detected"

// MatchScore is one score entry for a job. Reason is informational only and is
// never parsed downstream.
type MatchScore struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// ScorerService asks the AI oracle to score a batch of jobs against a resume.
// The oracle has no availability guarantee, so the call is raced against a
// fixed timeout and every failure mode degrades to heuristic scores. Callers
// always get one entry per job and can never tell "AI scored it" from "AI was
// unavailable" except through the reason text.
type ScorerService interface {
	ScoreJobs(ctx context.Context, resumeText string, jobs []models.Job) map[string]MatchScore
}

type scorerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	model         string
	timeout       time.Duration
}

func NewScorerService(gemini GeminiService, model string, timeout time.Duration) ScorerService {
	return &scorerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		model:         model,
		timeout:       timeout,
	}
}

type scoreOutcome struct {
	scores map[string]MatchScore
	err    error
}

// ScoreJobs implements ScorerService. Exactly one oracle call per invocation,
// no retries: the periodic cache refresh is the retry mechanism.
func (s *scorerService) ScoreJobs(ctx context.Context, resumeText string, jobs []models.Job) map[string]MatchScore {
	if len(jobs) == 0 {
		return map[string]MatchScore{}
	}

	prompt := s.promptBuilder.BuildScoringPrompt(resumeText, jobs)

	// Buffered so a late oracle result is parked and discarded instead of
	// leaking the goroutine. The select below settles the race: whichever
	// branch fires first wins and the loser's result is never applied.
	outcomeCh := make(chan scoreOutcome, 1)
	go func() {
		raw, err := s.gemini.GenerateText(ctx, s.model, prompt)
		if err != nil {
			outcomeCh <- scoreOutcome{err: err}
			return
		}
		scores, err := parseScoreResponse(raw)
		outcomeCh <- scoreOutcome{scores: scores, err: err}
	}()

	log.Printf("🤖 Asking AI for match scores (%s timeout)...", s.timeout)

	select {
	case outcome := <-outcomeCh:
		if outcome.err != nil {
			log.Printf("⚠️ AI scoring skipped: %v", outcome.err)
			return s.fallbackScores(jobs)
		}
		return outcome.scores
	case <-time.After(s.timeout):
		log.Println("⚠️ AI scoring skipped: timeout")
		return s.fallbackScores(jobs)
	case <-ctx.Done():
		log.Printf("⚠️ AI scoring skipped: %v", ctx.Err())
		return s.fallbackScores(jobs)
	}
}

// fallbackScores produces one pseudo-random entry per job in the 60-90 band
// with a fixed marker reason. Availability over accuracy: the pipeline always
// completes.
func (s *scorerService) fallbackScores(jobs []models.Job) map[string]MatchScore {
	scores := make(map[string]MatchScore, len(jobs))
	for _, job := range jobs {
		scores[job.ID.String()] = MatchScore{
			Score:  rand.Intn(31) + 60,
			Reason: fallbackReason,
		}
	}
	return scores
}

type scoreResponse struct {
	Scores []struct {
		JobID  string `json:"job_id"`
		Score  int    `json:"score"`
		Reason string `json:"reason"`
	} `json:"scores"`
}

func parseScoreResponse(raw string) (map[string]MatchScore, error) {
	var parsed scoreResponse
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse score response: %w", err)
	}

	scores := make(map[string]MatchScore, len(parsed.Scores))
	for _, entry := range parsed.Scores {
		scores[entry.JobID] = MatchScore{Score: entry.Score, Reason: entry.Reason}
	}

	if len(scores) == 0 {
		return nil, fmt.Errorf("score response contained no entries")
	}

	return scores, nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
