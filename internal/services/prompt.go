package services

import (
	"fmt"
	"strings"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

const (
	// The oracle call costs grow with input size, so both sides of the
	// comparison are truncated to fixed prefixes before prompting.
	maxResumePromptLen      = 1000
	maxDescriptionPromptLen = 200
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt creates the batch match-scoring prompt. One prompt covers
// the whole job page; the model returns one score entry per job ID.
func (pb *PromptBuilder) BuildScoringPrompt(resumeText string, jobs []models.Job) string {
	var jobLines []string
	for _, job := range jobs {
		jobLines = append(jobLines, fmt.Sprintf(
			"ID: %s | Title: %s | Desc: %s",
			job.ID, job.Title, truncate(job.Description, maxDescriptionPromptLen),
		))
	}

	return fmt.Sprintf(`RESUME: %s

JOBS:
%s

Compare the resume to the jobs. Return a score (0-100) and a short reason (max 10 words) for each job.

Return your response in the following JSON format:
{
  "scores": [
    {"job_id": "<job id>", "score": <0-100>, "reason": "<short reason>"}
  ]
}

Include every job ID exactly once. Return ONLY the JSON, no other text.`,
		truncate(resumeText, maxResumePromptLen), strings.Join(jobLines, "\n"))
}

// BuildClassifierPrompt creates the intent-classification prompt for the chat
// agent. The instruction set defines the only recognized tool commands; any
// other output is treated as a plain conversational reply.
func (pb *PromptBuilder) BuildClassifierPrompt(userMessage string) string {
	return fmt.Sprintf(`You are an intelligent Career Assistant.

INSTRUCTIONS:
1. FILTER RULE (Priority High):
   - If the user asks for "Internship", "Contract", or "Full-time" roles,
     output strictly: CALL: UPDATE_FILTER("type", "Internship")
     (or "Contract" / "Full-time" accordingly).

2. FILTER RULE (Remote):
   - If the user asks for "Remote" or "Work from home",
     output strictly: CALL: UPDATE_FILTER("location", "Remote")

3. SEARCH RULE:
   - If the user asks for a specific job title (e.g. "Find Java jobs", "Search for Backend"),
     output strictly: CALL: FETCH_AND_SEARCH("job title")

4. HISTORY RULE:
   - If the user asks about their own history (e.g. "What did I apply to?"),
     output strictly: CALL: GET_APPLICATIONS()

- Otherwise, answer normally.

USER MESSAGE: %s`, userMessage)
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit]
}
