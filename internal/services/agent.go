package services

import (
	"context"
	"log"
	"strings"

	"github.com/Viren021/ai-job-tracker/internal/models"
)

const busyReply = "The assistant is busy right now. Please try again in a moment."

// fallbackStopWords are skipped when extracting a search term from raw user
// text. Known-weak heuristic: first non-stop-word wins, nothing more. Kept
// as-is for compatibility with the established chat behavior.
var fallbackStopWords = map[string]bool{
	"find":   true,
	"search": true,
	"jobs":   true,
	"me":     true,
	"for":    true,
}

const fallbackDefaultTerm = "Developer"

// AgentService routes a free-text chat message through the intent classifier
// into a tool call or a plain reply. The flow is a one-shot state machine:
// one classification attempt, and on classifier failure one deterministic
// fallback attempt. The chat endpoint always answers; no error ever reaches
// the user.
type AgentService interface {
	HandleChat(ctx context.Context, message string) models.ChatResponse
}

type agentService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	model         string
	executor      *ToolExecutor
}

func NewAgentService(gemini GeminiService, model string, executor *ToolExecutor) AgentService {
	return &agentService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		model:         model,
		executor:      executor,
	}
}

// HandleChat implements AgentService.
func (a *agentService) HandleChat(ctx context.Context, message string) models.ChatResponse {
	prompt := a.promptBuilder.BuildClassifierPrompt(message)

	output, err := a.gemini.GenerateText(ctx, a.model, prompt)
	if err != nil {
		// Rate limits, quota, transport failures: all take the local
		// degradation path. The classifier is never called twice.
		log.Printf("⚠️ Classifier unavailable, using keyword fallback: %v", err)
		return a.fallback(ctx, message)
	}

	if !IsToolCall(output) {
		return models.ChatResponse{Reply: strings.TrimSpace(output)}
	}

	return a.executor.Execute(ctx, ParseCommand(output))
}

// fallback is the non-AI path. It inspects the raw user text, not classifier
// output: a find/search keyword promotes the first non-stop-word to a search
// term and runs the same ingest tool as the primary path. Anything else gets
// the fixed busy reply.
func (a *agentService) fallback(ctx context.Context, message string) models.ChatResponse {
	lowered := strings.ToLower(message)

	if !strings.Contains(lowered, "find") && !strings.Contains(lowered, "search") {
		return models.ChatResponse{Reply: busyReply}
	}

	// Stop words match case-insensitively, but the extracted term keeps the
	// user's casing ("Go", not "go").
	term := fallbackDefaultTerm
	for _, word := range strings.Fields(message) {
		if !fallbackStopWords[strings.ToLower(word)] {
			term = word
			break
		}
	}

	return a.executor.Execute(ctx, Command{Kind: CommandSearch, Term: term})
}
